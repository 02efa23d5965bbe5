package hydraulics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examplePipelineInput() SizingInput {
	return SizingInput{
		Flow: FlowConditions{
			Density:          945,
			DynamicViscosity: 0.0945,
			VolumetricFlow:   M3PerHourToM3PerSecond(2124),
		},
		Pipe:            PipeSegmentSpec{Diameter: InchesToMeters(24), Roughness: 4.5e-5},
		NominalPressure: 1e6,
		MinimumPressure: 5.2e5,
		DropDivisor:     2,
		Gravity:         9.81,
	}
}

func TestSize_PressurizedLineExample(t *testing.T) {
	calc := NewPipelineSizingCalculator(NewFrictionFactorSolver())
	res, err := calc.Size(examplePipelineInput())
	require.NoError(t, err)

	assert.Equal(t, Turbulent, res.Regime)
	assert.InDelta(t, 12323, res.Reynolds, 1)
	assert.InDelta(t, 2.0215, res.MeanVelocity, 1e-3)
	assert.InDelta(t, 557.55, res.MassFlow, 0.01)
	assert.InDelta(t, 240000, res.AllowedDrop, 1e-9)
	assert.InDelta(t, 25.889, res.RequiredHead, 1e-3)
	assert.Greater(t, res.FrictionFactor, 0.0)
	assert.Greater(t, res.PressureLossPerMeter, 0.0)
	assert.Greater(t, res.RequiredLength, 0.0)
	assert.False(t, math.IsInf(res.RequiredLength, 0))
	assert.InDelta(t, res.AllowedDrop, res.RequiredLength*res.PressureLossPerMeter, 1e-6)
	assert.Zero(t, res.SegmentPressureLoss)
}

func TestSize_SegmentLoss(t *testing.T) {
	in := examplePipelineInput()
	in.Pipe.Length = 100
	res, err := NewPipelineSizingCalculator(NewFrictionFactorSolver()).Size(in)
	require.NoError(t, err)
	assert.InDelta(t, 100*res.PressureLossPerMeter, res.SegmentPressureLoss, 1e-6)
}

func TestSize_Laminar(t *testing.T) {
	in := examplePipelineInput()
	in.Flow.DynamicViscosity = 10
	res, err := NewPipelineSizingCalculator(NewFrictionFactorSolver()).Size(in)
	require.NoError(t, err)
	assert.Equal(t, Laminar, res.Regime)
	assert.InDelta(t, 64/res.Reynolds, res.FrictionFactor, 1e-12)
}

func TestSize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SizingInput)
		wantCfg bool
	}{
		{"zero diameter", func(in *SizingInput) { in.Pipe.Diameter = 0 }, false},
		{"zero divisor", func(in *SizingInput) { in.DropDivisor = 0 }, false},
		{"zero flow", func(in *SizingInput) { in.Flow.VolumetricFlow = 0 }, false},
		{"zero viscosity", func(in *SizingInput) { in.Flow.DynamicViscosity = 0 }, false},
		{"zero gravity", func(in *SizingInput) { in.Gravity = 0 }, false},
		{"nominal below minimum", func(in *SizingInput) { in.NominalPressure = 4e5 }, true},
		{"nominal equals minimum", func(in *SizingInput) { in.NominalPressure = in.MinimumPressure }, true},
		{"negative divisor", func(in *SizingInput) { in.DropDivisor = -2 }, false},
		{"NaN divisor", func(in *SizingInput) { in.DropDivisor = math.NaN() }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := examplePipelineInput()
			tt.mutate(&in)
			_, err := NewPipelineSizingCalculator(NewFrictionFactorSolver()).Size(in)
			require.Error(t, err)
			if tt.wantCfg {
				var cfgErr *InvalidConfigurationError
				assert.ErrorAs(t, err, &cfgErr)
			} else {
				var inErr *InvalidInputError
				assert.ErrorAs(t, err, &inErr)
			}
		})
	}
}

func TestSize_SolverFailure(t *testing.T) {
	solver := NewFrictionFactorSolver()
	solver.MaxIterations = 0
	_, err := NewPipelineSizingCalculator(solver).Size(examplePipelineInput())
	var convErr *ConvergenceError
	assert.ErrorAs(t, err, &convErr)
}

func TestUnits(t *testing.T) {
	assert.InDelta(t, 0.6096, InchesToMeters(24), 1e-12)
	assert.InDelta(t, 0.59, M3PerHourToM3PerSecond(2124), 1e-12)
	assert.InDelta(t, 2124, M3PerSecondToM3PerHour(0.59), 1e-9)
	assert.InDelta(t, 0.68, PercentToFraction(68), 1e-12)
}
