package hydraulics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRatios(t *testing.T) {
	ratios, err := SweepRatios(0.2, 1.5, 0.1)
	require.NoError(t, err)
	require.Len(t, ratios, 14)
	assert.InDelta(t, 0.2, ratios[0], 1e-12)
	assert.InDelta(t, 1.0, ratios[8], 1e-12)
	assert.InDelta(t, 1.5, ratios[13], 1e-12)

	single, err := SweepRatios(1, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, single)

	_, err = SweepRatios(1.5, 0.2, 0.1)
	assert.Error(t, err)
	_, err = SweepRatios(0.2, 1.5, 0)
	assert.Error(t, err)
}

func TestCorrectCurve_FlatWaterCurve(t *testing.T) {
	ratios, err := SweepRatios(0.2, 1.5, 0.1)
	require.NoError(t, err)

	curve, err := CorrectCurve(exampleRef, exampleFluid, FlatWaterCurve(exampleRef, ratios))
	require.NoError(t, err)
	require.Len(t, curve.Points, len(ratios))

	bep, err := CorrectWaterPerformance(exampleRef, exampleFluid)
	require.NoError(t, err)
	assert.Equal(t, bep.B, curve.B)
	assert.Equal(t, bep.Cq, curve.Cq)
	assert.Equal(t, bep.Ceta, curve.Ceta)

	for i, p := range curve.Points {
		assert.InDelta(t, ratios[i], p.Ratio, 1e-12)
		assert.InDelta(t, p.WaterFlow*curve.Cq, p.Flow, 1e-9)
		assert.InDelta(t, p.WaterEfficiency*curve.Ceta, p.Efficiency, 1e-9)
		switch {
		case p.Ratio < 1-1e-9:
			assert.Greater(t, p.Ch, curve.Cq)
		case p.Ratio > 1+1e-9:
			assert.Less(t, p.Ch, curve.Cq)
		default:
			assert.InDelta(t, curve.Cq, p.Ch, 1e-12)
			assert.InDelta(t, bep.Head, p.Head, 1e-9)
			assert.InDelta(t, bep.Power, p.Power, 1e-9)
		}
		if i > 0 {
			assert.Less(t, p.Ch, curve.Points[i-1].Ch)
		}
	}
	assert.InDelta(t, curve.Points[len(curve.Points)-1].Power, curve.MaxPower, 1e-9)
}

func TestCorrectCurve_NegligibleB(t *testing.T) {
	fluid := ViscousFluidProperties{KinematicViscosity: 1, SpecificGravity: 1}
	water := []WaterCurvePoint{{Flow: 55, Head: 85, Efficiency: 0.55}, {Flow: 110, Head: 77, Efficiency: 0.68}}
	curve, err := CorrectCurve(exampleRef, fluid, water)
	require.NoError(t, err)
	for i, p := range curve.Points {
		assert.Equal(t, 1.0, p.Ch)
		assert.Equal(t, water[i].Flow, p.Flow)
		assert.Equal(t, water[i].Head, p.Head)
		assert.Equal(t, water[i].Efficiency, p.Efficiency)
		assert.Equal(t, p.WaterPower, p.Power)
	}
}

func TestCorrectCurve_Empty(t *testing.T) {
	_, err := CorrectCurve(exampleRef, exampleFluid, nil)
	var inErr *InvalidInputError
	assert.ErrorAs(t, err, &inErr)
}
