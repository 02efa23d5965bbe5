package hydraulics

import (
	"math"
)

// PipeSegmentSpec is a straight circular pipe run, SI units.
type PipeSegmentSpec struct {
	Diameter  float64 `json:"diameter"`  // m
	Roughness float64 `json:"roughness"` // m
	Length    float64 `json:"length"`    // m, optional
}

type FlowConditions struct {
	Density          float64 `json:"density"`          // kg/m³
	DynamicViscosity float64 `json:"dynamicViscosity"` // Pa·s
	VolumetricFlow   float64 `json:"volumetricFlow"`   // m³/s
}

type SizingInput struct {
	Flow            FlowConditions  `json:"flow"`
	Pipe            PipeSegmentSpec `json:"pipe"`
	NominalPressure float64         `json:"nominalPressure"` // Pa
	MinimumPressure float64         `json:"minimumPressure"` // Pa
	DropDivisor     float64         `json:"dropDivisor"`
	Gravity         float64         `json:"gravity"` // m/s²
}

type PipelineSizingResult struct {
	Reynolds             float64 `json:"reynolds"`
	FrictionFactor       float64 `json:"frictionFactor"`
	Regime               Regime  `json:"regime"`
	Iterations           int     `json:"iterations"`
	PressureLossPerMeter float64 `json:"pressureLossPerMeter"` // Pa/m
	AllowedDrop          float64 `json:"allowedDrop"`          // Pa
	RequiredLength       float64 `json:"requiredLength"`       // m
	RequiredHead         float64 `json:"requiredHead"`         // m
	MassFlow             float64 `json:"massFlow"`             // kg/s
	MeanVelocity         float64 `json:"meanVelocity"`         // m/s
	SegmentPressureLoss  float64 `json:"segmentPressureLoss,omitempty"`
}

type PipelineSizingCalculator struct {
	Solver FrictionFactorSolver
}

func NewPipelineSizingCalculator(solver FrictionFactorSolver) *PipelineSizingCalculator {
	return &PipelineSizingCalculator{Solver: solver}
}

func Reynolds(density, velocity, diameter, dynamicViscosity float64) float64 {
	return density * velocity * diameter / dynamicViscosity
}

func (in SizingInput) validate() error {
	if err := firstErr(
		positive("density", in.Flow.Density),
		positive("dynamicViscosity", in.Flow.DynamicViscosity),
		positive("volumetricFlow", in.Flow.VolumetricFlow),
		positive("diameter", in.Pipe.Diameter),
		nonNegative("roughness", in.Pipe.Roughness),
		nonNegative("length", in.Pipe.Length),
		positive("gravity", in.Gravity),
	); err != nil {
		return err
	}
	if err := positive("dropDivisor", in.DropDivisor); err != nil {
		return err
	}
	if in.NominalPressure <= in.MinimumPressure {
		return &InvalidConfigurationError{Quantity: "nominalPressure", Value: in.NominalPressure, Reason: "must exceed minimum pressure"}
	}
	return nil
}

// Size back-solves the pipe length and manometric head that consume the
// allowed share of the pressure margin.
func (c *PipelineSizingCalculator) Size(in SizingInput) (*PipelineSizingResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	d := in.Pipe.Diameter
	area := math.Pi * (d / 2) * (d / 2)
	velocity := in.Flow.VolumetricFlow / area
	re := Reynolds(in.Flow.Density, velocity, d, in.Flow.DynamicViscosity)

	fr, err := c.Solver.Solve(re, d, in.Pipe.Roughness)
	if err != nil {
		return nil, err
	}

	lossPerMeter := PressureDrop(1, d, velocity, fr.FrictionFactor, in.Flow.Density)
	if lossPerMeter <= 0 {
		return nil, &InvalidConfigurationError{Quantity: "pressureLossPerMeter", Value: lossPerMeter, Reason: "must be > 0"}
	}
	allowed := (in.NominalPressure - in.MinimumPressure) / in.DropDivisor
	if allowed <= 0 {
		return nil, &InvalidConfigurationError{Quantity: "allowedDrop", Value: allowed, Reason: "allowed pressure drop must be > 0"}
	}

	res := &PipelineSizingResult{
		Reynolds:             re,
		FrictionFactor:       fr.FrictionFactor,
		Regime:               fr.Regime,
		Iterations:           fr.Iterations,
		PressureLossPerMeter: lossPerMeter,
		AllowedDrop:          allowed,
		RequiredLength:       allowed / lossPerMeter,
		RequiredHead:         allowed / (in.Flow.Density * in.Gravity),
		MassFlow:             in.Flow.VolumetricFlow * in.Flow.Density,
		MeanVelocity:         velocity,
	}
	if in.Pipe.Length > 0 {
		res.SegmentPressureLoss = PressureDrop(in.Pipe.Length, d, velocity, fr.FrictionFactor, in.Flow.Density)
	}

	if err := finite(
		quantity{"reynolds", res.Reynolds}, quantity{"pressureLossPerMeter", res.PressureLossPerMeter},
		quantity{"requiredLength", res.RequiredLength}, quantity{"requiredHead", res.RequiredHead},
		quantity{"massFlow", res.MassFlow}, quantity{"meanVelocity", res.MeanVelocity},
		quantity{"segmentPressureLoss", res.SegmentPressureLoss},
	); err != nil {
		return nil, err
	}
	return res, nil
}
