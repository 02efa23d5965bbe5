package service

import (
	"fmt"
	"strings"

	"hydrocalc/hydraulics"
)

func normalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.NewReplacer("³", "3", " ", "", "inch", "in", "\"", "in").Replace(u)
	return u
}

func flowRateToM3s(v float64, unit string) (float64, error) {
	switch normalizeUnit(unit) {
	case FlowUnitM3h, "":
		return hydraulics.M3PerHourToM3PerSecond(v), nil
	case FlowUnitM3s:
		return v, nil
	default:
		return 0, &hydraulics.InvalidInputError{Field: "flowUnit", Value: v, Reason: fmt.Sprintf("unknown unit %q", unit)}
	}
}

func diameterToM(v float64, unit string) (float64, error) {
	switch normalizeUnit(unit) {
	case DiameterUnitInch:
		return hydraulics.InchesToMeters(v), nil
	case DiameterUnitMm:
		return v / 1000, nil
	case DiameterUnitM:
		return v, nil
	case "":
		// 管径单位必须显式给出
		return 0, &hydraulics.InvalidInputError{Field: "diameterUnit", Value: v, Reason: "unit is required (in, mm or m)"}
	default:
		return 0, &hydraulics.InvalidInputError{Field: "diameterUnit", Value: v, Reason: fmt.Sprintf("unknown unit %q", unit)}
	}
}

// sizingInput converts a case into SI input, filling gravity and divisor from cfg.
func (c PipelineCase) sizingInput(cfg Config) (hydraulics.SizingInput, error) {
	q, err := flowRateToM3s(c.Flow, c.FlowUnit)
	if err != nil {
		return hydraulics.SizingInput{}, err
	}
	d, err := diameterToM(c.Diameter, c.DiameterUnit)
	if err != nil {
		return hydraulics.SizingInput{}, err
	}

	g := cfg.Gravity
	if c.Gravity != nil {
		g = *c.Gravity
	}
	div := cfg.DropDivisor
	if c.DropDivisor != nil {
		div = *c.DropDivisor
	}

	return hydraulics.SizingInput{
		Flow: hydraulics.FlowConditions{
			Density:          c.Density,
			DynamicViscosity: c.DynamicViscosity,
			VolumetricFlow:   q,
		},
		Pipe: hydraulics.PipeSegmentSpec{
			Diameter:  d,
			Roughness: c.Roughness,
			Length:    c.Length,
		},
		NominalPressure: c.PressureNominal,
		MinimumPressure: c.PressureMinimum,
		DropDivisor:     div,
		Gravity:         g,
	}, nil
}
