package hydraulics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// WaterCurvePoint is one point of a pump's water performance curve.
type WaterCurvePoint struct {
	Flow       float64 `json:"flow"`       // m³/h
	Head       float64 `json:"head"`       // m
	Efficiency float64 `json:"efficiency"` // fraction
}

type CurvePoint struct {
	Ratio           float64 `json:"ratio"`
	WaterFlow       float64 `json:"waterFlow"`
	WaterHead       float64 `json:"waterHead"`
	WaterEfficiency float64 `json:"waterEfficiency"`
	WaterPower      float64 `json:"waterPower"`
	Ch              float64 `json:"ch"`
	Flow            float64 `json:"flow"`
	Head            float64 `json:"head"`
	Efficiency      float64 `json:"efficiency"`
	Power           float64 `json:"power"`
}

type CurveResult struct {
	SpecificSpeed float64             `json:"specificSpeed"`
	B             float64             `json:"b"`
	Cq            float64             `json:"cq"`
	Ceta          float64             `json:"ceta"`
	Points        []CurvePoint        `json:"points"`
	MaxPower      float64             `json:"maxPower"`
	Warnings      []OutOfRangeWarning `json:"warnings,omitempty"`
}

// SweepRatios returns start, start+step, ... up to and including stop.
func SweepRatios(start, stop, step float64) ([]float64, error) {
	if err := firstErr(positive("start", start), positive("step", step)); err != nil {
		return nil, err
	}
	if stop < start {
		return nil, &InvalidInputError{Field: "stop", Value: stop, Reason: "must be >= start"}
	}
	n := int(math.Round((stop-start)/step)) + 1
	if n == 1 {
		return []float64{start}, nil
	}
	last := start + float64(n-1)*step
	return floats.Span(make([]float64, n), start, last), nil
}

// FlatWaterCurve places BEP head and efficiency at every ratio of BEP flow.
func FlatWaterCurve(ref PumpWaterReference, ratios []float64) []WaterCurvePoint {
	points := make([]WaterCurvePoint, len(ratios))
	for i, r := range ratios {
		points[i] = WaterCurvePoint{Flow: r * ref.FlowBEP, Head: ref.HeadBEP, Efficiency: ref.Efficiency}
	}
	return points
}

// CorrectCurve corrects every water point. B, C_q and C_eta stay fixed at their
// BEP values, C_h is recomputed from each point's flow.
func CorrectCurve(ref PumpWaterReference, fluid ViscousFluidProperties, water []WaterCurvePoint) (*CurveResult, error) {
	bep, err := CorrectWaterPerformance(ref, fluid)
	if err != nil {
		return nil, err
	}
	if len(water) == 0 {
		return nil, &InvalidInputError{Field: "points", Value: 0, Reason: "curve needs at least one point"}
	}

	res := &CurveResult{
		SpecificSpeed: bep.SpecificSpeed,
		B:             bep.B,
		Cq:            bep.Cq,
		Ceta:          bep.Ceta,
		Points:        make([]CurvePoint, 0, len(water)),
		Warnings:      bep.Warnings,
	}
	powers := make([]float64, 0, len(water))
	for i, w := range water {
		if err := firstErr(positive("points.flow", w.Flow), positive("points.head", w.Head), fraction("points.efficiency", w.Efficiency)); err != nil {
			return nil, err
		}

		p := CurvePoint{
			Ratio:           w.Flow / ref.FlowBEP,
			WaterFlow:       w.Flow,
			WaterHead:       w.Head,
			WaterEfficiency: w.Efficiency,
			Ch:              1,
			Flow:            w.Flow,
			Head:            w.Head,
			Efficiency:      w.Efficiency,
		}
		if bep.B > NegligibleB {
			p.Ch = HeadFactor(bep.Cq, w.Flow, ref.FlowBEP)
			p.Flow = w.Flow * bep.Cq
			p.Head = w.Head * p.Ch
			p.Efficiency = w.Efficiency * bep.Ceta
		}

		if p.WaterPower, err = ShaftPower(w.Flow, w.Head, fluid.SpecificGravity, w.Efficiency); err != nil {
			return nil, err
		}
		if p.Power, err = ShaftPower(p.Flow, p.Head, fluid.SpecificGravity, p.Efficiency); err != nil {
			return nil, err
		}
		if err := finite(quantity{"ch", p.Ch}, quantity{"head", p.Head}, quantity{"power", p.Power}); err != nil {
			return nil, &InvalidConfigurationError{Quantity: "points", Value: float64(i), Reason: err.Error()}
		}
		res.Points = append(res.Points, p)
		powers = append(powers, p.Power)
	}
	res.MaxPower = floats.Max(powers)
	return res, nil
}
