package hydraulics

import (
	"math"
)

// Envelope of the ANSI/HI 9.6.7 empirical correction.
const (
	MaxSpecificSpeed   = 60.0
	MaxB               = 40.0
	MinViscosityCSt    = 1.0
	MaxViscosityCSt    = 4000.0
	NegligibleB        = 1.0
	powerConstantKW    = 367.0
	waterKnownBCoef    = 16.5
	viscousKnownBCoef  = 2.8
	flowFactorCoef     = -0.165
	flowFactorExponent = 3.15
	etaFactorCoef      = -0.0547
	etaFactorExponent  = 0.69
	headFlowExponent   = 0.75
)

// PumpWaterReference is a pump's cataloged water performance at BEP.
type PumpWaterReference struct {
	FlowBEP    float64 `json:"flowBEP"`    // m³/h
	HeadBEP    float64 `json:"headBEP"`    // m
	Speed      float64 `json:"speed"`      // rpm
	Efficiency float64 `json:"efficiency"` // fraction
}

type ViscousFluidProperties struct {
	KinematicViscosity float64 `json:"kinematicViscosity"` // cSt
	SpecificGravity    float64 `json:"specificGravity"`
}

// ViscousOperatingPoint is the known duty of the inverse direction.
type ViscousOperatingPoint struct {
	Flow            float64 `json:"flow"`            // m³/h, viscous
	Head            float64 `json:"head"`            // m, viscous
	WaterEfficiency float64 `json:"waterEfficiency"` // fraction at BEP on water
}

// CorrectionFactors holds the flow, head and efficiency factors for one B.
type CorrectionFactors struct {
	B    float64 `json:"b"`
	Cq   float64 `json:"cq"`
	Ch   float64 `json:"ch"`
	Ceta float64 `json:"ceta"`
}

type ViscosityCorrectionResult struct {
	SpecificSpeed float64             `json:"specificSpeed"`
	B             float64             `json:"b"`
	Cq            float64             `json:"cq"`
	Ch            float64             `json:"ch"`
	Ceta          float64             `json:"ceta"`
	Flow          float64             `json:"flow"`       // m³/h, viscous
	Head          float64             `json:"head"`       // m, viscous
	Efficiency    float64             `json:"efficiency"` // fraction, viscous
	Power         float64             `json:"power"`      // kW
	Warnings      []OutOfRangeWarning `json:"warnings,omitempty"`
}

type EquivalentWaterResult struct {
	B                 float64             `json:"b"`
	Cq                float64             `json:"cq"`
	Ch                float64             `json:"ch"`
	Ceta              float64             `json:"ceta"`
	WaterFlow         float64             `json:"waterFlow"` // m³/h
	WaterHead         float64             `json:"waterHead"` // m
	ViscousEfficiency float64             `json:"viscousEfficiency"`
	Power             float64             `json:"power"` // kW
	Warnings          []OutOfRangeWarning `json:"warnings,omitempty"`
}

// SpecificSpeed in metric units: rpm, m³/s, m.
func SpecificSpeed(speedRPM, flowM3s, head float64) float64 {
	return speedRPM * math.Sqrt(flowM3s) / math.Pow(head, 0.75)
}

// BFromWater is the B parameter when water performance at BEP is known (m³/h, m, rpm).
func BFromWater(viscosityCSt, flowBEPM3h, headBEP, speedRPM float64) float64 {
	return waterKnownBCoef * math.Sqrt(viscosityCSt) * math.Pow(headBEP, 0.0625) /
		(math.Pow(flowBEPM3h, 0.375) * math.Pow(speedRPM, 0.25))
}

// BFromViscous is the B parameter when the viscous duty point is known (m³/h, m).
func BFromViscous(viscosityCSt, flowM3h, head float64) float64 {
	return viscousKnownBCoef * math.Sqrt(viscosityCSt) /
		(math.Pow(flowM3h, 0.25) * math.Pow(head, 0.125))
}

// FlowFactor is C_q. It is also the head factor at BEP.
func FlowFactor(b float64) float64 {
	if b <= NegligibleB {
		return 1
	}
	return math.Exp(flowFactorCoef * math.Pow(math.Log10(b), flowFactorExponent))
}

func EfficiencyFactor(b float64) float64 {
	if b <= NegligibleB {
		return 1
	}
	return math.Pow(b, etaFactorCoef*math.Pow(b, etaFactorExponent))
}

// HeadFactor is C_h at an operating flow, given the head factor at BEP.
func HeadFactor(cBEPHead, flow, flowBEP float64) float64 {
	return 1 - (1-cBEPHead)*math.Pow(flow/flowBEP, headFlowExponent)
}

// Factors evaluates the shared factor set at BEP.
func Factors(b float64) CorrectionFactors {
	if b <= NegligibleB {
		return CorrectionFactors{B: b, Cq: 1, Ch: 1, Ceta: 1}
	}
	cq := FlowFactor(b)
	return CorrectionFactors{B: b, Cq: cq, Ch: cq, Ceta: EfficiencyFactor(b)}
}

// ShaftPower in kW for flow in m³/h and head in m.
func ShaftPower(flowM3h, head, specificGravity, efficiency float64) (float64, error) {
	if efficiency <= 0 || math.IsNaN(efficiency) {
		return 0, &InvalidConfigurationError{Quantity: "efficiency", Value: efficiency, Reason: "power is undefined for non-positive efficiency"}
	}
	return flowM3h * head * specificGravity / (powerConstantKW * efficiency), nil
}

func (r PumpWaterReference) validate() error {
	return firstErr(
		positive("flowBEP", r.FlowBEP),
		positive("headBEP", r.HeadBEP),
		positive("speed", r.Speed),
		fraction("efficiency", r.Efficiency),
	)
}

func (f ViscousFluidProperties) validate() error {
	return firstErr(
		positive("kinematicViscosity", f.KinematicViscosity),
		positive("specificGravity", f.SpecificGravity),
	)
}

func (p ViscousOperatingPoint) validate() error {
	return firstErr(
		positive("flow", p.Flow),
		positive("head", p.Head),
		fraction("waterEfficiency", p.WaterEfficiency),
	)
}

func viscosityWarnings(nu, b float64) []OutOfRangeWarning {
	var warnings []OutOfRangeWarning
	if nu < MinViscosityCSt || nu > MaxViscosityCSt {
		limit := MaxViscosityCSt
		if nu < MinViscosityCSt {
			limit = MinViscosityCSt
		}
		warnings = append(warnings, OutOfRangeWarning{
			Quantity: "kinematicViscosity",
			Value:    nu,
			Limit:    limit,
			Message:  "viscosity outside the validated 1-4000 cSt range",
		})
	}
	if b >= MaxB {
		warnings = append(warnings, OutOfRangeWarning{
			Quantity: "B",
			Value:    b,
			Limit:    MaxB,
			Message:  "B parameter outside the validated range (< 40)",
		})
	}
	return warnings
}

// CorrectWaterPerformance converts water BEP performance into viscous performance.
func CorrectWaterPerformance(ref PumpWaterReference, fluid ViscousFluidProperties) (*ViscosityCorrectionResult, error) {
	if err := firstErr(ref.validate(), fluid.validate()); err != nil {
		return nil, err
	}

	ns := SpecificSpeed(ref.Speed, M3PerHourToM3PerSecond(ref.FlowBEP), ref.HeadBEP)
	b := BFromWater(fluid.KinematicViscosity, ref.FlowBEP, ref.HeadBEP, ref.Speed)

	var warnings []OutOfRangeWarning
	if ns > MaxSpecificSpeed {
		warnings = append(warnings, OutOfRangeWarning{
			Quantity: "specificSpeed",
			Value:    ns,
			Limit:    MaxSpecificSpeed,
			Message:  "specific speed outside the validated range (<= 60)",
		})
	}
	warnings = append(warnings, viscosityWarnings(fluid.KinematicViscosity, b)...)

	cf := Factors(b)
	res := &ViscosityCorrectionResult{
		SpecificSpeed: ns,
		B:             b,
		Cq:            cf.Cq,
		Ch:            HeadFactor(cf.Ch, ref.FlowBEP, ref.FlowBEP),
		Ceta:          cf.Ceta,
		Warnings:      warnings,
	}
	if b <= NegligibleB {
		res.Ch = 1
		res.Flow, res.Head, res.Efficiency = ref.FlowBEP, ref.HeadBEP, ref.Efficiency
	} else {
		res.Flow = ref.FlowBEP * res.Cq
		res.Head = ref.HeadBEP * res.Ch
		res.Efficiency = ref.Efficiency * res.Ceta
	}

	power, err := ShaftPower(res.Flow, res.Head, fluid.SpecificGravity, res.Efficiency)
	if err != nil {
		return nil, err
	}
	res.Power = power

	if err := finite(
		quantity{"specificSpeed", res.SpecificSpeed}, quantity{"b", res.B}, quantity{"flow", res.Flow},
		quantity{"head", res.Head}, quantity{"efficiency", res.Efficiency}, quantity{"power", res.Power},
	); err != nil {
		return nil, err
	}
	return res, nil
}

// EquivalentWaterPerformance finds the water performance a pump needs to
// deliver a known viscous duty point.
func EquivalentWaterPerformance(op ViscousOperatingPoint, fluid ViscousFluidProperties) (*EquivalentWaterResult, error) {
	if err := firstErr(op.validate(), fluid.validate()); err != nil {
		return nil, err
	}

	b := BFromViscous(fluid.KinematicViscosity, op.Flow, op.Head)
	cf := Factors(b)
	res := &EquivalentWaterResult{
		B:        b,
		Cq:       cf.Cq,
		Ch:       cf.Ch,
		Ceta:     cf.Ceta,
		Warnings: viscosityWarnings(fluid.KinematicViscosity, b),
	}
	if b <= NegligibleB {
		res.WaterFlow, res.WaterHead, res.ViscousEfficiency = op.Flow, op.Head, op.WaterEfficiency
	} else {
		res.WaterFlow = op.Flow / cf.Cq
		res.WaterHead = op.Head / cf.Ch
		res.ViscousEfficiency = op.WaterEfficiency * cf.Ceta
	}

	power, err := ShaftPower(op.Flow, op.Head, fluid.SpecificGravity, res.ViscousEfficiency)
	if err != nil {
		return nil, err
	}
	res.Power = power

	if err := finite(
		quantity{"b", res.B}, quantity{"waterFlow", res.WaterFlow}, quantity{"waterHead", res.WaterHead},
		quantity{"viscousEfficiency", res.ViscousEfficiency}, quantity{"power", res.Power},
	); err != nil {
		return nil, err
	}
	return res, nil
}

// Uncorrect applies the inverse relations to viscous values produced with the
// given factors and returns the water-referenced values.
func Uncorrect(cf CorrectionFactors, flow, head, efficiency float64) (waterFlow, waterHead, waterEfficiency float64) {
	return flow / cf.Cq, head / cf.Ch, efficiency / cf.Ceta
}
