package service

import (
	"hydrocalc/hydraulics"
)

const (
	FlowUnitM3h      = "m3/h"
	FlowUnitM3s      = "m3/s"
	DiameterUnitInch = "in"
	DiameterUnitMm   = "mm"
	DiameterUnitM    = "m"
)

// PipelineCase 管路计算输入，流量与管径带单位，其余为 SI
type PipelineCase struct {
	Label            string   `json:"label"`
	Gravity          *float64 `json:"gravity,omitempty"`
	DynamicViscosity float64  `json:"dynamicViscosity"`
	Density          float64  `json:"density"`
	PressureNominal  float64  `json:"pressureNominal"`
	PressureMinimum  float64  `json:"pressureMinimum"`
	DropDivisor      *float64 `json:"dropDivisor,omitempty"`
	Flow             float64  `json:"flow"`
	FlowUnit         string   `json:"flowUnit"`
	Diameter         float64  `json:"diameter"`
	DiameterUnit     string   `json:"diameterUnit"`
	Roughness        float64  `json:"roughness"`
	Length           float64  `json:"length,omitempty"`
}

type FrictionRequest struct {
	Reynolds      float64  `json:"reynolds"`
	Diameter      float64  `json:"diameter"`
	Roughness     float64  `json:"roughness"`
	InitialGuess  *float64 `json:"initialGuess,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	MaxIterations *int     `json:"maxIterations,omitempty"`
}

type (
	ImportCasesResult struct {
		Imported    int          `json:"imported"`
		Skipped     int          `json:"skipped"`
		Cases       []CaseResult `json:"cases"`
		LengthStats *Parameter   `json:"lengthStats,omitempty"`
		HeadStats   *Parameter   `json:"headStats,omitempty"`
	}
	CaseResult struct {
		Row    int                              `json:"row"`
		Case   PipelineCase                     `json:"case"`
		Result *hydraulics.PipelineSizingResult `json:"result,omitempty"`
		Error  string                           `json:"error,omitempty"`
	}
	Parameter struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Average  float64 `json:"average"`
		Variance float64 `json:"variance"`
	}
)

type pumpCorrectionInput struct {
	Reference hydraulics.PumpWaterReference     `json:"reference"`
	Fluid     hydraulics.ViscousFluidProperties `json:"fluid"`
}

type pumpCurveInput struct {
	Reference hydraulics.PumpWaterReference     `json:"reference"`
	Fluid     hydraulics.ViscousFluidProperties `json:"fluid"`
	Points    []hydraulics.WaterCurvePoint      `json:"points"`
}

type pumpEquivalentInput struct {
	Operating hydraulics.ViscousOperatingPoint  `json:"operating"`
	Fluid     hydraulics.ViscousFluidProperties `json:"fluid"`
}
