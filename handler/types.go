package handler

import (
	"mime/multipart"

	"hydrocalc/hydraulics"
	"hydrocalc/service"
)

type errcode int

const (
	errBadRequest errcode = 10001 + iota
	errInternalServer
	errInvalidInput
	errCalculation
)

func (e errcode) String() string {
	switch e {
	case errBadRequest:
		return "bad request"
	case errInternalServer:
		return "internal server error"
	case errInvalidInput:
		return "invalid input"
	case errCalculation:
		return "calculation failed"
	default:
		return "unknown error"
	}
}

type apiResponse struct {
	Code    errcode `json:"code"`
	Message string  `json:"message"`
	Data    any     `json:"data,omitempty"`
}

func success(data any) apiResponse {
	return apiResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

func fail(code errcode, message string) apiResponse {
	return apiResponse{
		Code:    code,
		Message: message,
	}
}

type pumpRequest struct {
	Label             string   `json:"label"`
	FlowBEP           float64  `json:"flowBEP" binding:"required"`
	HeadBEP           float64  `json:"headBEP" binding:"required"`
	Speed             float64  `json:"speed" binding:"required"`
	Efficiency        float64  `json:"efficiency"`
	EfficiencyPercent *float64 `json:"efficiencyPercent"`
	Viscosity         float64  `json:"viscosity" binding:"required"`
	SpecificGravity   float64  `json:"specificGravity" binding:"required"`
}

func (r pumpRequest) reference() hydraulics.PumpWaterReference {
	eta := r.Efficiency
	if r.EfficiencyPercent != nil {
		eta = hydraulics.PercentToFraction(*r.EfficiencyPercent)
	}
	return hydraulics.PumpWaterReference{FlowBEP: r.FlowBEP, HeadBEP: r.HeadBEP, Speed: r.Speed, Efficiency: eta}
}

func (r pumpRequest) fluid() hydraulics.ViscousFluidProperties {
	return hydraulics.ViscousFluidProperties{KinematicViscosity: r.Viscosity, SpecificGravity: r.SpecificGravity}
}

type pumpCurveRequest struct {
	pumpRequest
	Ratios []float64                    `json:"ratios"`
	Points []hydraulics.WaterCurvePoint `json:"points"`
}

type equivalentRequest struct {
	Label                  string   `json:"label"`
	Flow                   float64  `json:"flow" binding:"required"`
	Head                   float64  `json:"head" binding:"required"`
	WaterEfficiency        float64  `json:"waterEfficiency"`
	WaterEfficiencyPercent *float64 `json:"waterEfficiencyPercent"`
	Viscosity              float64  `json:"viscosity" binding:"required"`
	SpecificGravity        float64  `json:"specificGravity" binding:"required"`
}

func (r equivalentRequest) operatingPoint() hydraulics.ViscousOperatingPoint {
	eta := r.WaterEfficiency
	if r.WaterEfficiencyPercent != nil {
		eta = hydraulics.PercentToFraction(*r.WaterEfficiencyPercent)
	}
	return hydraulics.ViscousOperatingPoint{Flow: r.Flow, Head: r.Head, WaterEfficiency: eta}
}

func (r equivalentRequest) fluid() hydraulics.ViscousFluidProperties {
	return hydraulics.ViscousFluidProperties{KinematicViscosity: r.Viscosity, SpecificGravity: r.SpecificGravity}
}

func (r frictionRequest) toService() service.FrictionRequest {
	return service.FrictionRequest{
		Reynolds:      r.Reynolds,
		Diameter:      r.Diameter,
		Roughness:     r.Roughness,
		InitialGuess:  r.InitialGuess,
		Tolerance:     r.Tolerance,
		MaxIterations: r.MaxIterations,
	}
}

type frictionRequest struct {
	Reynolds      float64  `json:"reynolds" binding:"required"`
	Diameter      float64  `json:"diameter" binding:"required"`
	Roughness     float64  `json:"roughness"`
	InitialGuess  *float64 `json:"initialGuess"`
	Tolerance     *float64 `json:"tolerance"`
	MaxIterations *int     `json:"maxIterations"`
}

type pipelineRequest struct {
	Label            string   `json:"label"`
	Gravity          *float64 `json:"gravity"`
	DynamicViscosity float64  `json:"dynamicViscosity" binding:"required"`
	Density          float64  `json:"density" binding:"required"`
	PressureNominal  float64  `json:"pressureNominal" binding:"required"`
	PressureMinimum  float64  `json:"pressureMinimum"`
	DropDivisor      *float64 `json:"dropDivisor"`
	FlowM3h          float64  `json:"flowM3h" binding:"required"`
	DiameterInch     float64  `json:"diameterInch" binding:"required"`
	Roughness        float64  `json:"roughness"`
	Length           float64  `json:"length"`
}

func (r pipelineRequest) pipelineCase() service.PipelineCase {
	return service.PipelineCase{
		Label:            r.Label,
		Gravity:          r.Gravity,
		DynamicViscosity: r.DynamicViscosity,
		Density:          r.Density,
		PressureNominal:  r.PressureNominal,
		PressureMinimum:  r.PressureMinimum,
		DropDivisor:      r.DropDivisor,
		Flow:             r.FlowM3h,
		FlowUnit:         service.FlowUnitM3h,
		Diameter:         r.DiameterInch,
		DiameterUnit:     service.DiameterUnitInch,
		Roughness:        r.Roughness,
		Length:           r.Length,
	}
}

type importCasesRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

type historyRequest struct {
	Kind  string `form:"kind"`
	Limit string `form:"limit"`
}
