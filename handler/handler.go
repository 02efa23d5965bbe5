package handler

import (
	"bytes"
	"net/http"

	"hydrocalc/pkg/logger"
	"hydrocalc/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CorrectPump(c *gin.Context) {
	var req pumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("pump correction: bad request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	res, err := h.svc.CorrectPump(req.Label, req.reference(), req.fluid())
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) CorrectPumpCurve(c *gin.Context) {
	req, ok := h.bindCurve(c)
	if !ok {
		return
	}

	res, err := h.svc.CorrectPumpCurve(req.Label, req.reference(), req.fluid(), req.Ratios, req.Points)
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) ExportPumpCurve(c *gin.Context) {
	req, ok := h.bindCurve(c)
	if !ok {
		return
	}

	ref, fluid := req.reference(), req.fluid()
	res, err := h.svc.CorrectPumpCurve(req.Label, ref, fluid, req.Ratios, req.Points)
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}

	var buf bytes.Buffer
	if err = service.WriteCurveReport(&buf, req.Label, ref, fluid, res); err != nil {
		logger.Logger.Errorf("write curve report failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	attachment(c, service.ReportFileName("pump_curve", req.Label), &buf)
}

// bindCurve also accepts ratios as a comma separated query parameter.
func (h *Handler) bindCurve(c *gin.Context) (pumpCurveRequest, bool) {
	var req pumpCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("pump curve: bad request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return req, false
	}
	if len(req.Ratios) == 0 {
		ratios, err := parseRatios(c.Query("ratios"))
		if err != nil {
			c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
			return req, false
		}
		req.Ratios = ratios
	}
	return req, true
}

func (h *Handler) EquivalentWater(c *gin.Context) {
	var req equivalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("equivalent water: bad request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	res, err := h.svc.EquivalentWater(req.Label, req.operatingPoint(), req.fluid())
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) ExportEquivalent(c *gin.Context) {
	var req equivalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	op, fluid := req.operatingPoint(), req.fluid()
	res, err := h.svc.EquivalentWater(req.Label, op, fluid)
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}

	var buf bytes.Buffer
	if err = service.WriteEquivalentReport(&buf, req.Label, op, fluid, res); err != nil {
		logger.Logger.Errorf("write equivalent report failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	attachment(c, service.ReportFileName("pump_equivalent", req.Label), &buf)
}

func (h *Handler) SolveFriction(c *gin.Context) {
	var req frictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("friction factor: bad request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	res, err := h.svc.SolveFriction(req.toService())
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) SizePipeline(c *gin.Context) {
	var req pipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("pipeline sizing: bad request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	res, err := h.svc.SizePipeline(req.pipelineCase())
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) ExportPipeline(c *gin.Context) {
	var req pipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	pc := req.pipelineCase()
	res, err := h.svc.SizePipeline(pc)
	if err != nil {
		status, code := calcError(err)
		c.JSON(status, fail(code, err.Error()))
		return
	}

	var buf bytes.Buffer
	if err = h.svc.WritePipelineReport(&buf, pc, res); err != nil {
		logger.Logger.Errorf("write pipeline report failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	attachment(c, service.ReportFileName("pipeline", req.Label), &buf)
}

// ImportPipelineCases sizes every row of the uploaded workbook. With
// ?format=xlsx the per-case results come back as a workbook.
func (h *Handler) ImportPipelineCases(c *gin.Context) {
	var req importCasesRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Logger.Errorf("get uploaded file failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	file, err := req.File.Open()
	if err != nil {
		logger.Logger.Errorf("open uploaded file failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	defer file.Close()

	result, err := h.svc.ImportPipelineCases(file)
	if err != nil {
		if result == nil {
			c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
			return
		}
		// rows were sized but history was not saved
		resp := fail(errInternalServer, err.Error())
		resp.Data = result
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	logger.Logger.Infof("import %s: %d sized, %d skipped", req.File.Filename, result.Imported, result.Skipped)

	if c.Query("format") == "xlsx" {
		var buf bytes.Buffer
		if err = service.WriteCasesReport(&buf, result); err != nil {
			logger.Logger.Errorf("write cases report failed: %v", err)
			c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
			return
		}
		attachment(c, service.ReportFileName("pipeline_cases", ""), &buf)
		return
	}
	c.JSON(http.StatusOK, success(result))
}

func (h *Handler) GetHistory(c *gin.Context) {
	var query historyRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	limit, err := parseLimit(query.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	records, err := h.svc.ListHistory(query.Kind, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(records))
}

func attachment(c *gin.Context, name string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
