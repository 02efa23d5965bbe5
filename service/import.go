package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hydrocalc/model"
	"hydrocalc/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// case workbook column -> setter; unit variants share a field
var caseColumns = map[string]func(c *PipelineCase, v float64){
	"gravity":          func(c *PipelineCase, v float64) { c.Gravity = &v },
	"dynamicviscosity": func(c *PipelineCase, v float64) { c.DynamicViscosity = v },
	"density":          func(c *PipelineCase, v float64) { c.Density = v },
	"pressurenominal":  func(c *PipelineCase, v float64) { c.PressureNominal = v },
	"pressureminimum":  func(c *PipelineCase, v float64) { c.PressureMinimum = v },
	"dropdivisor":      func(c *PipelineCase, v float64) { c.DropDivisor = &v },
	"flowm3h":          func(c *PipelineCase, v float64) { c.Flow, c.FlowUnit = v, FlowUnitM3h },
	"flowm3s":          func(c *PipelineCase, v float64) { c.Flow, c.FlowUnit = v, FlowUnitM3s },
	"diameterinch":     func(c *PipelineCase, v float64) { c.Diameter, c.DiameterUnit = v, DiameterUnitInch },
	"diametermm":       func(c *PipelineCase, v float64) { c.Diameter, c.DiameterUnit = v, DiameterUnitMm },
	"diameterm":        func(c *PipelineCase, v float64) { c.Diameter, c.DiameterUnit = v, DiameterUnitM },
	"roughness":        func(c *PipelineCase, v float64) { c.Roughness = v },
	"length":           func(c *PipelineCase, v float64) { c.Length = v },
}

var requiredColumns = []string{"dynamicviscosity", "density", "pressurenominal", "pressureminimum", "roughness"}

func normalizeHeader(h string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(h)))
}

// ImportPipelineCases 读取 excel 中的管路工况，逐行计算；格式错误的行跳过
func (s *Service) ImportPipelineCases(file io.Reader) (*ImportCasesResult, error) {
	xlsx, err := excelize.OpenReader(file)
	if err != nil {
		logger.Logger.Errorf("open excel file error: %v", err)
		return nil, err
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("case workbook is empty")
	}

	header := make(map[int]string, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, h := range rows[0] {
		name := normalizeHeader(h)
		header[i] = name
		seen[name] = true
	}
	for _, col := range requiredColumns {
		if !seen[col] {
			return nil, fmt.Errorf("case workbook misses column %q", col)
		}
	}
	if !seen["flowm3h"] && !seen["flowm3s"] {
		return nil, errors.New("case workbook misses a flow column (flowM3h or flowM3s)")
	}
	if !seen["diameterinch"] && !seen["diametermm"] && !seen["diameterm"] {
		return nil, errors.New("case workbook misses a diameter column (diameterInch, diameterMm or diameterM)")
	}

	result := &ImportCasesResult{}
	var (
		records []model.CalculationRecord
		lengths []float64
		heads   []float64
	)
	for rowNum, row := range rows[1:] {
		line := rowNum + 2
		if isBlank(row) {
			continue
		}

		c, err := parseCaseRow(header, row)
		if err != nil {
			logger.Logger.Warnf("row %d skipped: %v", line, err)
			result.Skipped++
			result.Cases = append(result.Cases, CaseResult{Row: line, Case: c, Error: err.Error()})
			continue
		}
		if c.Label == "" {
			c.Label = fmt.Sprintf("row %d", line)
		}

		res, err := s.sizePipeline(c)
		if err != nil {
			logger.Logger.Warnf("row %d (%s) skipped: %v", line, c.Label, err)
			result.Skipped++
			result.Cases = append(result.Cases, CaseResult{Row: line, Case: c, Error: err.Error()})
			continue
		}

		result.Imported++
		result.Cases = append(result.Cases, CaseResult{Row: line, Case: c, Result: res})
		lengths = append(lengths, res.RequiredLength)
		heads = append(heads, res.RequiredHead)

		if s.db != nil {
			rec, err := newRecord(model.KindPipelineSizing, c.Label, c, res, nil)
			if err != nil {
				logger.Logger.Errorf("encode row %d failed: %v", line, err)
				continue
			}
			records = append(records, *rec)
		}
	}

	if len(lengths) > 0 {
		ls, hs := calculateStats(lengths), calculateStats(heads)
		result.LengthStats, result.HeadStats = &ls, &hs
	}

	if _, err = s.saveBatch(records); err != nil {
		logger.Logger.Errorf("save imported cases failed: %v", err)
		return result, err
	}
	return result, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseCaseRow(header map[int]string, row []string) (PipelineCase, error) {
	var c PipelineCase
	for i, cell := range row {
		name := header[i]
		cell = strings.TrimSpace(cell)
		if name == "label" {
			c.Label = cell
			continue
		}
		set, ok := caseColumns[name]
		if !ok || cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return c, fmt.Errorf("column %s: %w", name, err)
		}
		set(&c, v)
	}
	return c, nil
}
