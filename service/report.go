package service

import (
	"io"

	"hydrocalc/hydraulics"

	"github.com/xuri/excelize/v2"
)

const (
	sheetInput   = "Input"
	sheetResults = "Results"
	sheetCurve   = "Curve"
	sheetCases   = "Cases"
)

type kv struct {
	name  string
	value any
	unit  string
}

func newWorkbook(first string, others ...string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		return nil, err
	}
	for _, name := range others {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeKV(f *excelize.File, sheet string, rows []kv) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Quantity", "Value", "Unit"}); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &[]any{r.name, r.value, r.unit}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 32)
}

func writeTable(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func warningRows(warnings []hydraulics.OutOfRangeWarning) []kv {
	rows := make([]kv, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, kv{"Warning: " + w.Quantity, w.Value, w.Message})
	}
	return rows
}

func writeTo(f *excelize.File, w io.Writer) error {
	defer f.Close()
	_, err := f.WriteTo(w)
	return err
}

// WriteCurveReport 输出泵曲线修正表：输入、各流量点的清水/粘性参数
func WriteCurveReport(w io.Writer, label string, ref hydraulics.PumpWaterReference, fluid hydraulics.ViscousFluidProperties, curve *hydraulics.CurveResult) error {
	f, err := newWorkbook(sheetInput, sheetCurve)
	if err != nil {
		return err
	}

	input := []kv{
		{"Pump", label, ""},
		{"Flow at BEP", ref.FlowBEP, "m³/h"},
		{"Head at BEP", ref.HeadBEP, "m"},
		{"Speed", ref.Speed, "rpm"},
		{"Efficiency (water)", ref.Efficiency * 100, "%"},
		{"Kinematic viscosity", fluid.KinematicViscosity, "cSt"},
		{"Specific gravity", fluid.SpecificGravity, ""},
		{"Specific speed n_s", curve.SpecificSpeed, ""},
		{"B", curve.B, ""},
		{"C_q", curve.Cq, ""},
		{"C_eta", curve.Ceta, ""},
		{"Max power (viscous)", curve.MaxPower, "kW"},
	}
	if err = writeKV(f, sheetInput, append(input, warningRows(curve.Warnings)...)); err != nil {
		return err
	}

	header := []any{
		"Q/Q_BEP", "Q water [m³/h]", "H water [m]", "η water [%]", "P water [kW]",
		"C_H", "Q viscous [m³/h]", "H viscous [m]", "η viscous [%]", "P viscous [kW]",
	}
	rows := make([][]any, 0, len(curve.Points))
	for _, p := range curve.Points {
		rows = append(rows, []any{
			p.Ratio, p.WaterFlow, p.WaterHead, p.WaterEfficiency * 100, p.WaterPower,
			p.Ch, p.Flow, p.Head, p.Efficiency * 100, p.Power,
		})
	}
	if err = writeTable(f, sheetCurve, header, rows); err != nil {
		return err
	}
	return writeTo(f, w)
}

func WriteEquivalentReport(w io.Writer, label string, op hydraulics.ViscousOperatingPoint, fluid hydraulics.ViscousFluidProperties, res *hydraulics.EquivalentWaterResult) error {
	f, err := newWorkbook(sheetInput, sheetResults)
	if err != nil {
		return err
	}
	if err = writeKV(f, sheetInput, []kv{
		{"Pump", label, ""},
		{"Flow (viscous)", op.Flow, "m³/h"},
		{"Head (viscous)", op.Head, "m"},
		{"Kinematic viscosity", fluid.KinematicViscosity, "cSt"},
		{"Specific gravity", fluid.SpecificGravity, ""},
		{"Efficiency (water)", op.WaterEfficiency * 100, "%"},
	}); err != nil {
		return err
	}
	results := []kv{
		{"B", res.B, ""},
		{"C_q", res.Cq, ""},
		{"C_H", res.Ch, ""},
		{"C_eta", res.Ceta, ""},
		{"Flow (water equivalent)", res.WaterFlow, "m³/h"},
		{"Head (water equivalent)", res.WaterHead, "m"},
		{"Efficiency (viscous)", res.ViscousEfficiency * 100, "%"},
		{"Power (viscous)", res.Power, "kW"},
	}
	if err = writeKV(f, sheetResults, append(results, warningRows(res.Warnings)...)); err != nil {
		return err
	}
	return writeTo(f, w)
}

func pipelineResultRows(res *hydraulics.PipelineSizingResult) []kv {
	return []kv{
		{"Reynolds number", res.Reynolds, ""},
		{"Regime", res.Regime.String(), ""},
		{"Friction factor", res.FrictionFactor, ""},
		{"Pressure loss per meter", res.PressureLossPerMeter, "Pa/m"},
		{"Allowed pressure drop", res.AllowedDrop, "Pa"},
		{"Total length (L)", res.RequiredLength, "m"},
		{"Manometric head (H)", res.RequiredHead, "m"},
		{"Mass flow rate", res.MassFlow, "kg/s"},
		{"Average velocity", res.MeanVelocity, "m/s"},
		{"Segment pressure loss", res.SegmentPressureLoss, "Pa"},
	}
}

func pipelineInputRows(c PipelineCase, cfg Config) []kv {
	g, div := cfg.Gravity, cfg.DropDivisor
	if c.Gravity != nil {
		g = *c.Gravity
	}
	if c.DropDivisor != nil {
		div = *c.DropDivisor
	}
	return []kv{
		{"Case", c.Label, ""},
		{"Gravity", g, "m/s²"},
		{"Dynamic viscosity", c.DynamicViscosity, "Pa·s"},
		{"Density", c.Density, "kg/m³"},
		{"Nominal pressure", c.PressureNominal / 1e5, "bar"},
		{"Minimum pressure", c.PressureMinimum / 1e5, "bar"},
		{"ΔP divisor coefficient", div, ""},
		{"Volumetric flow rate", c.Flow, c.FlowUnit},
		{"Internal diameter", c.Diameter, c.DiameterUnit},
		{"Absolute roughness", c.Roughness, "m"},
		{"Segment length", c.Length, "m"},
	}
}

func (s *Service) WritePipelineReport(w io.Writer, c PipelineCase, res *hydraulics.PipelineSizingResult) error {
	f, err := newWorkbook(sheetInput, sheetResults)
	if err != nil {
		return err
	}
	if err = writeKV(f, sheetInput, pipelineInputRows(c, s.cfg)); err != nil {
		return err
	}
	if err = writeKV(f, sheetResults, pipelineResultRows(res)); err != nil {
		return err
	}
	return writeTo(f, w)
}

// WriteCasesReport 批量工况结果，一行一个工况
func WriteCasesReport(w io.Writer, result *ImportCasesResult) error {
	f, err := newWorkbook(sheetCases)
	if err != nil {
		return err
	}
	header := []any{
		"Row", "Label", "Reynolds", "Regime", "f", "Loss [Pa/m]",
		"L [m]", "H [m]", "Mass flow [kg/s]", "Velocity [m/s]", "Error",
	}
	rows := make([][]any, 0, len(result.Cases))
	for _, c := range result.Cases {
		if c.Result == nil {
			rows = append(rows, []any{c.Row, c.Case.Label, nil, nil, nil, nil, nil, nil, nil, nil, c.Error})
			continue
		}
		r := c.Result
		rows = append(rows, []any{
			c.Row, c.Case.Label, r.Reynolds, r.Regime.String(), r.FrictionFactor, r.PressureLossPerMeter,
			r.RequiredLength, r.RequiredHead, r.MassFlow, r.MeanVelocity, "",
		})
	}
	if err = writeTable(f, sheetCases, header, rows); err != nil {
		return err
	}
	return writeTo(f, w)
}
