package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func caseWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	buf := new(bytes.Buffer)
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf
}

var caseHeader = []any{
	"label", "gravity", "dynamicViscosity", "density", "pressureNominal", "pressureMinimum",
	"dropDivisor", "flowM3h", "diameterInch", "roughness",
}

func TestImportPipelineCases(t *testing.T) {
	buf := caseWorkbook(t, [][]any{
		caseHeader,
		{"line A", 9.81, 0.0945, 945, 1e6, 5.2e5, 2, 2124, 24, 4.5e-5},
		{"line B", "", 0.0945, 945, 1e6, 5.2e5, "", 1062, 24, 4.5e-5},
		{"bad number", 9.81, "abc", 945, 1e6, 5.2e5, 2, 2124, 24, 4.5e-5},
		{"bad pressure", 9.81, 0.0945, 945, 1e5, 5.2e5, 2, 2124, 24, 4.5e-5},
		{},
		{"", 9.81, 0.0945, 945, 1e6, 5.2e5, 2, 2124, 24, 4.5e-5},
	})

	res, err := NewService(nil, DefaultConfig()).ImportPipelineCases(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Cases, 5)

	assert.Equal(t, 2, res.Cases[0].Row)
	require.NotNil(t, res.Cases[0].Result)
	assert.InDelta(t, 25.889, res.Cases[0].Result.RequiredHead, 1e-3)

	// defaults fill gravity and divisor
	require.NotNil(t, res.Cases[1].Result)
	assert.InDelta(t, 25.889, res.Cases[1].Result.RequiredHead, 1e-3)

	assert.Nil(t, res.Cases[2].Result)
	assert.Contains(t, res.Cases[2].Error, "dynamicviscosity")
	assert.Nil(t, res.Cases[3].Result)
	assert.NotEmpty(t, res.Cases[3].Error)

	assert.Equal(t, "row 7", res.Cases[4].Case.Label)

	require.NotNil(t, res.LengthStats)
	assert.LessOrEqual(t, res.LengthStats.Min, res.LengthStats.Max)
	assert.InDelta(t, 25.889, res.HeadStats.Average, 1e-3)
}

func TestImportPipelineCases_MissingColumns(t *testing.T) {
	buf := caseWorkbook(t, [][]any{
		{"label", "density"},
		{"x", 945},
	})
	_, err := NewService(nil, DefaultConfig()).ImportPipelineCases(buf)
	assert.ErrorContains(t, err, "misses column")

	buf = caseWorkbook(t, [][]any{
		{"dynamicViscosity", "density", "pressureNominal", "pressureMinimum", "roughness", "diameterMm"},
		{0.0945, 945, 1e6, 5.2e5, 4.5e-5, 600},
	})
	_, err = NewService(nil, DefaultConfig()).ImportPipelineCases(buf)
	assert.ErrorContains(t, err, "flow column")
}

func TestImportPipelineCases_Empty(t *testing.T) {
	buf := caseWorkbook(t, [][]any{caseHeader})
	_, err := NewService(nil, DefaultConfig()).ImportPipelineCases(buf)
	assert.Error(t, err)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "flowm3h", normalizeHeader(" Flow_M3h "))
	assert.Equal(t, "diameterinch", normalizeHeader("Diameter-Inch"))
}
