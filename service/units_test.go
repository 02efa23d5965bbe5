package service

import (
	"testing"

	"hydrocalc/hydraulics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowRateToM3s(t *testing.T) {
	tests := []struct {
		unit string
		in   float64
		want float64
	}{
		{"m3/h", 3600, 1},
		{"m³/h", 7200, 2},
		{"", 3600, 1},
		{"m3/s", 0.5, 0.5},
	}
	for _, tt := range tests {
		got, err := flowRateToM3s(tt.in, tt.unit)
		require.NoError(t, err, tt.unit)
		assert.InDelta(t, tt.want, got, 1e-12, tt.unit)
	}

	_, err := flowRateToM3s(1, "gpm")
	var inErr *hydraulics.InvalidInputError
	assert.ErrorAs(t, err, &inErr)
}

func TestDiameterToM(t *testing.T) {
	tests := []struct {
		unit string
		in   float64
		want float64
	}{
		{"in", 24, 0.6096},
		{"inch", 24, 0.6096},
		{"mm", 600, 0.6},
		{"m", 0.6, 0.6},
	}
	for _, tt := range tests {
		got, err := diameterToM(tt.in, tt.unit)
		require.NoError(t, err, tt.unit)
		assert.InDelta(t, tt.want, got, 1e-12, tt.unit)
	}

	_, err := diameterToM(1, "ft")
	assert.Error(t, err)

	for _, v := range []float64{24, 0.6} {
		_, err = diameterToM(v, "")
		var inErr *hydraulics.InvalidInputError
		require.ErrorAs(t, err, &inErr)
		assert.Equal(t, "diameterUnit", inErr.Field)
	}
}

func TestCalculateStats(t *testing.T) {
	p := calculateStats([]float64{1, 2, 3, 4})
	assert.Equal(t, 1.0, p.Min)
	assert.Equal(t, 4.0, p.Max)
	assert.Equal(t, 2.5, p.Average)
	assert.InDelta(t, 1.25, p.Variance, 1e-12)
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "pump_curve_P_101_A.xlsx", ReportFileName("pump_curve", "P 101/A"))
	assert.Equal(t, "pipeline.xlsx", ReportFileName("pipeline", "  "))
}
