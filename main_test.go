package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hydrocalc/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceConfig_Defaults(t *testing.T) {
	cfg, err := serviceConfig()
	require.NoError(t, err)

	def := service.DefaultConfig()
	assert.Equal(t, def.Solver, cfg.Solver)
	assert.Equal(t, def.Gravity, cfg.Gravity)
	assert.Equal(t, def.DropDivisor, cfg.DropDivisor)
	assert.InDeltaSlice(t, def.CurveRatios, cfg.CurveRatios, 1e-9)
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(service.NewService(nil, service.DefaultConfig()))

	body := `{"reynolds": 1000, "diameter": 0.1}`
	req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/friction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
