package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hydrocalc/hydraulics"

	"github.com/spf13/cast"
)

// parseRatios 解析 "0.2,0.4,1.0" 形式的流量比
func parseRatios(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ratios := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid ratio %q", p)
		}
		ratios = append(ratios, v)
	}
	return ratios, nil
}

func parseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := cast.ToIntE(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}

// calcError maps calculation errors to status and errcode.
func calcError(err error) (int, errcode) {
	var (
		inErr   *hydraulics.InvalidInputError
		cfgErr  *hydraulics.InvalidConfigurationError
		convErr *hydraulics.ConvergenceError
	)
	switch {
	case errors.As(err, &inErr):
		return http.StatusBadRequest, errInvalidInput
	case errors.As(err, &cfgErr), errors.As(err, &convErr):
		return http.StatusUnprocessableEntity, errCalculation
	default:
		return http.StatusInternalServerError, errInternalServer
	}
}
