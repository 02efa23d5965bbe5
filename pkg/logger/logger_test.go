package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, Level())

	SetLevel("not-a-level")
	assert.Equal(t, zapcore.DebugLevel, Level())

	SetLevel("warn")
	assert.Equal(t, zapcore.WarnLevel, Level())
}

func TestNopLoggerBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() { Logger.Infof("calc %s", "ok") })
}
