package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := newViper()
	assert.Equal(t, ":12580", v.GetString("server.addr"))
	assert.Equal(t, 100, v.GetInt("friction.maxIterations"))
	assert.Equal(t, 1e-6, v.GetFloat64("friction.tolerance"))
	assert.Equal(t, 0.2, v.GetFloat64("curve.start"))
	assert.Empty(t, v.GetString("db.dsn"))
}

func TestInitConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hydrocalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("friction:\n  maxIterations: 50\nlog:\n  level: debug\n"), 0o644))

	InitConf(path)
	assert.Equal(t, 50, Conf.GetInt("friction.maxIterations"))
	assert.Equal(t, "debug", Conf.GetString("log.level"))
	assert.Equal(t, 0.02, Conf.GetFloat64("friction.initialGuess"))
}

func TestOnChange(t *testing.T) {
	var got []string
	OnChange(func(e fsnotify.Event) { got = append(got, e.Name) })
	notify(fsnotify.Event{Name: "hydrocalc.yaml", Op: fsnotify.Write})
	assert.Equal(t, []string{"hydrocalc.yaml"}, got)
}
