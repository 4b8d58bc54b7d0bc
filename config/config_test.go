package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/numlab/config"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Linear.Pivoting)
	assert.Equal(t, 1e-12, cfg.Linear.Epsilon)
	assert.Equal(t, 1e-20, cfg.Roots.SecantGuard)
	assert.Equal(t, 1e-15, cfg.Roots.NewtonGuard)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeFile(t, `
roots:
  tolerance: 0.5
linear:
  pivoting: false
server:
  addr: ":9090"
  read_timeout: 2s
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Roots.Tolerance)
	assert.Equal(t, 50, cfg.Roots.MaxIterations, "untouched keys keep defaults")
	assert.False(t, cfg.Linear.Pivoting)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "roots: [1, 2"))
	assert.ErrorIs(t, err, numerr.ErrInput)

	for name, body := range map[string]string{
		"zero iterations":    "roots:\n  max_iterations: 0\n",
		"negative tolerance": "roots:\n  tolerance: -1\n",
		"bad sense":          "golden:\n  sense: sideways\n",
		"bad level":          "log:\n  level: loud\n",
		"empty addr":         "server:\n  addr: \"\"\n",
		"zero epsilon":       "linear:\n  epsilon: 0\n",
		"negative rate":      "server:\n  rate_limit: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, numerr.ErrInput)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	out, err := config.Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_iterations: 50")

	path := writeFile(t, string(out))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Equal(t, slog.LevelInfo, config.LogConfig{Level: "??"}.SlogLevel())
}
