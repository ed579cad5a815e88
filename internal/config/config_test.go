package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seating/pkg/sims/seating"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "graph", cfg.Engine)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, []seating.Rule{seating.DefaultRule(seating.Adjacent), seating.DefaultRule(seating.Visible)}, rules)

	kind, err := cfg.EngineKind()
	require.NoError(t, err)
	assert.Equal(t, seating.EngineGraph, kind)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seating.yaml")
	content := `
engine: grid
logging:
  level: debug
runs:
  - policy: visible
    threshold: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "grid", cfg.Engine)
	assert.Equal(t, "debug", cfg.Logging.Level)
	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, []seating.Rule{{Policy: seating.Visible, Threshold: 6}}, rules)
}

func TestLoadFromFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seating.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: grid\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", cfg.Engine)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Runs, 2)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: [unterminated"), 0o644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("SEATING_ENGINE", "grid")
	t.Setenv("SEATING_LOG_LEVEL", "trace")
	t.Setenv("SEATING_THRESHOLD", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "grid", cfg.Engine)
	assert.Equal(t, "trace", cfg.Logging.Level)
	for _, run := range cfg.Runs {
		assert.Equal(t, 7, run.Threshold)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "unknown engine", mutate: func(c *Config) { c.Engine = "gpu" }, want: seating.ErrUnknownEngine},
		{name: "unknown policy", mutate: func(c *Config) { c.Runs[0].Policy = "knight" }, want: seating.ErrUnknownPolicy},
		{name: "threshold too high", mutate: func(c *Config) { c.Runs[1].Threshold = 9 }, want: seating.ErrThreshold},
		{name: "negative threshold", mutate: func(c *Config) { c.Runs[1].Threshold = -1 }, want: seating.ErrThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	cfg := Default()
	cfg.Runs = nil
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidateLogLevelIgnoresCase(t *testing.T) {
	for _, level := range []string{"DEBUG", "Warning", " trace ", "warn", ""} {
		cfg := Default()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q", level)
	}

	t.Setenv("SEATING_LOG_LEVEL", "DEBUG")
	t.Setenv("SEATING_ENGINE", "")
	t.Setenv("SEATING_THRESHOLD", "")
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}
