package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("view", pflag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"--scale", "3", "--rate=20", "--paused"}))
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, 20, cfg.Rate)
	assert.True(t, cfg.Paused)
	assert.Equal(t, DefaultConfig().TPS, cfg.TPS)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"scale": func(c *Config) { c.Scale = 0 },
		"tps":   func(c *Config) { c.TPS = 0 },
		"rate":  func(c *Config) { c.Rate = -1 },
		"hud":   func(c *Config) { c.HUDWidth = -5 },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestConfigWindowSize(t *testing.T) {
	cfg := Config{Scale: 4, HUDWidth: 100}
	w, h := cfg.WindowSize(10, 20)
	assert.Equal(t, 140, w)
	assert.Equal(t, 80, h)
}
