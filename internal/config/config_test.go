package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "localhost:7878", cfg.Address)
	require.Equal(t, 4, cfg.Workers)
	require.Empty(t, cfg.PagesDir)
	require.False(t, cfg.StrictHeaders)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		EnvAddress:       "0.0.0.0:8080",
		EnvWorkers:       "16",
		EnvPagesDir:      "/srv/pages",
		EnvStrictHeaders: "true",
		EnvLogLevel:      "debug",
		EnvLogFormat:     FormatJSON,
	}))
	require.NoError(t, err)
	require.Equal(t, Config{
		Address:       "0.0.0.0:8080",
		Workers:       16,
		PagesDir:      "/srv/pages",
		StrictHeaders: true,
		LogLevel:      "debug",
		LogFormat:     FormatJSON,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(env(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_BadValues(t *testing.T) {
	_, err := Load(env(map[string]string{EnvWorkers: "four"}))
	require.ErrorContains(t, err, EnvWorkers)

	_, err = Load(env(map[string]string{EnvStrictHeaders: "sometimes"}))
	require.ErrorContains(t, err, EnvStrictHeaders)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.Address = "" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
