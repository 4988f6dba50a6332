package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("PROBE_TIMEOUT", "")
	t.Setenv("TEMPLATE_DIR", "")

	cfg := Load()

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultProbeTimeout, cfg.ProbeTimeout)
	assert.Empty(t, cfg.TemplateDir)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "0.0.0.0:8080")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PROBE_TIMEOUT", "750ms")
	t.Setenv("TEMPLATE_DIR", "/srv/templates")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 750*time.Millisecond, cfg.ProbeTimeout)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, DefaultProbeTimeout, cfg.ProbeTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "missing address",
			mutate:  func(c *Config) { c.Address = "" },
			wantErr: "Address is required",
		},
		{
			name:    "address without port",
			mutate:  func(c *Config) { c.Address = "localhost" },
			wantErr: "Address must be a host:port pair",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "LogLevel must be one of [debug info warn error]",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "LogFormat must be one of [text json]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Address:      DefaultAddress,
				LogLevel:     "info",
				LogFormat:    "text",
				ProbeTimeout: DefaultProbeTimeout,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
