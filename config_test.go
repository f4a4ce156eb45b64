package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	addServeFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "PORTFOLIO_ADDR", "PORTFOLIO_MODE", "PORTFOLIO_DB", "PORTFOLIO_ADMIN_TOKEN", "PORTFOLIO_LOG_LEVEL", "PORTFOLIO_RETENTION"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadConfig(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:      ":8080",
		Mode:      "release",
		LogLevel:  "info",
		Retention: 365 * 24 * time.Hour,
	}, cfg)
}

func TestLoadConfigAddrPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bare PORT", map[string]string{"PORT": "9000"}, nil, ":9000"},
		{"prefixed env wins over PORT", map[string]string{"PORT": "9000", "PORTFOLIO_ADDR": "127.0.0.1:6000"}, nil, "127.0.0.1:6000"},
		{"flag wins over everything", map[string]string{"PORT": "9000", "PORTFOLIO_ADDR": ":6000"}, []string{"--addr", ":7000"}, ":7000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := loadConfig(testFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Addr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_MODE", "debug")
	t.Setenv("PORTFOLIO_DB", "visits.db")
	t.Setenv("PORTFOLIO_ADMIN_TOKEN", "secret")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_RETENTION", "720h")

	cfg, err := loadConfig(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, "visits.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.AdminToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 720*time.Hour, cfg.Retention)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode=turbo"}},
		{"unknown log level", []string{"--log-level=loud"}},
		{"negative retention", []string{"--retention=-1h"}},
		{"empty addr", []string{"--addr="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := loadConfig(testFlags(t, tt.args...))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
