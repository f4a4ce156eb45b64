package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g. PORTFOLIO_ADDR.
const EnvPrefix = "PORTFOLIO"

const (
	defaultAddr      = ":8080"
	defaultRetention = 365 * 24 * time.Hour
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the server settings.
type Config struct {
	Addr       string
	Mode       string
	DBPath     string
	AdminToken string
	LogLevel   string
	Retention  time.Duration
}

// addServeFlags registers the flags read by loadConfig.
func addServeFlags(fs *pflag.FlagSet) {
	fs.String("addr", defaultAddr, "listen address")
	fs.String("mode", gin.ReleaseMode, "gin mode: debug, release or test")
	fs.String("db", "", "SQLite file for visit metrics (empty disables them)")
	fs.String("admin-token", "", "bearer token for /admin/api (empty disables the admin API)")
	fs.Duration("retention", defaultRetention, "how long visit records are kept")
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// loadConfig resolves flags, PORTFOLIO_* variables and the bare PORT variable
// (flag > prefixed env > PORT > default) and validates the result.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:       v.GetString("addr"),
		Mode:       v.GetString("mode"),
		DBPath:     v.GetString("db"),
		AdminToken: v.GetString("admin-token"),
		LogLevel:   v.GetString("log-level"),
		Retention:  v.GetDuration("retention"),
	}

	if !fs.Changed("addr") && os.Getenv(EnvPrefix+"_ADDR") == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Retention < 0 {
		return fmt.Errorf("%w: negative retention %s", ErrInvalidConfig, c.Retention)
	}
	return nil
}
