// Package config holds the server's startup settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvAddress       = "SHAPE_WEBSERVER_ADDR"
	EnvWorkers       = "SHAPE_WEBSERVER_WORKERS"
	EnvPagesDir      = "SHAPE_WEBSERVER_PAGES_DIR"
	EnvStrictHeaders = "SHAPE_WEBSERVER_STRICT_HEADERS"
	EnvLogLevel      = "SHAPE_WEBSERVER_LOG_LEVEL"
	EnvLogFormat     = "SHAPE_WEBSERVER_LOG_FORMAT"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the server configuration.
type Config struct {
	Address       string // listen address, host:port
	Workers       int    // worker pool size
	PagesDir      string // directory with hello.html and 404.html; empty uses the embedded pages
	StrictHeaders bool   // reject header lines with an empty value
	LogLevel      string // zerolog level name
	LogFormat     string // FormatConsole or FormatJSON
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Address:   "localhost:7878",
		Workers:   4,
		LogLevel:  zerolog.LevelInfoValue,
		LogFormat: FormatConsole,
	}
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// FromEnv returns Default overridden by the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load returns Default overridden by the variables lookup reports.
func Load(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddress); ok {
		cfg.Address = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvPagesDir); ok {
		cfg.PagesDir = v
	}
	if v, ok := lookup(EnvStrictHeaders); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvStrictHeaders, err)
		}
		cfg.StrictHeaders = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Address == "" {
		return errors.New("config: address is empty")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
