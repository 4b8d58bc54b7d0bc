// SPDX-License-Identifier: MIT

// Package config loads numlab defaults from YAML.
//
// Every section has a default, so a file only needs the keys it changes:
//
//	roots:
//	  tolerance: 0.5
//	linear:
//	  pivoting: false
//	server:
//	  addr: ":9090"
//	log:
//	  level: debug
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/roots"
	"gopkg.in/yaml.v3"
)

// Config is the whole file.
type Config struct {
	Roots  RootsConfig  `yaml:"roots"`
	Linear LinearConfig `yaml:"linear"`
	Golden GoldenConfig `yaml:"golden"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// RootsConfig holds defaults shared by the root-finders.
type RootsConfig struct {
	Tolerance     float64 `yaml:"tolerance" validate:"finite,gte=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
	SecantGuard   float64 `yaml:"secant_guard" validate:"finite,gt=0"`
	NewtonGuard   float64 `yaml:"newton_guard" validate:"finite,gt=0"`
}

// LinearConfig holds solver defaults.
type LinearConfig struct {
	Pivoting bool    `yaml:"pivoting"`
	Epsilon  float64 `yaml:"epsilon" validate:"finite,gt=0"`
}

// GoldenConfig holds golden-section defaults.
type GoldenConfig struct {
	MaxIterations int    `yaml:"max_iterations" validate:"gt=0"`
	Sense         string `yaml:"sense" validate:"oneof=max min"`
}

// ServerConfig holds the HTTP listener settings and per-request caps.
type ServerConfig struct {
	Addr          string        `yaml:"addr" validate:"required"`
	ReadTimeout   time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout  time.Duration `yaml:"write_timeout" validate:"gte=0"`
	MaxIterations int           `yaml:"max_iterations" validate:"gt=0"`
	MaxDimension  int           `yaml:"max_dimension" validate:"gt=0"`

	// RateLimit is requests per second across all engine routes; 0 disables it.
	RateLimit float64 `yaml:"rate_limit" validate:"finite,gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Roots: RootsConfig{
			Tolerance:     1,
			MaxIterations: 50,
			SecantGuard:   roots.DefaultSecantGuard,
			NewtonGuard:   roots.DefaultNewtonGuard,
		},
		Linear: LinearConfig{Pivoting: true, Epsilon: linsolve.DefaultEpsilon},
		Golden: GoldenConfig{MaxIterations: 8, Sense: "max"},
		Server: ServerConfig{
			Addr:          ":8080",
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  10 * time.Second,
			MaxIterations: 10_000,
			MaxDimension:  64,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default(). An empty path returns the defaults.
// The result is validated; violations wrap numerr.ErrInput.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %v: %w", path, err, numerr.ErrInput)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every section's tags.
func (c Config) Validate() error { return numerr.Validate(c) }

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }

// SlogLevel maps Level to a slog.Level; unknown values mean Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a slog.Logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
