// Package config loads algoviz settings with priority env > file > defaults
// and validates the result.
//
// File format is YAML; JSON files parse too, being valid YAML. Environment
// overrides use the ALGOVIZ_ prefix:
//
//	ALGOVIZ_ADDR               server.addr
//	ALGOVIZ_MODE               server.mode (debug|release|test)
//	ALGOVIZ_SHUTDOWN_TIMEOUT   server.shutdown_timeout (Go duration)
//	ALGOVIZ_LOG_LEVEL          logging.level (debug|info|warn|error)
//	ALGOVIZ_LOG_JSON           logging.json
//	ALGOVIZ_MAX_ELEMENTS       limits.max_elements
//	ALGOVIZ_MAX_N              limits.max_n
//	ALGOVIZ_MAX_HANOI_DISKS    limits.max_hanoi_disks
//	ALGOVIZ_MAX_TEXT           limits.max_text
//	ALGOVIZ_MAX_EDGES          limits.max_edges
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ALGOVIZ_"

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	Limits  LimitsConfig  `json:"limits" yaml:"limits"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr" validate:"required"`
	Mode            string        `json:"mode" yaml:"mode" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `json:"json" yaml:"json"`
}

// LimitsConfig caps request sizes. Traces grow with the input (quadratically
// for the sorts, exponentially for tower), so the server rejects anything
// larger before running the engine.
type LimitsConfig struct {
	MaxElements   int `json:"max_elements" yaml:"max_elements" validate:"min=1"`
	MaxN          int `json:"max_n" yaml:"max_n" validate:"min=0,max=20"`
	MaxHanoiDisks int `json:"max_hanoi_disks" yaml:"max_hanoi_disks" validate:"min=1,max=16"`
	MaxText       int `json:"max_text" yaml:"max_text" validate:"min=1"`
	MaxEdges      int `json:"max_edges" yaml:"max_edges" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":5000",
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Limits: LimitsConfig{
			MaxElements:   100,
			MaxN:          20,
			MaxHanoiDisks: 10,
			MaxText:       64,
			MaxEdges:      200,
		},
	}
}

// Load builds the configuration from defaults, then the file at path (if
// non-empty and present), then the environment, and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: load %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Decode into a copy so a file that fails halfway leaves cfg untouched.
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	*cfg = next
	return nil
}

type lookupFunc func(key string) (string, bool)

func loadEnv(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s=%q: not an integer", EnvPrefix, name, v))
			return
		}
		*dst = n
	}

	str("ADDR", &cfg.Server.Addr)
	str("MODE", &cfg.Server.Mode)
	if v, ok := lookup(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSHUTDOWN_TIMEOUT=%q: %v", EnvPrefix, v, err))
		} else {
			cfg.Server.ShutdownTimeout = d
		}
	}

	str("LOG_LEVEL", &cfg.Logging.Level)
	if v, ok := lookup(EnvPrefix + "LOG_JSON"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sLOG_JSON=%q: not a boolean", EnvPrefix, v))
		} else {
			cfg.Logging.JSON = b
		}
	}

	num("MAX_ELEMENTS", &cfg.Limits.MaxElements)
	num("MAX_N", &cfg.Limits.MaxN)
	num("MAX_HANOI_DISKS", &cfg.Limits.MaxHanoiDisks)
	num("MAX_TEXT", &cfg.Limits.MaxText)
	num("MAX_EDGES", &cfg.Limits.MaxEdges)

	return errors.Join(errs...)
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
