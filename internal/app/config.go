package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/tagweaver/internal/config"
	"github.com/specialistvlad/tagweaver/internal/fsutil"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields are unset; NewConfig fills in defaults.
type Config struct {
	InputPath  string
	OutputPath string
	GraphPath  string // optional dependency manifest
	ConfigPath string // optional HCL project file

	LogFormat string
	LogLevel  string
}

// NewConfig normalizes and validates cfg, applying defaults for unset fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("input directory not specified, use --in=<path>")
	}
	cfg.InputPath = fsutil.NormalizePath(cfg.InputPath)

	if cfg.OutputPath == "" {
		cfg.OutputPath = fsutil.DefaultOutput(cfg.InputPath)
	} else {
		cfg.OutputPath = fsutil.NormalizePath(cfg.OutputPath)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// merge fills the fields cfg leaves unset from a project file model.
func (cfg Config) merge(m *config.Model) Config {
	if cfg.InputPath == "" {
		cfg.InputPath = m.Input
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = m.Output
	}
	if cfg.GraphPath == "" {
		cfg.GraphPath = m.Graph
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = m.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = m.LogFormat
	}
	return cfg
}
