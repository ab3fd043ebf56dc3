package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/tagweaver/internal/config"
	"github.com/specialistvlad/tagweaver/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp merges the optional project file into appConfig, validates the
// result and returns an App with its own isolated logger. Values given in
// appConfig take precedence over the project file.
func NewApp(ctx context.Context, outW io.Writer, appConfig Config, loader config.Loader) (*App, error) {
	if appConfig.ConfigPath != "" {
		model, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		appConfig = appConfig.merge(model)
	}

	cfg, err := NewConfig(appConfig)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// withLogger attaches the app's logger to ctx.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
