// Package app wires the configuration, the built-in kinds, Lua scripts and
// the dispatcher into a running atpoint instance, and rebuilds them when
// the configuration changes.
package app

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/analysis"
	"github.com/dshills/atpoint/internal/config"
	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/kinds"
	"github.com/dshills/atpoint/internal/logging"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty or missing means the
	// defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives logs. Defaults to os.Stderr.
	LogOutput io.Writer

	// Logger replaces the logger built from the configuration.
	Logger *zap.Logger

	// Prompter shows the interactive menu. Defaults to none.
	Prompter dispatch.Prompter
}

// Application owns the live registries and dispatcher.
type Application struct {
	opts     Options
	logger   *zap.Logger
	analysis *analysis.Service
	stats    *dispatch.Stats

	mu      sync.RWMutex
	config  *config.Config
	current *components
	closed  bool
}

// New loads the configuration and builds the dispatcher.
func New(ctx context.Context, opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger := opts.Logger
	if logger == nil {
		logger, err = logging.New(logging.Config{
			Level:  cfg.LogLevel,
			Format: logging.Format(cfg.LogFormat),
			Output: opts.LogOutput,
		})
		if err != nil {
			return nil, &InitError{Component: "logging", Err: err}
		}
	}

	app := &Application{
		opts:     opts,
		logger:   logger,
		analysis: analysis.NewService(logger),
		stats:    dispatch.NewStats(),
	}

	c, err := newBootstrapper(app, cfg).bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	app.config = cfg
	app.current = c

	logger.Debug("atpoint ready",
		zap.String("config", cfg.Path),
		zap.Int("detectors", c.set.Detectors.Len()),
		zap.Int("actions", c.set.Actions.Len()))
	return app, nil
}

// Dispatcher returns the current dispatcher.
func (app *Application) Dispatcher() *dispatch.Dispatcher {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.current.dispatcher
}

// Kinds returns the registries behind the current dispatcher.
func (app *Application) Kinds() *kinds.Set {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.current.set
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *zap.Logger { return app.logger }

// Stats returns the dispatch statistics, kept across reloads.
func (app *Application) Stats() *dispatch.Stats { return app.stats }

// Analysis returns the analysis service shared by opened buffers.
func (app *Application) Analysis() *analysis.Service { return app.analysis }
