package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/config"
	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/kinds"
	"github.com/dshills/atpoint/internal/script"
)

// components are the parts rebuilt from each configuration.
type components struct {
	set        *kinds.Set
	scripts    *script.Engine
	dispatcher *dispatch.Dispatcher
}

func (c *components) close() error {
	if c == nil || c.scripts == nil {
		return nil
	}
	return c.scripts.Close()
}

// bootstrapper builds components with cleanup on failure.
type bootstrapper struct {
	app       *Application
	cfg       *config.Config
	c         *components
	initOrder []string
}

func newBootstrapper(app *Application, cfg *config.Config) *bootstrapper {
	return &bootstrapper{
		app:       app,
		cfg:       cfg,
		c:         &components{},
		initOrder: make([]string, 0, 6),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap(ctx context.Context) (*components, error) {
	var err error

	// 1. Built-in actions, maps and detectors
	if err = b.initKinds(); err != nil {
		b.cleanup()
		return nil, err
	}

	// 2. Lua actions, so configuration can bind them
	if err = b.initScripts(ctx); err != nil {
		b.cleanup()
		return nil, err
	}

	// 3. Configuration against the known names
	if err = b.validate(); err != nil {
		b.cleanup()
		return nil, err
	}

	// 4. User bindings and sticky marks
	if err = b.initBindings(); err != nil {
		b.cleanup()
		return nil, err
	}

	// 5. Detector selection and order
	if err = b.initDetectors(); err != nil {
		b.cleanup()
		return nil, err
	}

	// 6. Dispatcher
	if err = b.initDispatcher(); err != nil {
		b.cleanup()
		return nil, err
	}

	return b.c, nil
}

func (b *bootstrapper) initKinds() error {
	set, err := kinds.NewSet()
	if err != nil {
		return &InitError{Component: "kinds", Err: err}
	}
	b.c.set = set
	b.initOrder = append(b.initOrder, "kinds")
	return nil
}

func (b *bootstrapper) initScripts(ctx context.Context) error {
	paths := b.cfg.ScriptPaths()
	if len(paths) == 0 {
		return nil
	}

	b.c.scripts = script.New(script.WithLogger(b.app.logger))
	b.initOrder = append(b.initOrder, "scripts")

	for _, p := range paths {
		if err := b.c.scripts.LoadFile(ctx, p); err != nil {
			return &InitError{Component: "scripts", Err: err}
		}
	}
	if err := b.c.scripts.Register(b.c.set.Actions); err != nil {
		return &InitError{Component: "scripts", Err: err}
	}
	b.app.logger.Debug("scripts loaded",
		zap.Strings("paths", paths),
		zap.Int("actions", len(b.c.scripts.Actions())))
	return nil
}

func (b *bootstrapper) validate() error {
	known := config.Known{
		Actions: b.c.set.Actions.Names(),
		Maps:    b.c.set.MapNames(),
	}
	if err := b.cfg.Validate(known); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	return nil
}

func (b *bootstrapper) initBindings() error {
	for _, bind := range b.cfg.Bindings() {
		if err := b.c.set.Bind(bind.Map, bind.Spec, bind.Action); err != nil {
			return &InitError{
				Component: "bindings",
				Err:       fmt.Errorf("keys.%s.%s: %w", bind.Map, bind.Spec, err),
			}
		}
	}
	if err := b.c.set.Actions.MarkSticky(b.cfg.Sticky...); err != nil {
		return &InitError{Component: "bindings", Err: err}
	}
	return nil
}

func (b *bootstrapper) initDetectors() error {
	selected, err := b.cfg.DetectorKinds()
	if err != nil {
		return &InitError{Component: "detectors", Err: err}
	}
	if len(selected) == 0 {
		return nil
	}
	if err := b.c.set.Detectors.Retain(selected...); err != nil {
		return &InitError{Component: "detectors", Err: err}
	}
	return nil
}

func (b *bootstrapper) initDispatcher() error {
	trigger, err := key.Parse(b.cfg.DefaultTrigger)
	if err != nil {
		return &InitError{Component: "dispatcher", Err: err}
	}

	cfg := dispatch.DefaultConfig().
		WithDetectors(b.c.set.Detectors).
		WithMaps(b.c.set.Maps).
		WithActions(b.c.set.Actions).
		WithDefaultTrigger(trigger).
		WithLogger(b.app.logger).
		WithStats(b.app.stats)
	if b.app.opts.Prompter != nil {
		cfg = cfg.WithPrompter(b.app.opts.Prompter)
	}

	d, err := dispatch.New(cfg)
	if err != nil {
		return &InitError{Component: "dispatcher", Err: err}
	}
	b.c.dispatcher = d
	b.initOrder = append(b.initOrder, "dispatcher")
	return nil
}

// cleanup releases components in reverse initialization order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "scripts":
			if err := b.c.scripts.Close(); err != nil {
				b.app.logger.Warn("closing scripts", zap.Error(err))
			}
			b.c.scripts = nil
		case "dispatcher":
			b.c.dispatcher = nil
		case "kinds":
			b.c.set = nil
		}
	}
}
