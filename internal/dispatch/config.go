package dispatch

import (
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/target"
)

// Config holds dispatcher configuration.
type Config struct {
	// Detectors is the ordered detector registry. Required.
	Detectors *target.Registry

	// Maps resolves named map references. Optional.
	Maps *actionmap.Registry

	// Actions owns the sticky marker set. Required.
	Actions *action.Registry

	// Prompter shows and hides the menu. Defaults to a no-op.
	Prompter Prompter

	// DefaultTrigger is the key the Default entry point invokes.
	DefaultTrigger key.Event

	// Logger receives dispatch logs. Nil disables logging.
	Logger *zap.Logger

	// Stats collects invocation statistics when non-nil.
	Stats *Stats
}

// DefaultConfig returns a configuration with RET as the default trigger
// and no prompter.
func DefaultConfig() Config {
	return Config{
		Prompter:       PrompterFuncs{},
		DefaultTrigger: key.NewSpecialEvent(key.KeyEnter, key.ModNone),
	}
}

// WithDetectors returns a copy of the config with the detector registry set.
func (c Config) WithDetectors(r *target.Registry) Config {
	c.Detectors = r
	return c
}

// WithMaps returns a copy of the config with the named map registry set.
func (c Config) WithMaps(r *actionmap.Registry) Config {
	c.Maps = r
	return c
}

// WithActions returns a copy of the config with the action registry set.
func (c Config) WithActions(r *action.Registry) Config {
	c.Actions = r
	return c
}

// WithPrompter returns a copy of the config with the prompter set.
func (c Config) WithPrompter(p Prompter) Config {
	c.Prompter = p
	return c
}

// WithDefaultTrigger returns a copy of the config with the default
// trigger set.
func (c Config) WithDefaultTrigger(ev key.Event) Config {
	c.DefaultTrigger = ev
	return c
}

// WithLogger returns a copy of the config with the logger set.
func (c Config) WithLogger(l *zap.Logger) Config {
	c.Logger = l
	return c
}

// WithStats returns a copy of the config collecting into s.
func (c Config) WithStats(s *Stats) Config {
	c.Stats = s
	return c
}
