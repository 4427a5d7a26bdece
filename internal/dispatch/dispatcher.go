package dispatch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/compose"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/logging"
)

// Dispatcher runs at-point dispatches against a fixed set of registries.
type Dispatcher struct {
	cfg      Config
	composer *compose.Composer
	logger   *zap.Logger
}

// New validates cfg and creates a dispatcher. Named map references are
// checked up front so malformed tables fail at setup.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Detectors == nil {
		return nil, ErrNoDetectors
	}
	if cfg.Actions == nil {
		return nil, ErrNoActions
	}
	if cfg.DefaultTrigger.IsZero() {
		return nil, ErrInvalidTrigger
	}
	if cfg.Prompter == nil {
		cfg.Prompter = PrompterFuncs{}
	}
	if err := cfg.Maps.Validate(); err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}

	return &Dispatcher{
		cfg:      cfg,
		composer: compose.New(cfg.Detectors, cfg.Maps, cfg.Logger),
		logger:   logging.WithComponent(cfg.Logger, "dispatch"),
	}, nil
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config { return d.cfg }

// Stats returns the statistics collector, or nil.
func (d *Dispatcher) Stats() *Stats { return d.cfg.Stats }

// DefaultTrigger returns the key the Default entry point looks up.
func (d *Dispatcher) DefaultTrigger() key.Event { return d.cfg.DefaultTrigger }

// Compose builds the menu for env without running anything.
func (d *Dispatcher) Compose(ctx context.Context, env host.Env) (*compose.Menu, error) {
	ctx, _, _ = d.begin(ctx, env)
	return d.compose(ctx, env)
}

// Interactive composes the menu at point, shows it and returns the session
// that consumes the following keys.
func (d *Dispatcher) Interactive(ctx context.Context, env host.Env) (*Session, error) {
	ctx, id, log := d.begin(ctx, env)

	menu, err := d.compose(ctx, env)
	if err != nil {
		return nil, err
	}
	d.cfg.Stats.RecordSession(menu.Empty())
	log.Debug("menu opened", zap.Stringers("kinds", menu.Kinds()), zap.Int("bindings", menu.Applied.Len()))

	s := &Session{
		id:      id,
		d:       d,
		env:     env,
		menu:    menu,
		logger:  log,
		current: menu.Applied,
		prefix:  key.NewSequence(),
		active:  true,
		invoked: make(map[string]bool),
	}
	d.cfg.Prompter.Show(s.prompt())
	return s, nil
}

// Default composes the menu at point and invokes the action bound to the
// default trigger. It reports false without error when the trigger is
// unbound or bound to a prefix.
func (d *Dispatcher) Default(ctx context.Context, env host.Env) (bool, error) {
	ctx, _, log := d.begin(ctx, env)

	menu, err := d.compose(ctx, env)
	if err != nil {
		return false, err
	}

	entry, ok := menu.Applied.Lookup(d.cfg.DefaultTrigger)
	if !ok || entry.Kind() != actionmap.EntryLeaf {
		d.cfg.Stats.RecordDefault(false)
		log.Debug("no default action", zap.Stringer("trigger", d.cfg.DefaultTrigger))
		return false, nil
	}
	d.cfg.Stats.RecordDefault(true)

	_, err = d.invoke(ctx, log, entry.Invoker(), false)
	return true, err
}

// begin attaches a fresh dispatch id, the logger and env to ctx.
func (d *Dispatcher) begin(ctx context.Context, env host.Env) (context.Context, string, *zap.Logger) {
	id := uuid.NewString()
	log := logging.FromContext(ctx, d.logger).With(zap.String("dispatch", id))
	ctx = logging.IntoContext(ctx, log)
	ctx = host.WithEnv(ctx, env)
	return ctx, id, log
}

func (d *Dispatcher) compose(ctx context.Context, env host.Env) (*compose.Menu, error) {
	menu, err := d.composer.Compose(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}
	return menu, nil
}

// invoke runs inv and records it. It reports whether the underlying
// action is sticky.
func (d *Dispatcher) invoke(ctx context.Context, log *zap.Logger, inv action.Invoker, repeat bool) (bool, error) {
	name := action.Base(inv).Name()
	sticky := d.cfg.Actions.IsSticky(name)

	start := time.Now()
	err := invokeWithRecovery(ctx, inv)
	elapsed := time.Since(start)
	d.cfg.Stats.RecordInvoke(name, elapsed, err, repeat)

	if err != nil {
		log.Warn("action failed", zap.String("action", name), zap.Error(err))
		return sticky, err
	}
	log.Debug("action invoked",
		zap.String("action", name),
		zap.Bool("sticky", sticky),
		zap.Duration("elapsed", elapsed),
	)
	return sticky, nil
}

// invokeWithRecovery runs inv, turning a panic into ErrActionPanic.
func invokeWithRecovery(ctx context.Context, inv action.Invoker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			err = fmt.Errorf("%w in %s: %v\n%s", action.ErrActionPanic, inv.Name(), r, stack[:n])
		}
	}()
	return inv.Invoke(ctx)
}
