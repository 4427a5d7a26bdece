package script

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/logging"
)

// DefaultTimeout bounds a script load or a single action call.
const DefaultTimeout = 2 * time.Second

// Engine runs Lua scripts that define actions.
//
// gopher-lua's LState is not goroutine-safe; every use of the state goes
// through mu.
type Engine struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	logger  *zap.Logger
	closed  bool

	// Definitions made by the script being loaded; committed on success.
	pending       []*action.Action
	pendingSticky []string

	actions []*action.Action
	sticky  []string

	// env is the buffer of the running action, nil outside actions.
	env host.Env
	// script names the file or chunk being loaded, for log fields.
	script string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the limit for loads and action calls.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the engine's logger. Lua's print writes to it.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine with a fresh sandboxed state.
func New(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.WithComponent(e.logger, "script")

	e.L = lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(e.L)
	e.installAPI()
	return e
}

// openSafeLibraries opens base, table, string and math. io, os, debug and
// package are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module", "getfenv", "setfenv"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// LoadFile runs the script at path. Actions it defines are kept only if
// it completes without error.
func (e *Engine) LoadFile(ctx context.Context, path string) error {
	return e.load(ctx, path, func() error { return e.L.DoFile(path) })
}

// LoadString runs src as a chunk called name.
func (e *Engine) LoadString(ctx context.Context, name, src string) error {
	return e.load(ctx, name, func() error {
		fn, err := e.L.Load(strings.NewReader(src), name)
		if err != nil {
			return err
		}
		e.L.Push(fn)
		return e.L.PCall(0, lua.MultRet, nil)
	})
}

func (e *Engine) load(ctx context.Context, name string, run func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	e.pending, e.pendingSticky = nil, nil
	e.script = name
	defer func() { e.script = "" }()

	top := e.L.GetTop()
	err := e.withContext(ctx, run)
	e.L.SetTop(top)
	if err != nil {
		return e.wrap(ctx, "load "+name, err)
	}

	for _, a := range e.pending {
		if slices.ContainsFunc(e.actions, func(b *action.Action) bool { return b.Name() == a.Name() }) {
			return fmt.Errorf("%w: %s", action.ErrDuplicate, a.Name())
		}
	}
	e.actions = append(e.actions, e.pending...)
	e.sticky = append(e.sticky, e.pendingSticky...)
	e.logger.Debug("script loaded", zap.String("script", name), zap.Int("actions", len(e.pending)))
	return nil
}

// withContext runs fn with the state bound to ctx plus the engine timeout.
func (e *Engine) withContext(ctx context.Context, fn func() error) error {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.L.SetContext(callCtx)
	defer e.L.RemoveContext()

	err := fn()
	if err != nil && callCtx.Err() != nil && ctx.Err() == nil {
		return fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
	}
	return err
}

func (e *Engine) wrap(ctx context.Context, what string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, ErrTimeout) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("script: %s: %w", what, err)
}

// Actions returns the actions defined by every loaded script, in
// definition order.
func (e *Engine) Actions() []*action.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.actions)
}

// Sticky returns the action names scripts marked sticky.
func (e *Engine) Sticky() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.sticky)
}

// Register adds the script actions to reg and marks the sticky ones.
func (e *Engine) Register(reg *action.Registry) error {
	if err := reg.Register(e.Actions()...); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := reg.MarkSticky(e.Sticky()...); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Close releases the Lua state. Actions from a closed engine return
// ErrClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}

// invoker returns the action body calling fn.
func (e *Engine) invoker(name string, fn *lua.LFunction) action.Func {
	return func(ctx context.Context, args ...any) error {
		env, err := host.FromContext(ctx)
		if err != nil {
			return err
		}
		return e.call(ctx, name, env, fn, args)
	}
}

func (e *Engine) call(ctx context.Context, name string, env host.Env, fn *lua.LFunction, args []any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	e.env = env
	defer func() { e.env = nil }()

	lv := make([]lua.LValue, len(args))
	for i, a := range args {
		lv[i] = e.toLua(a)
	}

	top := e.L.GetTop()
	err := e.withContext(ctx, func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lv...)
	})
	e.L.SetTop(top)
	if err != nil {
		return e.wrap(ctx, name, err)
	}
	return nil
}
