package action

import (
	"context"
	"fmt"
	"runtime"
)

// Invoker is anything a menu entry can call.
type Invoker interface {
	// Name returns the unique name of the underlying action.
	Name() string

	// Invoke runs the operation with the given arguments.
	Invoke(ctx context.Context, args ...any) error
}

// Func is the body of an action.
type Func func(ctx context.Context, args ...any) error

// Action is a named host operation.
type Action struct {
	name        string
	description string
	arity       int
	fn          Func
}

// New creates an action. Arity is the number of arguments the function
// expects and must be 0 or 1.
func New(name, description string, arity int, fn Func) (*Action, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: empty name", ErrInvalidAction)
	case fn == nil:
		return nil, fmt.Errorf("%w: %s: nil function", ErrInvalidAction, name)
	case arity < 0 || arity > 1:
		return nil, fmt.Errorf("%w: %s: arity %d", ErrInvalidAction, name, arity)
	}
	return &Action{name: name, description: description, arity: arity, fn: fn}, nil
}

// MustNew is like New but panics on error.
// Use only for static action tables.
func MustNew(name, description string, arity int, fn Func) *Action {
	a, err := New(name, description, arity, fn)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the action name.
func (a *Action) Name() string { return a.name }

// Description returns the one-line help text.
func (a *Action) Description() string { return a.description }

// Arity returns the number of arguments the action takes.
func (a *Action) Arity() int { return a.arity }

// Invoke checks the argument count and runs the action. A panic in the
// action function is recovered and returned as ErrActionPanic.
func (a *Action) Invoke(ctx context.Context, args ...any) (err error) {
	if len(args) != a.arity {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, a.name, a.arity, len(args))
	}

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			err = fmt.Errorf("%w in %s: %v\n%s", ErrActionPanic, a.name, r, stack[:n])
		}
	}()

	return a.fn(ctx, args...)
}

func (a *Action) String() string { return a.name }
