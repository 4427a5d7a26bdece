package action

import "errors"

// Action errors.
var (
	// ErrArity indicates an action was invoked with the wrong number of
	// arguments.
	ErrArity = errors.New("action: wrong number of arguments")

	// ErrActionPanic indicates the action function panicked.
	ErrActionPanic = errors.New("action: panic")

	// ErrDuplicate indicates an action name is already registered.
	ErrDuplicate = errors.New("action: duplicate name")

	// ErrUnknownAction indicates no action is registered under a name.
	ErrUnknownAction = errors.New("action: unknown action")

	// ErrInvalidAction indicates an action definition is unusable.
	ErrInvalidAction = errors.New("action: invalid action")
)
