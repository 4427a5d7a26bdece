package dispatch

import "errors"

// Dispatch errors.
var (
	// ErrSessionClosed indicates a key was fed to a finished session.
	ErrSessionClosed = errors.New("dispatch: session closed")

	// ErrNoDetectors indicates the configuration has no detector registry.
	ErrNoDetectors = errors.New("dispatch: no detector registry")

	// ErrNoActions indicates the configuration has no action registry.
	ErrNoActions = errors.New("dispatch: no action registry")

	// ErrInvalidTrigger indicates a zero default trigger.
	ErrInvalidTrigger = errors.New("dispatch: invalid default trigger")
)
