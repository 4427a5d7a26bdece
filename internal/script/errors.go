package script

import "errors"

// Script errors.
var (
	// ErrClosed is returned when using a closed engine.
	ErrClosed = errors.New("script: engine is closed")

	// ErrTimeout is returned when a load or an action runs too long.
	ErrTimeout = errors.New("script: execution timeout")
)
