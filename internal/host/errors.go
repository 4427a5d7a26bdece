package host

import "errors"

// Host errors.
var (
	// ErrNoEnv indicates a context carries no environment.
	ErrNoEnv = errors.New("host: no environment in context")

	// ErrRange indicates an offset outside the buffer.
	ErrRange = errors.New("host: offset out of range")

	// ErrReadOnly indicates the buffer rejects edits.
	ErrReadOnly = errors.New("host: buffer is read-only")
)
