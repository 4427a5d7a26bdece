package compose

import "errors"

// Compose errors.
var (
	// ErrDetectorPanic indicates a detector panicked. It is logged, never
	// returned from Compose.
	ErrDetectorPanic = errors.New("compose: detector panic")

	// ErrInvalidTarget indicates a detector returned a target without a
	// map.
	ErrInvalidTarget = errors.New("compose: target has no map")
)
