package target

import "errors"

// Target errors.
var (
	// ErrUnknownKind indicates a kind name or value that is not defined.
	ErrUnknownKind = errors.New("target: unknown kind")

	// ErrDuplicateKind indicates a second detector for the same kind.
	ErrDuplicateKind = errors.New("target: duplicate detector kind")

	// ErrNotRegistered indicates no detector is registered for a kind.
	ErrNotRegistered = errors.New("target: no detector for kind")
)
