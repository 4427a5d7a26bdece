package kinds

import "errors"

// Kinds errors.
var (
	// ErrNotFound indicates the thing an action works on is no longer at
	// point.
	ErrNotFound = errors.New("kinds: nothing at point")

	// ErrUnknownMap indicates a binding for a map that does not exist.
	ErrUnknownMap = errors.New("kinds: unknown map")

	// ErrArityMismatch indicates a binding whose action takes the wrong
	// number of arguments for the map's kind.
	ErrArityMismatch = errors.New("kinds: action arity does not match map")

	// ErrHeadingLevel indicates a promote or demote past the outline
	// limits.
	ErrHeadingLevel = errors.New("kinds: heading level out of range")

	// ErrNumberRange indicates an increment or decrement past the int64
	// limits.
	ErrNumberRange = errors.New("kinds: number out of range")

	// ErrNoTodo indicates a TODO cycle on a heading without keywords.
	ErrNoTodo = errors.New("kinds: heading has no TODO keywords")

	// ErrNoAnalyzer indicates a symbol action in a buffer without one.
	ErrNoAnalyzer = errors.New("kinds: no analyzer for buffer")
)

// ErrValueType indicates an action received a target value of the wrong
// type.
var ErrValueType = errors.New("kinds: unexpected target value")
