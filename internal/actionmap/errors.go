package actionmap

import (
	"errors"
	"fmt"
)

// Action map errors.
var (
	// ErrMalformed is the parent of every structural map error.
	ErrMalformed = errors.New("actionmap: malformed map")

	// ErrCycle indicates a map reaches itself through submap, named or
	// parent links.
	ErrCycle = fmt.Errorf("%w: cycle", ErrMalformed)

	// ErrUndefinedMap indicates a named entry refers to a map that is not
	// registered.
	ErrUndefinedMap = fmt.Errorf("%w: undefined map", ErrMalformed)

	// ErrNotPrefix indicates a key sequence runs through a leaf binding.
	ErrNotPrefix = errors.New("actionmap: key is not a prefix")

	// ErrInvalidEntry indicates an entry with no content.
	ErrInvalidEntry = errors.New("actionmap: invalid entry")

	// ErrDuplicateMap indicates a map name is already registered.
	ErrDuplicateMap = errors.New("actionmap: duplicate map name")
)
