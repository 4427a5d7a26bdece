package analysis

import "errors"

// Analysis errors.
var (
	// ErrUnsupported indicates the language has no parser.
	ErrUnsupported = errors.New("analysis: unsupported language")

	// ErrParse indicates tree-sitter failed to produce a tree.
	ErrParse = errors.New("analysis: parse failed")
)
