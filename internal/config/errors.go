package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	// Path is the setting, e.g. "detectors[2]" or "keys.url.C-c o".
	Path string
	// Value is the invalid value.
	Value any
	// Message describes the problem, with a suggestion when one exists.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Path, fmt.Sprint(e.Value), e.Message)
}
