package app

import "errors"

// Application errors.
var (
	// ErrClosed indicates the application was closed.
	ErrClosed = errors.New("app: application closed")

	// ErrPosition indicates a point, line or mark outside the buffer.
	ErrPosition = errors.New("app: position out of range")

	// ErrNoPath indicates a buffer without a file was saved.
	ErrNoPath = errors.New("app: buffer has no file")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// FileError represents a file operation error.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
