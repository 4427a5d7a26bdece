package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/atpoint/internal/host"
)

// NoMark leaves the region inactive.
const NoMark = -1

// Position places point and the mark in a new buffer.
type Position struct {
	// Point is a byte offset. Ignored when Line is set.
	Point int

	// Line and Col are one-based. Col defaults to 1.
	Line int
	Col  int

	// Mark activates the region from Mark to point. NoMark leaves it off.
	Mark int

	// Mode overrides the mode derived from the file name.
	Mode string

	// ReadOnly rejects edits.
	ReadOnly bool
}

// OpenBuffer reads path into a buffer placed at pos.
func (app *Application) OpenBuffer(path string, pos Position) (*host.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	return app.NewBuffer(path, string(data), pos)
}

// NewBuffer creates a buffer over text placed at pos. Buffers share the
// application's analysis service.
func (app *Application) NewBuffer(path, text string, pos Position) (*host.Buffer, error) {
	point, err := resolvePoint(text, pos)
	if err != nil {
		return nil, err
	}

	opts := []host.Option{
		host.WithPoint(point),
		host.WithAnalysis(app.analysis),
	}
	if pos.Mark != NoMark {
		if pos.Mark < 0 || pos.Mark > len(text) {
			return nil, fmt.Errorf("%w: mark %d not in [0,%d]", ErrPosition, pos.Mark, len(text))
		}
		opts = append(opts, host.WithRegion(pos.Mark))
	}
	if pos.Mode != "" {
		opts = append(opts, host.WithMode(pos.Mode))
	}
	if pos.ReadOnly {
		opts = append(opts, host.WithReadOnly())
	}
	return host.NewBuffer(path, text, opts...), nil
}

// SaveBuffer writes buf back to its file.
func (app *Application) SaveBuffer(buf *host.Buffer) error {
	if buf.Path() == "" {
		return &FileError{Op: "save", Err: ErrNoPath}
	}
	if err := os.WriteFile(buf.Path(), []byte(buf.Text()), 0o644); err != nil {
		return &FileError{Op: "save", Path: buf.Path(), Err: err}
	}
	app.analysis.Forget(buf.Path())
	return nil
}

func resolvePoint(text string, pos Position) (int, error) {
	if pos.Line == 0 {
		if pos.Point < 0 || pos.Point > len(text) {
			return 0, fmt.Errorf("%w: point %d not in [0,%d]", ErrPosition, pos.Point, len(text))
		}
		return pos.Point, nil
	}

	lines := strings.Count(text, "\n") + 1
	if pos.Line < 1 || pos.Line > lines {
		return 0, fmt.Errorf("%w: line %d not in [1,%d]", ErrPosition, pos.Line, lines)
	}
	col := max(pos.Col, 1)
	return host.Offset(text, pos.Line, col), nil
}
