package host

import (
	"context"

	"github.com/dshills/atpoint/internal/analysis"
)

// Analyzer answers symbol questions about the current buffer text.
type Analyzer interface {
	Symbol(name string) (analysis.SymbolInfo, bool)
	References(name string) []analysis.Span
	DiagnosticAt(offset int) (analysis.Diagnostic, bool)
}

// Env is the editor state seen by detectors and actions. Offsets are byte
// offsets into Text.
type Env interface {
	// Mode returns the major mode, e.g. "go", "org", "markdown".
	Mode() string

	// Path returns the file path, or "" for buffers without a file.
	Path() string

	// Text returns the whole buffer.
	Text() string

	// Point returns the cursor offset.
	Point() int

	// Region returns the span between mark and point when the mark is
	// active.
	Region() (Span, bool)

	// Analyzer returns the analyzer for the buffer, or nil when the mode
	// has none. It may parse the buffer and should be called last.
	Analyzer() Analyzer

	// Replace substitutes text for the bytes in [start, end).
	Replace(start, end int, text string) error

	// SetPoint moves the cursor.
	SetPoint(offset int)

	// SetMark sets the mark and activates the region.
	SetMark(offset int)

	// Deactivate deactivates the mark.
	Deactivate()

	// Copy puts text on the clipboard.
	Copy(text string)

	// Open asks the host to open target; kind is "url", "mail" or "file".
	Open(kind, target string)

	// Message shows a message to the user.
	Message(format string, args ...any)
}

type envKey struct{}

// WithEnv returns a context carrying env.
func WithEnv(ctx context.Context, env Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromContext returns the env carried by ctx.
func FromContext(ctx context.Context) (Env, error) {
	if env, ok := ctx.Value(envKey{}).(Env); ok && env != nil {
		return env, nil
	}
	return nil, ErrNoEnv
}
