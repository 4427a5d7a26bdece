package host

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/atpoint/internal/analysis"
)

// modeByExt maps file extensions to major modes.
var modeByExt = map[string]string{
	".go":       "go",
	".py":       "python",
	".org":      "org",
	".md":       "markdown",
	".markdown": "markdown",
	".txt":      "text",
}

// ModeForPath derives the major mode from a file name.
func ModeForPath(path string) string {
	if mode, ok := modeByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return mode
	}
	return "fundamental"
}

// Opened records a request to open something outside the buffer.
type Opened struct {
	Kind   string
	Target string
}

// Buffer is an in-memory Env. It performs no I/O: opening files, URLs and
// mail is recorded for the caller to act on.
type Buffer struct {
	mu sync.Mutex

	path       string
	mode       string
	text       string
	point      int
	mark       int
	markActive bool
	readOnly   bool
	revision   uint64

	analysis  *analysis.Service
	messages  []string
	opened    []Opened
	clipboard []string
}

// NewBuffer creates a buffer holding text. The mode is derived from path
// unless WithMode is given.
func NewBuffer(path, text string, opts ...Option) *Buffer {
	b := &Buffer{
		path: path,
		mode: ModeForPath(path),
		text: text,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mode returns the major mode.
func (b *Buffer) Mode() string { return b.mode }

// Path returns the file path.
func (b *Buffer) Path() string { return b.path }

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Point returns the cursor offset.
func (b *Buffer) Point() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.point
}

// Revision increases with every edit.
func (b *Buffer) Revision() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revision
}

// Region returns the active region.
func (b *Buffer) Region() (Span, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.markActive {
		return Span{}, false
	}
	if b.mark < b.point {
		return Span{Start: b.mark, End: b.point}, true
	}
	return Span{Start: b.point, End: b.mark}, true
}

// Analyzer analyzes the current revision. It returns nil when the mode
// has no language support, no service is attached or analysis fails; the
// service logs failures. The buffer itself is not changed.
func (b *Buffer) Analyzer() Analyzer {
	lang, ok := analysis.LanguageForMode(b.mode)
	if !ok || b.analysis == nil {
		return nil
	}

	b.mu.Lock()
	req := analysis.Request{Path: b.cacheKey(), Language: lang, Revision: b.revision, Text: b.text}
	b.mu.Unlock()

	r, err := b.analysis.Analyze(context.Background(), req)
	if err != nil {
		return nil
	}
	return r
}

func (b *Buffer) cacheKey() string {
	if b.path != "" {
		return b.path
	}
	return fmt.Sprintf("buffer-%p", b)
}

// Replace substitutes text for [start, end). Point and mark after the
// edited range move with the text; inside it they move to its end.
func (b *Buffer) Replace(start, end int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.readOnly {
		return ErrReadOnly
	}
	if start < 0 || end > len(b.text) || start > end {
		return fmt.Errorf("%w: [%d,%d) in %d bytes", ErrRange, start, end, len(b.text))
	}

	b.text = b.text[:start] + text + b.text[end:]
	b.revision++

	delta := len(text) - (end - start)
	adjust := func(off int) int {
		switch {
		case off >= end:
			return off + delta
		case off > start:
			return start + len(text)
		}
		return off
	}
	b.point = adjust(b.point)
	b.mark = adjust(b.mark)
	return nil
}

// SetPoint moves the cursor, clamped to the text.
func (b *Buffer) SetPoint(offset int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.point = b.clamp(offset)
}

// SetMark sets the mark and activates the region.
func (b *Buffer) SetMark(offset int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mark = b.clamp(offset)
	b.markActive = true
}

// Deactivate deactivates the mark.
func (b *Buffer) Deactivate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markActive = false
}

// Copy appends text to the clipboard history.
func (b *Buffer) Copy(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clipboard = append(b.clipboard, text)
}

// Clipboard returns the most recent clipboard entry.
func (b *Buffer) Clipboard() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clipboard) == 0 {
		return "", false
	}
	return b.clipboard[len(b.clipboard)-1], true
}

// Open records an open request.
func (b *Buffer) Open(kind, target string) {
	b.mu.Lock()
	b.opened = append(b.opened, Opened{Kind: kind, Target: target})
	b.mu.Unlock()
	b.Message("open %s %s", kind, target)
}

// Opened returns the recorded open requests.
func (b *Buffer) Opened() []Opened {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Opened(nil), b.opened...)
}

// Message records a message.
func (b *Buffer) Message(format string, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, fmt.Sprintf(format, args...))
}

// Messages returns the recorded messages.
func (b *Buffer) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.messages...)
}

// LastMessage returns the most recent message, or "".
func (b *Buffer) LastMessage() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.messages) == 0 {
		return ""
	}
	return b.messages[len(b.messages)-1]
}

func (b *Buffer) clamp(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > len(b.text):
		return len(b.text)
	}
	return offset
}

// Offset converts a one-based line and column to a byte offset, clamping
// to the buffer.
func Offset(text string, line, col int) int {
	off := 0
	for l := 1; l < line; l++ {
		i := strings.IndexByte(text[off:], '\n')
		if i < 0 {
			return len(text)
		}
		off += i + 1
	}
	end := strings.IndexByte(text[off:], '\n')
	if end < 0 {
		end = len(text) - off
	}
	if col < 1 {
		col = 1
	}
	if col-1 > end {
		return off + end
	}
	return off + col - 1
}

// Position converts a byte offset to a one-based line and column.
func Position(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}
