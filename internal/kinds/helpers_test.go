package kinds

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/input/key"
)

// cursor marks point in test texts.
const cursor = "‸"

// bufferAt builds a buffer from text containing one cursor mark.
func bufferAt(t *testing.T, mode, text string, opts ...host.Option) *host.Buffer {
	t.Helper()
	i := strings.Index(text, cursor)
	if i < 0 {
		t.Fatalf("text %q has no cursor mark", text)
	}
	opts = append([]host.Option{host.WithMode(mode), host.WithPoint(i)}, opts...)
	return host.NewBuffer("", strings.Replace(text, cursor, "", 1), opts...)
}

// withCursor returns the buffer text with the cursor mark at point.
func withCursor(b *host.Buffer) string {
	text := b.Text()
	return text[:b.Point()] + cursor + text[b.Point():]
}

func newSet(t *testing.T) *Set {
	t.Helper()
	s, err := NewSet()
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	return s
}

func newDispatcher(t *testing.T, s *Set) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(dispatch.DefaultConfig().
		WithDetectors(s.Detectors).
		WithMaps(s.Maps).
		WithActions(s.Actions))
	if err != nil {
		t.Fatalf("dispatch.New() error = %v", err)
	}
	return d
}

// act opens the menu on b and types keys.
func act(t *testing.T, d *dispatch.Dispatcher, b *host.Buffer, keys string) {
	t.Helper()
	s, err := d.Interactive(context.Background(), b)
	if err != nil {
		t.Fatalf("Interactive() error = %v", err)
	}
	src := dispatch.NewSequenceSource(key.MustParseSequence(keys))
	if err := s.Run(context.Background(), src); err != nil {
		t.Fatalf("Run(%q) error = %v", keys, err)
	}
}
