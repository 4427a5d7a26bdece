package host

import (
	"strings"
	"testing"
)

// cursor marks point in test texts.
const cursor = "‸"

// bufferAt builds a buffer from text containing one cursor mark.
func bufferAt(t *testing.T, mode, text string) *Buffer {
	t.Helper()
	i := strings.Index(text, cursor)
	if i < 0 {
		t.Fatalf("text %q has no cursor mark", text)
	}
	return NewBuffer("", strings.Replace(text, cursor, "", 1), WithMode(mode), WithPoint(i))
}
