package kinds

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stripCursor(s string) string { return strings.Replace(s, cursor, "", 1) }

func replaceOnce(s, old, repl string) string { return strings.Replace(s, old, repl, 1) }

func TestOccurrences(t *testing.T) {
	tests := []struct {
		text string
		name string
		want []int
	}{
		{"foo bar foo", "foo", []int{0, 8}},
		{"foobar foo_x foo", "foo", []int{13}},
		{"ffoo foo", "foo", []int{5}},
		{"naïve naïve", "naïve", []int{0, 7}},
		{"xfoo", "foo", nil},
		{"anything", "", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, occurrences(tt.text, tt.name)); diff != "" {
			t.Errorf("occurrences(%q, %q) mismatch (-want +got):\n%s", tt.text, tt.name, diff)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{"s", "s"},
		{42, "42"},
		{stringer("x"), "<x>"},
	}
	for _, tt := range tests {
		if got := display(tt.v); got != tt.want {
			t.Errorf("display(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

type stringer string

func (s stringer) String() string { return "<" + string(s) + ">" }
