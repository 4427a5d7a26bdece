package host

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/atpoint/internal/analysis"
	"github.com/google/go-cmp/cmp"
)

func TestModeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"notes.ORG", "org"},
		{"README.md", "markdown"},
		{"x.py", "python"},
		{"Makefile", "fundamental"},
		{"", "fundamental"},
	}

	for _, tt := range tests {
		if got := ModeForPath(tt.path); got != tt.want {
			t.Errorf("ModeForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBufferOptions(t *testing.T) {
	b := NewBuffer("notes.txt", "hello world", WithMode("org"), WithPoint(99), WithRegion(-4))
	if b.Mode() != "org" {
		t.Errorf("Mode() = %q, want org", b.Mode())
	}
	if b.Point() != 11 {
		t.Errorf("Point() = %d, want 11 (clamped)", b.Point())
	}
	r, ok := b.Region()
	if !ok || r != (Span{Start: 0, End: 11}) {
		t.Errorf("Region() = %v, %v", r, ok)
	}
	b.Deactivate()
	if _, ok := b.Region(); ok {
		t.Error("Region() active after Deactivate")
	}
}

func TestBufferReplace(t *testing.T) {
	tests := []struct {
		name      string
		point     int
		start     int
		end       int
		repl      string
		wantText  string
		wantPoint int
	}{
		{"before point", 8, 0, 5, "hi", "hi world", 5},
		{"after point", 2, 6, 11, "there", "hello there", 2},
		{"around point", 7, 6, 11, "you", "hello you", 9},
		{"insert at point", 6, 6, 6, "big ", "hello big world", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer("", "hello world", WithPoint(tt.point))
			rev := b.Revision()
			if err := b.Replace(tt.start, tt.end, tt.repl); err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if b.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.wantText)
			}
			if b.Point() != tt.wantPoint {
				t.Errorf("Point() = %d, want %d", b.Point(), tt.wantPoint)
			}
			if b.Revision() != rev+1 {
				t.Errorf("Revision() = %d, want %d", b.Revision(), rev+1)
			}
		})
	}
}

func TestBufferReplaceErrors(t *testing.T) {
	b := NewBuffer("", "abc")
	if err := b.Replace(2, 1, ""); !errors.Is(err, ErrRange) {
		t.Errorf("Replace(2,1) error = %v, want ErrRange", err)
	}
	if err := b.Replace(0, 9, ""); !errors.Is(err, ErrRange) {
		t.Errorf("Replace(0,9) error = %v, want ErrRange", err)
	}
	ro := NewBuffer("", "abc", WithReadOnly())
	if err := ro.Replace(0, 1, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Replace() on read-only error = %v, want ErrReadOnly", err)
	}
}

func TestBufferRecords(t *testing.T) {
	b := NewBuffer("", "")
	b.Copy("one")
	b.Copy("two")
	if got, ok := b.Clipboard(); !ok || got != "two" {
		t.Errorf("Clipboard() = %q, %v", got, ok)
	}
	b.Open("url", "https://example.com")
	if diff := cmp.Diff([]Opened{{Kind: "url", Target: "https://example.com"}}, b.Opened()); diff != "" {
		t.Errorf("Opened() mismatch (-want +got):\n%s", diff)
	}
	b.Message("count %d", 3)
	if b.LastMessage() != "count 3" {
		t.Errorf("LastMessage() = %q", b.LastMessage())
	}
	if len(b.Messages()) != 2 {
		t.Errorf("Messages() = %v, want 2 entries", b.Messages())
	}
}

func TestBufferAnalyzer(t *testing.T) {
	svc := analysis.NewService(nil)
	b := NewBuffer("main.go", "package main\n\nfunc run() {}\n", WithAnalysis(svc))

	a := b.Analyzer()
	if a == nil {
		t.Fatal("Analyzer() = nil for a go buffer")
	}
	if s, ok := a.Symbol("run"); !ok || s.Kind != analysis.SymbolFunction {
		t.Errorf("Symbol(run) = %v, %v", s, ok)
	}

	_ = b.Replace(len(b.Text()), len(b.Text()), "var count = 1\n")
	if _, ok := b.Analyzer().Symbol("count"); !ok {
		t.Error("Analyzer() did not see the edit")
	}

	if NewBuffer("notes.org", "* x", WithAnalysis(svc)).Analyzer() != nil {
		t.Error("Analyzer() should be nil for org")
	}
	if NewBuffer("main.go", "package main").Analyzer() != nil {
		t.Error("Analyzer() should be nil without a service")
	}
	if msgs := b.Messages(); len(msgs) != 0 {
		t.Errorf("Analyzer() left messages %q", msgs)
	}
}

func TestContextEnv(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrNoEnv) {
		t.Errorf("FromContext() error = %v, want ErrNoEnv", err)
	}
	b := NewBuffer("", "x")
	env, err := FromContext(WithEnv(context.Background(), b))
	if err != nil || env != Env(b) {
		t.Errorf("FromContext() = %v, %v", env, err)
	}
}

func TestOffsetAndPosition(t *testing.T) {
	text := "ab\ncde\n\nf"
	tests := []struct {
		line, col, off int
	}{
		{1, 1, 0},
		{1, 3, 2},
		{2, 2, 4},
		{3, 1, 7},
		{4, 1, 8},
	}

	for _, tt := range tests {
		if got := Offset(text, tt.line, tt.col); got != tt.off {
			t.Errorf("Offset(%d,%d) = %d, want %d", tt.line, tt.col, got, tt.off)
		}
		l, c := Position(text, tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
	}

	if got := Offset(text, 2, 99); got != 6 {
		t.Errorf("Offset past line end = %d, want 6", got)
	}
	if got := Offset(text, 99, 1); got != len(text) {
		t.Errorf("Offset past last line = %d, want %d", got, len(text))
	}
}
