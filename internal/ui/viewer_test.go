package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/input/key"
)

// runViewer types keys into a viewer of buf and waits for it to stop.
func runViewer(t *testing.T, buf *host.Buffer, keys string) *Viewer {
	t.Helper()
	term := newTerminal(t, 60, 14)
	panel := NewPanel(term)
	v := NewViewer(term, panel, buf, newDispatcher(t, panel), nil)

	for _, ev := range key.MustParseSequence(keys).Events {
		if err := term.PostKey(ev); err != nil {
			t.Fatalf("PostKey(%v) error = %v", ev, err)
		}
	}

	done := make(chan error, 1)
	go func() { done <- v.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		term.Shutdown()
		<-done
		t.Fatal("viewer did not quit")
	}
	return v
}

func TestViewerSession(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		point      int
		keys       string
		wantText   string
		wantPoint  int
		wantStatus string
	}{
		{
			name:       "sticky increment",
			text:       "x = 41\n",
			point:      4,
			keys:       "C-. + + C-g C-q",
			wantText:   "x = 43\n",
			wantPoint:  4,
			wantStatus: "C-g is undefined here",
		},
		{
			name:       "motion then default",
			text:       "go to https://go.dev today\n",
			point:      0,
			keys:       "<right> <right> <right> <right> <right> <right> <right> M-RET C-q",
			wantText:   "go to https://go.dev today\n",
			wantPoint:  7,
			wantStatus: "open url https://go.dev",
		},
		{
			name:      "region upcase",
			text:      "hello world",
			point:     0,
			keys:      "C-SPC C-e C-. u C-q",
			wantText:  "HELLO WORLD",
			wantPoint: 11,
		},
		{
			name:       "nothing at point",
			text:       "a  b",
			point:      2,
			keys:       "M-RET C-q",
			wantText:   "a  b",
			wantPoint:  2,
			wantStatus: "No default action here",
		},
		{
			name:       "undefined key",
			text:       "abc",
			point:      1,
			keys:       "z <up> <down> C-q",
			wantText:   "abc",
			wantPoint:  1,
			wantStatus: "z is undefined",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := host.NewBuffer("", tt.text, host.WithMode("text"), host.WithPoint(tt.point))
			v := runViewer(t, buf, tt.keys)
			if got := buf.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
			if got := buf.Point(); got != tt.wantPoint {
				t.Errorf("Point() = %d, want %d", got, tt.wantPoint)
			}
			if tt.wantStatus != "" && !strings.HasPrefix(v.Status(), tt.wantStatus) {
				t.Errorf("Status() = %q, want prefix %q", v.Status(), tt.wantStatus)
			}
		})
	}
}

func TestPanelDraw(t *testing.T) {
	term := newTerminal(t, 60, 12)
	panel := NewPanel(term)
	d := newDispatcher(t)

	buf := host.NewBuffer("", "x = 41", host.WithPoint(4))
	menu, err := d.Compose(context.Background(), buf)
	if err != nil {
		t.Fatal(err)
	}

	panel.Show(dispatch.Prompt{Menu: menu, Map: menu.Applied, Prefix: key.NewSequence()})
	if !panel.Visible() {
		t.Fatal("panel not visible after Show")
	}
	h := panel.Height(12)
	top := 12 - 1 - h
	if got := term.Row(top); !strings.Contains(got, "at point: number") {
		t.Errorf("header row = %q", got)
	}
	var body []string
	for y := top + 1; y < 11; y++ {
		body = append(body, term.Row(y))
	}
	joined := strings.Join(body, "\n")
	for _, want := range []string{"+", "number.increment", "thing.copy"} {
		if !strings.Contains(joined, want) {
			t.Errorf("panel rows missing %q:\n%s", want, joined)
		}
	}

	panel.Hide()
	if panel.Visible() || panel.Height(12) != 0 {
		t.Error("panel still visible after Hide")
	}
	if got := term.Row(top); got != "" {
		t.Errorf("row %d after Hide = %q, want blank", top, got)
	}
}

func TestPanelPrefixHeader(t *testing.T) {
	pr := dispatch.Prompt{Prefix: key.MustParseSequence("C-c x")}
	if got := promptHeader(pr); got != "at point: nothing   C-c x-" {
		t.Errorf("promptHeader() = %q", got)
	}
}

func TestViewerContextCancel(t *testing.T) {
	term := newTerminal(t, 40, 10)
	panel := NewPanel(term)
	v := NewViewer(term, panel, host.NewBuffer("", "text"), newDispatcher(t, panel), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestViewerStopsOnShutdown(t *testing.T) {
	term := newTerminal(t, 40, 10)
	panel := NewPanel(term)
	v := NewViewer(term, panel, host.NewBuffer("", "text"), newDispatcher(t, panel), nil)

	done := make(chan error, 1)
	go func() { done <- v.Run(context.Background()) }()
	term.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after Shutdown")
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\tx", 4},
		{"ab\tx", 4},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.in); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
