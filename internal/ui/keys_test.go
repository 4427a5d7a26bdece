package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/atpoint/internal/input/key"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, "a"},
		{"shifted rune", tcell.KeyRune, 'A', tcell.ModShift, "A"},
		{"meta rune", tcell.KeyRune, 'x', tcell.ModAlt, "M-x"},
		{"ctrl letter", tcell.KeyCtrlQ, 'q', tcell.ModCtrl, "C-q"},
		{"ctrl punctuation", tcell.KeyRune, '.', tcell.ModCtrl, "C-."},
		{"ctrl space", tcell.KeyCtrlSpace, 0, tcell.ModCtrl, "C-SPC"},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, "RET"},
		{"meta enter", tcell.KeyEnter, 0, tcell.ModAlt, "M-RET"},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, "TAB"},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, "ESC"},
		{"backspace", tcell.KeyBackspace2, 0, tcell.ModNone, "DEL"},
		{"arrow", tcell.KeyUp, 0, tcell.ModNone, "<up>"},
		{"ctrl arrow", tcell.KeyLeft, 0, tcell.ModCtrl, "C-<left>"},
		{"function", tcell.KeyF5, 0, tcell.ModNone, "<f5>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTcell(tcell.NewEventKey(tt.key, tt.r, tt.mod))
			want := key.MustParse(tt.want)
			if got != want {
				t.Errorf("FromTcell() = %v, want %v", got, want)
			}
		})
	}
}

func TestFromTcellUnknown(t *testing.T) {
	if got := FromTcell(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone)); !got.IsZero() {
		t.Errorf("FromTcell(Print) = %v, want zero event", got)
	}
}

func TestToTcellRoundTrip(t *testing.T) {
	for _, spec := range []string{"a", "M-x", "C-q", "C-.", "C-SPC", "RET", "M-RET", "TAB", "ESC", "<up>", "<f12>", "<delete>"} {
		ev := key.MustParse(spec)
		k, r, mod := toTcell(ev)
		if got := FromTcell(tcell.NewEventKey(k, r, mod)); got != ev {
			t.Errorf("round trip of %s = %v", spec, got)
		}
	}
}
