package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModNone)},
		{"S-a", NewRuneEvent('A', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"<", NewRuneEvent('<', ModNone)},
		{"SPC", NewRuneEvent(' ', ModNone)},
		{"RET", NewSpecialEvent(KeyEnter, ModNone)},
		{"<return>", NewSpecialEvent(KeyEnter, ModNone)},
		{"TAB", NewSpecialEvent(KeyTab, ModNone)},
		{"DEL", NewSpecialEvent(KeyBackspace, ModNone)},
		{"<delete>", NewSpecialEvent(KeyDelete, ModNone)},
		{"<up>", NewSpecialEvent(KeyUp, ModNone)},
		{"<f5>", NewSpecialEvent(KeyF5, ModNone)},
		{"C-c", NewRuneEvent('c', ModCtrl)},
		{"M-x", NewRuneEvent('x', ModMeta)},
		{"C-M-<up>", NewSpecialEvent(KeyUp, ModCtrl|ModMeta)},
		{"S-<left>", NewSpecialEvent(KeyLeft, ModShift)},
		{"s-a", NewRuneEvent('a', ModSuper)},
		{"C--", NewRuneEvent('-', ModCtrl)},
		{"C-+", NewRuneEvent('+', ModCtrl)},
		{"M-RET", NewSpecialEvent(KeyEnter, ModMeta)},
		{"<C-s>", NewRuneEvent('s', ModCtrl)},
		{"<M-RET>", NewSpecialEvent(KeyEnter, ModMeta)},
		{"Ctrl+s", NewRuneEvent('s', ModCtrl)},
		{"Alt+Enter", NewSpecialEvent(KeyEnter, ModMeta)},
		{"Ctrl++", NewRuneEvent('+', ModCtrl)},
		{"  C-c  ", NewRuneEvent('c', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"bogus", ErrInvalidSpec},
		{"<bogus>", ErrInvalidSpec},
		{"Hyper+a", ErrInvalidSpec},
		{"C-", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	specs := []string{"a", "A", "SPC", "RET", "C-c", "M-x", "C-M-<up>", "S-<left>", "<f5>", "s-a", "C--", "DEL", "<delete>"}

	for _, spec := range specs {
		ev := MustParse(spec)
		if got := ev.String(); got != spec {
			t.Errorf("Parse(%q).String() = %q", spec, got)
		}
		again, err := Parse(ev.String())
		if err != nil || again != ev {
			t.Errorf("Parse(%q) did not round trip: %v, %v", ev.String(), again, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("<nope>")
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"Ctrl+c  t", "C-c t"},
		{"<C-x> <C-s>", "C-x C-s"},
		{"S-a", "A"},
		{"<return>", "RET"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Errorf("NormalizeSpec(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}

	if _, err := NormalizeSpec(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("NormalizeSpec(\"\") error = %v, want ErrEmptySpec", err)
	}
}
