package key

import "testing"

func TestEventNormalization(t *testing.T) {
	if NewRuneEvent('a', ModShift) != NewRuneEvent('A', ModNone) {
		t.Error("S-a and A should be the same event")
	}
	if NewRuneEvent('1', ModShift) != NewRuneEvent('1', ModNone) {
		t.Error("Shift should be dropped for non-letter runes")
	}
	if NewSpecialEvent(KeyUp, ModShift) == NewSpecialEvent(KeyUp, ModNone) {
		t.Error("Shift must be kept for special keys")
	}
}

func TestEventAsMapKey(t *testing.T) {
	m := map[Event]string{
		MustParse("C-c"): "ctrl-c",
		MustParse("RET"): "enter",
	}
	if m[NewRuneEvent('c', ModCtrl)] != "ctrl-c" {
		t.Error("lookup of C-c failed")
	}
	if m[NewSpecialEvent(KeyEnter, ModNone)] != "enter" {
		t.Error("lookup of RET failed")
	}
}

func TestEventPredicates(t *testing.T) {
	var zero Event
	if !zero.IsZero() {
		t.Error("zero event should report IsZero")
	}
	ev := MustParse("C-x")
	if !ev.IsRune() || !ev.IsModified() {
		t.Errorf("C-x: IsRune = %v, IsModified = %v", ev.IsRune(), ev.IsModified())
	}
	if !ev.Matches("Ctrl+x") {
		t.Error("C-x should match Ctrl+x")
	}
	if ev.Matches("x") {
		t.Error("C-x should not match x")
	}
}
