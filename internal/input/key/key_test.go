package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyRune, "Rune"},
		{KeyEnter, "RET"},
		{KeyTab, "TAB"},
		{KeyEscape, "ESC"},
		{KeyBackspace, "DEL"},
		{KeyDelete, "<delete>"},
		{KeyUp, "<up>"},
		{KeyPageDown, "<next>"},
		{KeyF1, "<f1>"},
		{KeyF12, "<f12>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyPredicates(t *testing.T) {
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("KeyRune and KeyNone should not be special")
	}
	if !KeyEnter.IsSpecial() {
		t.Error("KeyEnter should be special")
	}
	if !KeyF5.IsFunctionKey() || KeyUp.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified F5 or Up")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified Left or Home")
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"RET", KeyEnter},
		{"return", KeyEnter},
		{"Enter", KeyEnter},
		{"DEL", KeyBackspace},
		{"deletechar", KeyDelete},
		{"prior", KeyPageUp},
		{"f5", KeyF5},
		{"F12", KeyF12},
		{"f13", KeyNone},
		{"f05", KeyNone},
		{"bogus", KeyNone},
	}

	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifierPrefix(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "C-"},
		{ModMeta, "M-"},
		{ModCtrl | ModMeta, "C-M-"},
		{ModShift | ModCtrl, "C-S-"},
		{ModSuper, "s-"},
	}

	for _, tt := range tests {
		if got := tt.mod.Prefix(); got != tt.want {
			t.Errorf("Modifier(%d).Prefix() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModMeta)
	if !m.Has(ModCtrl) || !m.Has(ModMeta) {
		t.Fatalf("With() = %v, want Ctrl+Meta", m)
	}
	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) {
		t.Errorf("Without(ModCtrl) still has Ctrl")
	}
	if m.String() != "Meta" {
		t.Errorf("String() = %q, want %q", m.String(), "Meta")
	}
}
