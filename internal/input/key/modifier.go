package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift is the Shift key ("S-").
	ModShift Modifier = 1 << iota

	// ModCtrl is the Control key ("C-").
	ModCtrl

	// ModMeta is Meta/Alt ("M-").
	ModMeta

	// ModSuper is Super/Cmd ("s-").
	ModSuper
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// Prefix returns the Emacs prefix for the set, e.g. "C-M-".
// The order is fixed so that equal sets produce equal strings.
func (m Modifier) Prefix() string {
	if m == ModNone {
		return ""
	}
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if m.Has(ModMeta) {
		sb.WriteString("M-")
	}
	if m.Has(ModSuper) {
		sb.WriteString("s-")
	}
	if m.Has(ModShift) {
		sb.WriteString("S-")
	}
	return sb.String()
}

// String returns a readable form like "Ctrl+Meta".
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// prefixModifier maps the single-letter Emacs prefixes. Case matters:
// "s" is super and "S" is shift.
func prefixModifier(c byte) Modifier {
	switch c {
	case 'C':
		return ModCtrl
	case 'M', 'A':
		return ModMeta
	case 's', 'D':
		return ModSuper
	case 'S':
		return ModShift
	}
	return ModNone
}

// modifierNames maps readable modifier names (lowercase) used by the plus
// notation.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModMeta,
	"meta":    ModMeta,
	"option":  ModMeta,
	"opt":     ModMeta,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
}

// ModifierFromName returns the modifier for a readable name
// (case-insensitive), or ModNone.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(strings.TrimSpace(name))]
}
