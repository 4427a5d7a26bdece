// Package key provides the trigger types used by action maps.
//
// A trigger is a single key press: a Key (special key or rune) plus a set of
// modifiers. Events are comparable values and can be used directly as map
// keys; constructors normalize them so that equal key presses compare equal.
//
// # Key Specifications
//
// Specifications follow Emacs notation, with the older bracket and plus
// forms still accepted:
//
//   - Characters: "a", "A", "+", "."
//   - Named keys: "RET", "SPC", "TAB", "ESC", "DEL", "<up>", "<f5>", "<home>"
//   - Modifiers: "C-c", "M-x", "C-M-<up>", "s-a" (super), "S-<left>" (shift)
//   - Bracket form: "<C-s>", "<M-RET>"
//   - Plus form: "Ctrl+S", "Alt+Enter"
//
// Sequences are space separated: "C-c t", "g g".
package key
