package key

import (
	"fmt"
	"unicode"
)

// Event is a single key press. Events are comparable; constructors
// normalize them so that the same physical chord always yields the same
// value, which lets action maps use events as map keys.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}.normalize()
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}.normalize()
}

// normalize folds Shift into the character for rune events: "S-a" and "A"
// are the same trigger.
func (e Event) normalize() Event {
	if e.Key != KeyRune || !e.Modifiers.Has(ModShift) {
		return e
	}
	if unicode.IsLetter(e.Rune) {
		e.Rune = unicode.ToUpper(e.Rune)
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	return e
}

// IsZero reports whether e is the zero event.
func (e Event) IsZero() bool {
	return e == Event{}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified reports whether any modifier is held.
func (e Event) IsModified() bool {
	return e.Modifiers != ModNone
}

// String returns the canonical Emacs form, e.g. "a", "C-c", "M-RET", "SPC",
// "C-<up>". Parse(e.String()) returns e.
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "SPC"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	return e.Modifiers.Prefix() + name
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e == parsed
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, e.Modifiers)
}
