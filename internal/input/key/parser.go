package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "+", "."
//   - Named keys: "RET", "SPC", "TAB", "ESC", "DEL", "<up>", "<f5>"
//   - Emacs modifiers: "C-c", "M-x", "C-M-<up>", "S-<left>", "s-a"
//   - Bracket form: "<C-s>", "<M-RET>"
//   - Plus form: "Ctrl+S", "Alt+Enter", "Ctrl++"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 1 && !isBracketed(spec) && strings.Contains(spec[:len(spec)-1], "+") {
		return parsePlus(spec)
	}

	if isBracketed(spec) && hasModifierPrefix(spec[1:len(spec)-1]) {
		spec = spec[1 : len(spec)-1]
	}

	var mods Modifier
	for hasModifierPrefix(spec) {
		mods = mods.With(prefixModifier(spec[0]))
		spec = spec[2:]
	}
	return parseKey(spec, mods)
}

func isBracketed(s string) bool {
	return len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>'
}

// hasModifierPrefix reports whether s starts with "X-" where X is a
// modifier letter and something follows the dash.
func hasModifierPrefix(s string) bool {
	return len(s) > 2 && s[1] == '-' && prefixModifier(s[0]) != ModNone
}

// parsePlus parses "Ctrl+S" style notation.
func parsePlus(spec string) (Event, error) {
	var modPart, keyPart string
	if strings.HasSuffix(spec, "++") {
		modPart, keyPart = spec[:len(spec)-2], "+"
	} else {
		i := strings.LastIndex(spec, "+")
		modPart, keyPart = spec[:i], spec[i+1:]
	}

	var mods Modifier
	for _, name := range strings.Split(modPart, "+") {
		mod := ModifierFromName(name)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, name)
		}
		mods = mods.With(mod)
	}
	return parseKey(strings.TrimSpace(keyPart), mods)
}

// parseKey parses the key part of a specification once modifiers have been
// stripped.
func parseKey(s string, mods Modifier) (Event, error) {
	if s == "" {
		return Event{}, ErrInvalidSpec
	}

	name := s
	if isBracketed(s) {
		name = s[1 : len(s)-1]
	} else if runes := []rune(s); len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	switch strings.ToLower(name) {
	case "spc", "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	if k := FromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, s)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	seq, err := ParseSequence(spec)
	if err != nil {
		return "", err
	}
	if seq.IsEmpty() {
		return "", ErrEmptySpec
	}
	return seq.String(), nil
}
