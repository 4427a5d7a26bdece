package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a keyboard key. Character keys use KeyRune and carry the
// character in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a character key.
	KeyRune

	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// keyNames holds the canonical (Emacs) name of every special key.
var keyNames = map[Key]string{
	KeyEnter:     "RET",
	KeyTab:       "TAB",
	KeyEscape:    "ESC",
	KeyBackspace: "DEL",
	KeyDelete:    "<delete>",
	KeyInsert:    "<insert>",
	KeyHome:      "<home>",
	KeyEnd:       "<end>",
	KeyPageUp:    "<prior>",
	KeyPageDown:  "<next>",
	KeyUp:        "<up>",
	KeyDown:      "<down>",
	KeyLeft:      "<left>",
	KeyRight:     "<right>",
}

// String returns the canonical name of the key.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k == KeyRune:
		return "Rune"
	case k.IsFunctionKey():
		return fmt.Sprintf("<f%d>", int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true for F1 through F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// nameTable maps lowercase key names to keys. Names that resolve to a
// character (SPC) are handled by the parser.
var nameTable = map[string]Key{
	"ret":        KeyEnter,
	"return":     KeyEnter,
	"enter":      KeyEnter,
	"cr":         KeyEnter,
	"tab":        KeyTab,
	"esc":        KeyEscape,
	"escape":     KeyEscape,
	"del":        KeyBackspace,
	"bs":         KeyBackspace,
	"backspace":  KeyBackspace,
	"delete":     KeyDelete,
	"deletechar": KeyDelete,
	"insert":     KeyInsert,
	"ins":        KeyInsert,
	"home":       KeyHome,
	"end":        KeyEnd,
	"prior":      KeyPageUp,
	"pageup":     KeyPageUp,
	"pgup":       KeyPageUp,
	"next":       KeyPageDown,
	"pagedown":   KeyPageDown,
	"pgdn":       KeyPageDown,
	"up":         KeyUp,
	"down":       KeyDown,
	"left":       KeyLeft,
	"right":      KeyRight,
}

// FromName returns the Key for a name such as "RET", "up" or "f5"
// (case-insensitive). Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameTable[name]; ok {
		return k
	}
	if len(name) >= 2 && name[0] == 'f' {
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= 12 && name[1] != '0' {
			return KeyF1 + Key(n-1)
		}
	}
	return KeyNone
}
