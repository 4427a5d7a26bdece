package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/atpoint/internal/input/key"
)

// FromTcell converts a tcell key event. Keys with no equivalent yield the
// zero event.
func FromTcell(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	case k == tcell.KeyCtrlSpace || k == tcell.KeyNUL:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	}

	if sk := convertKey(k); sk != key.KeyNone {
		return key.NewSpecialEvent(sk, mods)
	}
	return key.Event{}
}

// convertKey converts a tcell special key.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	}
	return key.KeyNone
}

// convertMod converts a tcell modifier mask. Alt and Meta both become
// Meta.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// toTcell converts ev back into the arguments of tcell.NewEventKey.
func toTcell(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	var mod tcell.ModMask
	if ev.Modifiers.Has(key.ModShift) {
		mod |= tcell.ModShift
	}
	if ev.Modifiers.Has(key.ModCtrl) {
		mod |= tcell.ModCtrl
	}
	if ev.Modifiers.Has(key.ModMeta) {
		mod |= tcell.ModAlt
	}

	if ev.Key == key.KeyRune {
		return tcell.KeyRune, ev.Rune, mod
	}
	for _, tk := range specialKeys {
		if convertKey(tk) == ev.Key {
			return tk, 0, mod
		}
	}
	return tcell.KeyRune, 0, mod
}

// specialKeys lists the tcell keys convertKey maps, for the reverse
// direction.
var specialKeys = []tcell.Key{
	tcell.KeyEnter, tcell.KeyTab, tcell.KeyEscape, tcell.KeyBackspace2,
	tcell.KeyDelete, tcell.KeyInsert, tcell.KeyHome, tcell.KeyEnd,
	tcell.KeyPgUp, tcell.KeyPgDn, tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
	tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5, tcell.KeyF6,
	tcell.KeyF7, tcell.KeyF8, tcell.KeyF9, tcell.KeyF10, tcell.KeyF11, tcell.KeyF12,
}
