package dispatch

import (
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/compose"
	"github.com/dshills/atpoint/internal/input/key"
)

// Prompt is what a Prompter displays.
type Prompt struct {
	// Menu is the composition the session runs against.
	Menu *compose.Menu

	// Map is the level being shown: the applied map or a submap under
	// Prefix.
	Map *actionmap.Map

	// Prefix holds the prefix keys typed so far.
	Prefix *key.Sequence
}

// Prompter displays the transient menu.
type Prompter interface {
	// Show displays p, replacing anything shown before.
	Show(p Prompt)

	// Hide removes the menu. A session calls it exactly once.
	Hide()
}

// PrompterFuncs adapts two functions to a Prompter. Nil functions are
// skipped.
type PrompterFuncs struct {
	ShowFunc func(Prompt)
	HideFunc func()
}

// Show calls ShowFunc.
func (p PrompterFuncs) Show(pr Prompt) {
	if p.ShowFunc != nil {
		p.ShowFunc(pr)
	}
}

// Hide calls HideFunc.
func (p PrompterFuncs) Hide() {
	if p.HideFunc != nil {
		p.HideFunc()
	}
}
