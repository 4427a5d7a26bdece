package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/atpoint/internal/compose"
	"github.com/dshills/atpoint/internal/dispatch"
)

// PanelStyles are the cell styles of the menu panel.
type PanelStyles struct {
	Header      tcell.Style
	Key         tcell.Style
	Action      tcell.Style
	Prefix      tcell.Style
	Description tcell.Style
}

// DefaultPanelStyles returns the built-in panel styles.
func DefaultPanelStyles() PanelStyles {
	base := tcell.StyleDefault
	return PanelStyles{
		Header:      base.Reverse(true),
		Key:         base.Bold(true),
		Action:      base,
		Prefix:      base.Foreground(tcell.ColorTeal),
		Description: base.Dim(true),
	}
}

// Panel draws the transient menu at the bottom of a Terminal, above the
// status line. It satisfies dispatch.Prompter.
type Panel struct {
	term   *Terminal
	styles PanelStyles

	mu         sync.Mutex
	visible    bool
	header     string
	rows       []compose.Row
	background func()
}

// NewPanel creates a hidden panel on term.
func NewPanel(term *Terminal) *Panel {
	return &Panel{term: term, styles: DefaultPanelStyles()}
}

// SetBackground sets the function that redraws everything under the
// panel. Show and Hide call it before drawing.
func (p *Panel) SetBackground(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.background = fn
}

// Show displays pr.
func (p *Panel) Show(pr dispatch.Prompt) {
	p.mu.Lock()
	p.visible = true
	p.header = promptHeader(pr)
	p.rows = compose.Rows(pr.Map)
	p.mu.Unlock()

	p.refresh()
}

// Hide removes the panel.
func (p *Panel) Hide() {
	p.mu.Lock()
	p.visible = false
	p.rows = nil
	p.mu.Unlock()

	p.refresh()
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *Panel) refresh() {
	p.mu.Lock()
	bg := p.background
	p.mu.Unlock()

	if bg != nil {
		bg()
	} else {
		p.term.Clear()
	}
	p.Draw()
	p.term.Show()
}

// Height returns the rows the panel occupies on a screen of the given
// height: a header plus one row per binding, at most half the screen.
func (p *Panel) Height(screenHeight int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heightLocked(screenHeight)
}

func (p *Panel) heightLocked(screenHeight int) int {
	if !p.visible {
		return 0
	}
	n := 1 + max(len(p.rows), 1)
	return max(min(n, screenHeight/2), 1)
}

// Draw paints the panel if it is visible. It does not flush the screen.
func (p *Panel) Draw() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.visible {
		return
	}
	width, height := p.term.Size()
	h := p.heightLocked(height)
	top := height - 1 - h
	if top < 0 {
		top = 0
	}

	p.term.FillRow(0, top, p.styles.Header)
	p.term.DrawText(1, top, width, p.header, p.styles.Header)

	lines := h - 1
	if len(p.rows) == 0 && lines > 0 {
		p.term.FillRow(0, top+1, tcell.StyleDefault)
		p.term.DrawText(1, top+1, width, "nothing at point; any key closes", p.styles.Description)
		return
	}

	keyWidth, labelWidth := 0, 0
	for _, r := range p.rows {
		keyWidth = max(keyWidth, runewidth.StringWidth(r.Key))
		labelWidth = max(labelWidth, runewidth.StringWidth(r.Label))
	}

	for i := 0; i < lines && i < len(p.rows); i++ {
		y := top + 1 + i
		p.term.FillRow(0, y, tcell.StyleDefault)
		if i == lines-1 && len(p.rows) > lines {
			msg := fmt.Sprintf("... %d more", len(p.rows)-i)
			p.term.DrawText(1, y, width, msg, p.styles.Description)
			break
		}

		r := p.rows[i]
		x := p.term.DrawText(1, y, width, runewidth.FillRight(r.Key, keyWidth), p.styles.Key)
		labelStyle := p.styles.Action
		if r.Prefix {
			labelStyle = p.styles.Prefix
		}
		x = p.term.DrawText(x+2, y, width, runewidth.FillRight(r.Label, labelWidth), labelStyle)
		if r.Description != "" {
			p.term.DrawText(x+2, y, width, r.Description, p.styles.Description)
		}
	}
}

// promptHeader names the targets in the menu and the prefix typed so far.
func promptHeader(pr dispatch.Prompt) string {
	var parts []string
	if pr.Menu != nil {
		for _, k := range pr.Menu.Kinds() {
			parts = append(parts, k.String())
		}
	}
	header := "at point: " + strings.Join(parts, ", ")
	if len(parts) == 0 {
		header = "at point: nothing"
	}
	if pr.Prefix != nil && !pr.Prefix.IsEmpty() {
		header += "   " + pr.Prefix.String() + "-"
	}
	return header
}
