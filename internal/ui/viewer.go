package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/logging"
)

// tabWidth is the display width of a tab stop.
const tabWidth = 4

// Viewer keys.
var (
	keyQuit    = key.MustParse("C-q")
	keyMark    = key.MustParse("C-SPC")
	keyCancel  = key.MustParse("C-g")
	keyMenu    = key.MustParse("C-.")
	keyDefault = key.MustParse("M-RET")
	keyBOL     = key.MustParse("C-a")
	keyEOL     = key.MustParse("C-e")
)

// Dispatcher is what the viewer needs from dispatch.Dispatcher.
type Dispatcher interface {
	Interactive(ctx context.Context, env host.Env) (*dispatch.Session, error)
	Default(ctx context.Context, env host.Env) (bool, error)
}

// Viewer shows a buffer and opens the menu at point.
type Viewer struct {
	term   *Terminal
	panel  *Panel
	keys   *KeySource
	buf    *host.Buffer
	logger *zap.Logger

	mu     sync.Mutex
	d      Dispatcher
	top    int
	status string
	seen   int // messages already shown in the status line
}

// NewViewer creates a viewer of buf on term. panel must be the Prompter
// of d's configuration.
func NewViewer(term *Terminal, panel *Panel, buf *host.Buffer, d Dispatcher, logger *zap.Logger) *Viewer {
	v := &Viewer{
		term:   term,
		panel:  panel,
		keys:   NewKeySource(term),
		buf:    buf,
		d:      d,
		logger: logging.WithComponent(logger, "ui"),
		status: "C-. menu  M-RET default  C-SPC mark  C-q quit",
		seen:   len(buf.Messages()),
	}
	v.keys.Refresh = v.redraw
	panel.SetBackground(v.drawBuffer)
	return v
}

// SetDispatcher swaps the dispatcher, e.g. after a configuration reload,
// and shows status. It is safe to call from another goroutine.
func (v *Viewer) SetDispatcher(d Dispatcher, status string) {
	v.mu.Lock()
	v.d = d
	v.status = status
	v.mu.Unlock()
	v.term.Interrupt()
}

// Status returns the status line message.
func (v *Viewer) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Run processes keys until C-q, the context ends or the terminal shuts
// down.
func (v *Viewer) Run(ctx context.Context) error {
	v.redraw()
	for {
		ev, err := v.keys.NextKey(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ev == keyQuit {
			return nil
		}
		if err := v.handle(ctx, ev); err != nil {
			return err
		}
		v.redraw()
	}
}

func (v *Viewer) handle(ctx context.Context, ev key.Event) error {
	text, point := v.buf.Text(), v.buf.Point()

	switch ev {
	case keyMenu:
		return v.menu(ctx)
	case keyDefault:
		v.runDefault(ctx)
	case keyMark:
		if _, active := v.buf.Region(); active {
			v.buf.Deactivate()
			v.setStatus("Mark deactivated")
		} else {
			v.buf.SetMark(point)
			v.setStatus("Mark set")
		}
	case keyCancel:
		v.buf.Deactivate()
		v.setStatus("Quit")
	case keyBOL:
		line, _ := host.Position(text, point)
		v.buf.SetPoint(host.Offset(text, line, 1))
	case keyEOL:
		line, _ := host.Position(text, point)
		v.buf.SetPoint(host.Offset(text, line, len(text)+1))
	default:
		if !v.move(ev, text, point) {
			v.setStatus(fmt.Sprintf("%s is undefined", ev))
		}
	}
	return nil
}

// move handles the arrow keys.
func (v *Viewer) move(ev key.Event, text string, point int) bool {
	if ev.Modifiers != key.ModNone {
		return false
	}
	switch ev.Key {
	case key.KeyLeft:
		_, size := utf8.DecodeLastRuneInString(text[:point])
		v.buf.SetPoint(point - size)
	case key.KeyRight:
		_, size := utf8.DecodeRuneInString(text[point:])
		v.buf.SetPoint(point + size)
	case key.KeyUp, key.KeyDown:
		line, col := host.Position(text, point)
		if ev.Key == key.KeyUp {
			line--
		} else {
			line++
		}
		if line < 1 || line > strings.Count(text, "\n")+1 {
			return true
		}
		off := host.Offset(text, line, col)
		for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
			off--
		}
		v.buf.SetPoint(off)
	case key.KeyHome:
		v.buf.SetPoint(0)
	case key.KeyEnd:
		v.buf.SetPoint(len(text))
	default:
		return false
	}
	return true
}

// menu runs an interactive session, reading keys from the terminal until
// it closes.
func (v *Viewer) menu(ctx context.Context) error {
	sess, err := v.dispatcher().Interactive(ctx, v.buf)
	if err != nil {
		v.setStatus(err.Error())
		return nil
	}

	for sess.Active() {
		ev, err := v.keys.NextKey(ctx)
		if err != nil {
			sess.Cancel()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		out, err := sess.Feed(ctx, ev)
		switch {
		case err != nil:
			v.logger.Debug("action error", zap.Error(err))
			v.setStatus(err.Error())
		case out == dispatch.OutcomeUnbound:
			v.setStatus(fmt.Sprintf("%s is undefined here", ev))
		default:
			v.showMessages()
		}
		v.redraw()
	}
	return nil
}

func (v *Viewer) runDefault(ctx context.Context) {
	ok, err := v.dispatcher().Default(ctx, v.buf)
	switch {
	case err != nil:
		v.setStatus(err.Error())
	case !ok:
		v.setStatus("No default action here")
	default:
		v.showMessages()
	}
}

func (v *Viewer) dispatcher() Dispatcher {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.d
}

func (v *Viewer) setStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = s
}

// showMessages moves the newest buffer message to the status line.
func (v *Viewer) showMessages() {
	msgs := v.buf.Messages()
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(msgs) > v.seen {
		v.status = msgs[len(msgs)-1]
		v.seen = len(msgs)
	}
}

func (v *Viewer) redraw() {
	v.drawBuffer()
	v.panel.Draw()
	v.term.Show()
}

// drawBuffer paints the text, the region, the cursor and the status line.
func (v *Viewer) drawBuffer() {
	width, height := v.term.Size()
	v.term.Clear()

	text, point := v.buf.Text(), v.buf.Point()
	region, active := v.buf.Region()
	lines := strings.Split(text, "\n")
	line, col := host.Position(text, point)
	row := line - 1

	textHeight := max(height-1-v.panel.Height(height), 1)

	v.mu.Lock()
	if row < v.top {
		v.top = row
	} else if row >= v.top+textHeight {
		v.top = row - textHeight + 1
	}
	top, status := v.top, v.status
	v.mu.Unlock()

	off := 0
	for i := 0; i < top && i < len(lines); i++ {
		off += len(lines[i]) + 1
	}
	for y := 0; y < textHeight && top+y < len(lines); y++ {
		v.drawLine(y, width, lines[top+y], off, region, active)
		off += len(lines[top+y]) + 1
	}

	if y := row - top; y >= 0 && y < textHeight {
		v.term.ShowCursor(displayWidth(lines[row][:col-1]), y)
	} else {
		v.term.HideCursor()
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	name := v.buf.Path()
	if name == "" {
		name = "*scratch*"
	}
	left := fmt.Sprintf(" %s (%s) L%d C%d  ", filepath.Base(name), v.buf.Mode(), line, col)
	v.term.FillRow(0, height-1, statusStyle)
	x := v.term.DrawText(0, height-1, width, left, statusStyle)
	v.term.DrawText(x, height-1, width, status, statusStyle)
}

// drawLine draws one line starting at byte offset off, highlighting the
// region and expanding tabs.
func (v *Viewer) drawLine(y, width int, line string, off int, region host.Span, active bool) {
	normal := tcell.StyleDefault
	marked := normal.Reverse(true)

	x := 0
	for i, r := range line {
		style := normal
		if active && off+i >= region.Start && off+i < region.End {
			style = marked
		}
		if r == '\t' {
			n := tabWidth - x%tabWidth
			x = v.term.DrawText(x, y, width, strings.Repeat(" ", n), style)
			continue
		}
		x = v.term.DrawText(x, y, width, string(r), style)
		if x >= width {
			return
		}
	}
}

// displayWidth returns the columns s occupies with tabs expanded.
func displayWidth(s string) int {
	x := 0
	for _, r := range s {
		if r == '\t' {
			x += tabWidth - x%tabWidth
			continue
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}
