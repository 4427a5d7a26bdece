package ui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/atpoint/internal/input/key"
)

// Terminal owns a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	events   chan tcell.Event
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
}

// Init initializes the screen and starts the event pump.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()

	t.wg.Add(1)
	go t.pump()
	return nil
}

// Shutdown stops the event pump and restores the terminal. It is safe to
// call more than once.
func (t *Terminal) Shutdown() {
	t.stopOnce.Do(func() {
		close(t.done)
		t.mu.Lock()
		t.screen.Fini()
		t.mu.Unlock()
		t.wg.Wait()
	})
}

func (t *Terminal) pump() {
	defer t.wg.Done()
	defer close(t.events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Events delivers screen events. It is closed after Shutdown.
func (t *Terminal) Events() <-chan tcell.Event {
	return t.events
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Clear blanks the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes pending drawing.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// Sync redraws the whole screen, after a resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

// DrawText draws s from column x of row y, clipped at maxX. It returns the
// column after the last cell drawn.
func (t *Terminal) DrawText(x, y, maxX int, s string, style tcell.Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// FillRow paints row y from column x to the right edge.
func (t *Terminal) FillRow(x, y int, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Row returns the text on row y with trailing blanks removed.
func (t *Terminal) Row(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	var sb strings.Builder
	for x := 0; x < width; {
		mainc, _, _, w := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return strings.TrimRight(sb.String(), " ")
}

// ShowCursor places the cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PostKey queues ev as if it had been typed.
func (t *Terminal) PostKey(ev key.Event) error {
	k, r, mod := toTcell(ev)
	return t.screen.PostEvent(tcell.NewEventKey(k, r, mod))
}

// Interrupt wakes a reader of Events, e.g. to redraw after a change made
// by another goroutine.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}
