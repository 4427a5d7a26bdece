package ui

import (
	"context"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/atpoint/internal/input/key"
)

// KeySource reads key events from a Terminal. It satisfies
// dispatch.KeySource.
type KeySource struct {
	term *Terminal

	// Refresh, if set, is called on resize and interrupt events.
	Refresh func()
}

// NewKeySource creates a key source on term.
func NewKeySource(term *Terminal) *KeySource {
	return &KeySource{term: term}
}

// NextKey blocks until a convertible key arrives. It returns io.EOF after
// the terminal shuts down.
func (k *KeySource) NextKey(ctx context.Context) (key.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return key.Event{}, ctx.Err()
		case ev, ok := <-k.term.Events():
			if !ok {
				return key.Event{}, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ke := FromTcell(ev); !ke.IsZero() {
					return ke, nil
				}
			case *tcell.EventResize:
				k.term.Sync()
				k.refresh()
			case *tcell.EventInterrupt:
				k.refresh()
			}
		}
	}
}

func (k *KeySource) refresh() {
	if k.Refresh != nil {
		k.Refresh()
	}
}
