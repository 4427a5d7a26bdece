package dispatch

import (
	"context"
	"io"

	"github.com/dshills/atpoint/internal/input/key"
)

// KeySource yields key events for a session.
type KeySource interface {
	// NextKey blocks until a key is available. io.EOF means no more keys.
	NextKey(ctx context.Context) (key.Event, error)
}

// KeySourceFunc adapts a function to a KeySource.
type KeySourceFunc func(ctx context.Context) (key.Event, error)

// NextKey calls f.
func (f KeySourceFunc) NextKey(ctx context.Context) (key.Event, error) {
	return f(ctx)
}

// SequenceSource replays a fixed key sequence.
type SequenceSource struct {
	events []key.Event
	pos    int
}

// NewSequenceSource creates a source over seq. A nil sequence is empty.
func NewSequenceSource(seq *key.Sequence) *SequenceSource {
	src := &SequenceSource{}
	if seq != nil {
		src.events = append(src.events, seq.Events...)
	}
	return src
}

// NextKey returns the next event, or io.EOF when the sequence is
// exhausted.
func (s *SequenceSource) NextKey(ctx context.Context) (key.Event, error) {
	if err := ctx.Err(); err != nil {
		return key.Event{}, err
	}
	if s.pos >= len(s.events) {
		return key.Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Remaining returns the number of unread events.
func (s *SequenceSource) Remaining() int {
	return len(s.events) - s.pos
}
