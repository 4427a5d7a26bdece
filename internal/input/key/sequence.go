package key

import (
	"strings"
)

// Sequence is a series of key events forming a multi-key trigger, such as
// "C-c t".
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{
		Events: make([]Event, 0, 4),
	}
}

// NewSequenceFrom creates a sequence from the given events.
func NewSequenceFrom(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return s.Len() == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// Clear removes all events from the sequence.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// String returns the space separated canonical form, e.g. "C-c t".
func (s *Sequence) String() string {
	if s.IsEmpty() {
		return ""
	}
	parts := make([]string, len(s.Events))
	for i, e := range s.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return &Sequence{Events: events}
}

// ParseSequence parses a space separated key sequence such as "C-c t".
// An empty string yields an empty sequence.
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()
	for _, part := range strings.Fields(s) {
		event, err := Parse(part)
		if err != nil {
			return nil, err
		}
		seq.Add(event)
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
