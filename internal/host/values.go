package host

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Span is a half-open byte range.
type Span struct {
	Start int
	End   int
}

// Len returns the span length.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies in [Start, End].
// The end is included so that point just after a thing still finds it.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// In returns the text the span covers.
func (s Span) In(text string) string {
	return text[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Timestamp is a date found in the buffer, with the formatting details
// needed to write it back the same way.
type Timestamp struct {
	Span    Span
	Time    time.Time
	HasTime bool
	Weekday bool
	// Open is '<', '[' or 0 for a bare date.
	Open byte
}

// Format renders t in the original style.
func (t Timestamp) Format() string {
	var sb strings.Builder
	if t.Open != 0 {
		sb.WriteByte(t.Open)
	}
	sb.WriteString(t.Time.Format("2006-01-02"))
	if t.Weekday {
		sb.WriteString(" " + t.Time.Format("Mon"))
	}
	if t.HasTime {
		sb.WriteString(" " + t.Time.Format("15:04"))
	}
	switch t.Open {
	case '<':
		sb.WriteByte('>')
	case '[':
		sb.WriteByte(']')
	}
	return sb.String()
}

// AddDays returns a copy of t moved by n days.
func (t Timestamp) AddDays(n int) Timestamp {
	t.Time = t.Time.AddDate(0, 0, n)
	return t
}

func (t Timestamp) String() string { return t.Format() }

// Number is an integer literal found in the buffer.
type Number struct {
	Span  Span
	Value int64
	// Base is 10 or 16.
	Base int
}

// Format renders n in its base, with a 0x prefix for hex.
func (n Number) Format() string {
	if n.Base == 16 {
		if n.Value < 0 {
			return "-0x" + strconv.FormatInt(-n.Value, 16)
		}
		return "0x" + strconv.FormatInt(n.Value, 16)
	}
	return strconv.FormatInt(n.Value, 10)
}

func (n Number) String() string { return n.Format() }
