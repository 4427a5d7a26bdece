package host

import (
	"errors"
	"strings"
)

// ErrNoSibling indicates there is no sibling heading to swap with.
var ErrNoSibling = errors.New("host: no sibling heading")

// Heading is an outline heading line: "** TODO Title" in org or "## Title"
// in markdown.
type Heading struct {
	// Span covers the heading line without its newline.
	Span   Span
	Level  int
	Marker byte
	Todo   string
	Title  string
}

// TodoStates is the cycle order of org TODO keywords.
var TodoStates = []string{"", "TODO", "DONE"}

func headingMarker(mode string) (byte, bool) {
	switch mode {
	case "org":
		return '*', true
	case "markdown":
		return '#', true
	}
	return 0, false
}

// ParseHeading parses line as a heading using marker.
func ParseHeading(line string, marker byte) (Heading, bool) {
	level := 0
	for level < len(line) && line[level] == marker {
		level++
	}
	if level == 0 || (marker == '#' && level > 6) {
		return Heading{}, false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' {
		return Heading{}, false
	}
	rest = strings.TrimSpace(rest)

	h := Heading{Level: level, Marker: marker, Title: rest}
	if marker == '*' {
		for _, kw := range TodoStates[1:] {
			if rest == kw || strings.HasPrefix(rest, kw+" ") {
				h.Todo = kw
				h.Title = strings.TrimSpace(rest[len(kw):])
				break
			}
		}
	}
	return h, true
}

// HeadingAt returns the heading on point's line.
func HeadingAt(env Env) (Heading, bool) {
	marker, ok := headingMarker(env.Mode())
	if !ok {
		return Heading{}, false
	}
	sp, line := LineAt(env.Text(), env.Point())
	h, ok := ParseHeading(line, marker)
	if !ok {
		return Heading{}, false
	}
	h.Span = sp
	return h, true
}

// Render returns the heading line.
func (h Heading) Render() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(string(h.Marker), h.Level))
	if h.Todo != "" {
		sb.WriteString(" " + h.Todo)
	}
	if h.Title != "" {
		sb.WriteString(" " + h.Title)
	}
	return sb.String()
}

// NextTodo returns h with its TODO keyword advanced one step.
func (h Heading) NextTodo() Heading {
	for i, s := range TodoStates {
		if s == h.Todo {
			h.Todo = TodoStates[(i+1)%len(TodoStates)]
			return h
		}
	}
	h.Todo = ""
	return h
}

// headingAtLine parses the line starting at offset.
func headingAtLine(text string, offset int, marker byte) (Heading, bool) {
	sp, line := LineAt(text, offset)
	h, ok := ParseHeading(line, marker)
	h.Span = sp
	return h, ok
}

// Section returns the span of h and its body: from the heading line to
// the next heading of the same or a higher level, or the end of text.
func (h Heading) Section(text string) Span {
	off := h.Span.End
	for off < len(text) {
		next, ok := headingAtLine(text, off+1, h.Marker)
		if ok && next.Level <= h.Level {
			return Span{Start: h.Span.Start, End: next.Span.Start}
		}
		off = next.Span.End
	}
	return Span{Start: h.Span.Start, End: len(text)}
}

// Sibling returns the heading of the same level directly before (dir < 0)
// or after (dir > 0) h's section, stopping at a parent heading.
func (h Heading) Sibling(text string, dir int) (Heading, bool) {
	if dir > 0 {
		end := h.Section(text).End
		if end >= len(text) {
			return Heading{}, false
		}
		next, ok := headingAtLine(text, end, h.Marker)
		if !ok || next.Level != h.Level {
			return Heading{}, false
		}
		return next, true
	}

	off := h.Span.Start
	for off > 0 {
		prev, ok := headingAtLine(text, off-1, h.Marker)
		off = prev.Span.Start
		if !ok || prev.Level > h.Level {
			continue
		}
		if prev.Level == h.Level {
			return prev, true
		}
		break
	}
	return Heading{}, false
}

// SwapSections exchanges the sections of two adjacent sibling headings
// a (first) and b (second). It returns the replaced span, the new text
// for it, and the new offsets of a's and b's heading lines.
func SwapSections(text string, a, b Heading) (span Span, joined string, newA, newB int) {
	sa, sb := a.Section(text), b.Section(text)
	first, second := sa.In(text), sb.In(text)

	trailing := strings.HasSuffix(second, "\n")
	if !trailing {
		second += "\n"
	}
	joined = second + first
	if !trailing {
		joined = strings.TrimSuffix(joined, "\n")
	}
	return Span{Start: sa.Start, End: sb.End}, joined, sa.Start + len(second), sa.Start
}
