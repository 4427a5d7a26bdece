package host

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrTableEdge indicates a row or column move past the table edge.
var ErrTableEdge = errors.New("host: cannot move past table edge")

// Table is a pipe table around point. Rows holds the cell text; a nil row
// is a separator line.
type Table struct {
	// Span covers the whole table block, without the final newline.
	Span   Span
	Indent string
	Rows   [][]string
	// Row and Col locate point.
	Row int
	Col int
	// Org selects "|---+---|" separators instead of "|---|---|".
	Org bool
}

// tableModes are the modes with pipe tables.
var tableModes = map[string]bool{"org": true, "markdown": true, "text": true}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}

func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "|") && strings.Contains(s, "-") &&
		strings.Trim(s, "|-+: ") == ""
}

func splitCells(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	cells := strings.Split(s, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// TableAt returns the table containing point.
func TableAt(env Env) (*Table, bool) {
	if !tableModes[env.Mode()] {
		return nil, false
	}
	text, point := env.Text(), env.Point()
	cur, line := LineAt(text, point)
	if !isTableLine(line) {
		return nil, false
	}

	start := cur.Start
	for start > 0 {
		prev, l := LineAt(text, start-1)
		if !isTableLine(l) {
			break
		}
		start = prev.Start
	}
	end := cur.End
	for end < len(text) {
		next, l := LineAt(text, end+1)
		if !isTableLine(l) {
			break
		}
		end = next.End
	}

	block := text[start:end]
	t := &Table{
		Span:   Span{Start: start, End: end},
		Indent: line[:len(line)-len(strings.TrimLeft(line, " \t"))],
		Org:    env.Mode() == "org",
	}

	off := start
	for _, l := range strings.Split(block, "\n") {
		if off <= point && point <= off+len(l) {
			t.Row = len(t.Rows)
			t.Col = strings.Count(l[:point-off], "|") - 1
		}
		if isSeparator(l) {
			t.Rows = append(t.Rows, nil)
		} else {
			t.Rows = append(t.Rows, splitCells(l))
		}
		off += len(l) + 1
	}

	if t.Col < 0 {
		t.Col = 0
	}
	if n := t.Columns(); t.Col >= n {
		t.Col = n - 1
	}
	return t, true
}

// Columns returns the widest row's cell count.
func (t *Table) Columns() int {
	n := 0
	for _, r := range t.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// Cell returns the text of the cell at point.
func (t *Table) Cell() string {
	r := t.Rows[t.Row]
	if t.Col < len(r) {
		return r[t.Col]
	}
	return ""
}

// OnSeparator reports whether point is on a separator line.
func (t *Table) OnSeparator() bool {
	return t.Rows[t.Row] == nil
}

// MoveRow swaps the current row with the one delta rows away.
func (t *Table) MoveRow(delta int) error {
	to := t.Row + delta
	if to < 0 || to >= len(t.Rows) || t.OnSeparator() {
		return ErrTableEdge
	}
	t.Rows[t.Row], t.Rows[to] = t.Rows[to], t.Rows[t.Row]
	t.Row = to
	return nil
}

// MoveColumn swaps the current column with the one delta columns away.
func (t *Table) MoveColumn(delta int) error {
	n := t.Columns()
	to := t.Col + delta
	if to < 0 || to >= n {
		return ErrTableEdge
	}
	t.pad()
	for _, r := range t.Rows {
		if r != nil {
			r[t.Col], r[to] = r[to], r[t.Col]
		}
	}
	t.Col = to
	return nil
}

// InsertRow inserts an empty row above the current one and moves to it.
func (t *Table) InsertRow() {
	row := make([]string, t.Columns())
	t.Rows = append(t.Rows, nil)
	copy(t.Rows[t.Row+1:], t.Rows[t.Row:])
	t.Rows[t.Row] = row
}

// KillRow removes the current row and returns its cells, nil for a
// separator. It reports false when the table becomes empty.
func (t *Table) KillRow() ([]string, bool) {
	killed := t.Rows[t.Row]
	t.Rows = append(t.Rows[:t.Row], t.Rows[t.Row+1:]...)
	if t.Row >= len(t.Rows) {
		t.Row = len(t.Rows) - 1
	}
	if t.Row < 0 {
		t.Row = 0
	}
	return killed, len(t.Rows) > 0
}

func (t *Table) pad() {
	n := t.Columns()
	for i, r := range t.Rows {
		if r != nil && len(r) < n {
			t.Rows[i] = append(r, make([]string, n-len(r))...)
		}
	}
}

func (t *Table) widths() []int {
	w := make([]int, t.Columns())
	for _, r := range t.Rows {
		for i, c := range r {
			if cw := runewidth.StringWidth(c); cw > w[i] {
				w[i] = cw
			}
		}
	}
	for i := range w {
		if w[i] == 0 {
			w[i] = 1
		}
	}
	return w
}

// Render returns the aligned table text. The second result is the offset
// of the current cell's text within it.
func (t *Table) Render() (string, int) {
	t.pad()
	w := t.widths()
	join := "|"
	if t.Org {
		join = "+"
	}

	var sb strings.Builder
	cell := 0
	for i, r := range t.Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.Indent)
		lineStart := sb.Len()
		if r == nil {
			dashes := make([]string, len(w))
			for j, cw := range w {
				dashes[j] = strings.Repeat("-", cw+2)
			}
			sb.WriteString("|" + strings.Join(dashes, join) + "|")
			if i == t.Row {
				cell = lineStart
			}
			continue
		}
		for j, c := range r {
			if i == t.Row && j == t.Col {
				cell = sb.Len() + 2
			}
			sb.WriteString("| ")
			sb.WriteString(runewidth.FillRight(c, w[j]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('|')
	}
	return sb.String(), cell
}
