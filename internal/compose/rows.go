package compose

import (
	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
)

// Row is one menu line.
type Row struct {
	Key         string
	Label       string
	Description string
	Prefix      bool
}

// Rows lists the effective bindings of m for display.
func Rows(m *actionmap.Map) []Row {
	if m == nil {
		return nil
	}
	bs := m.Effective()
	rows := make([]Row, 0, len(bs))
	for _, b := range bs {
		r := Row{
			Key:    b.Trigger.String(),
			Label:  b.Entry.Label(),
			Prefix: b.Entry.IsPrefix(),
		}
		if inv := b.Entry.Invoker(); inv != nil {
			r.Description = action.Describe(inv)
		}
		rows = append(rows, r)
	}
	return rows
}
