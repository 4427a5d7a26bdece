package kinds

import (
	"context"
	"strings"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

// tableAction runs fn on the table at point and writes the table back
// aligned, with point in the current cell.
func tableAction(name, description string, fn func(env host.Env, t *host.Table) error) *action.Action {
	return action.MustNew(name, description, 0, func(ctx context.Context, _ ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		t, ok := host.TableAt(env)
		if !ok {
			return ErrNotFound
		}
		if err := fn(env, t); err != nil {
			return err
		}
		return writeTable(env, t)
	})
}

func writeTable(env host.Env, t *host.Table) error {
	if len(t.Rows) == 0 {
		end := t.Span.End
		if end < len(env.Text()) {
			end++
		}
		return env.Replace(t.Span.Start, end, "")
	}
	text, cell := t.Render()
	if err := env.Replace(t.Span.Start, t.Span.End, text); err != nil {
		return err
	}
	env.SetPoint(t.Span.Start + cell)
	return nil
}

func tableActions() []*action.Action {
	return []*action.Action{
		tableAction(ActionTableRowUp, "Move row up", func(_ host.Env, t *host.Table) error {
			return t.MoveRow(-1)
		}),
		tableAction(ActionTableRowDown, "Move row down", func(_ host.Env, t *host.Table) error {
			return t.MoveRow(1)
		}),
		tableAction(ActionTableColLeft, "Move column left", func(_ host.Env, t *host.Table) error {
			return t.MoveColumn(-1)
		}),
		tableAction(ActionTableColRight, "Move column right", func(_ host.Env, t *host.Table) error {
			return t.MoveColumn(1)
		}),
		tableAction(ActionTableAlign, "Align table", func(host.Env, *host.Table) error {
			return nil
		}),
		tableAction(ActionTableInsertRow, "Insert row above", func(_ host.Env, t *host.Table) error {
			t.InsertRow()
			return nil
		}),
		tableAction(ActionTableKillRow, "Kill row", func(env host.Env, t *host.Table) error {
			if cells, _ := t.KillRow(); cells != nil {
				env.Copy(strings.Join(cells, "\t"))
			}
			return nil
		}),
		action.MustNew(ActionTableCopyCell, "Copy cell", 0, func(ctx context.Context, _ ...any) error {
			env, err := envFrom(ctx)
			if err != nil {
				return err
			}
			t, ok := host.TableAt(env)
			if !ok {
				return ErrNotFound
			}
			env.Copy(t.Cell())
			env.Message("Copied %q", t.Cell())
			return nil
		}),
	}
}
