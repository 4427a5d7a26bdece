package kinds

import (
	"context"
	"fmt"

	"github.com/dshills/atpoint/internal/host"
)

func envFrom(ctx context.Context) (host.Env, error) {
	env, err := host.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("kinds: %w", err)
	}
	return env, nil
}

// valueArg returns the single bound argument as a T.
func valueArg[T any](name string, args []any) (T, error) {
	v, ok := args[0].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s wants %T, got %T", ErrValueType, name, zero, args[0])
	}
	return v, nil
}

// pointEnv is env with point moved, for re-probing at a known offset.
type pointEnv struct {
	host.Env
	point int
}

func (p pointEnv) Point() int { return p.point }

func at(env host.Env, offset int) host.Env {
	return pointEnv{Env: env, point: offset}
}

// checkSpan reports whether sp still lies inside the buffer.
func checkSpan(env host.Env, sp host.Span) error {
	if sp.Start < 0 || sp.Start > sp.End || sp.End > len(env.Text()) {
		return fmt.Errorf("kinds: %w: %s", host.ErrRange, sp)
	}
	return nil
}

// replaceSpan replaces sp with text and keeps point at the same offset
// within the new text, clamped to its end.
func replaceSpan(env host.Env, sp host.Span, text string) error {
	rel := env.Point() - sp.Start
	if err := env.Replace(sp.Start, sp.End, text); err != nil {
		return err
	}
	switch {
	case rel < 0 || rel > sp.Len():
		// Point was outside the span; Replace already moved it.
	case rel > len(text):
		env.SetPoint(sp.Start + len(text))
	default:
		env.SetPoint(sp.Start + rel)
	}
	return nil
}

// display renders a target value for messages and the clipboard.
func display(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
