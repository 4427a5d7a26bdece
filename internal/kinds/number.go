package kinds

import (
	"context"
	"fmt"
	"math"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

// currentNumber re-reads the number starting at the bound value's offset.
func currentNumber(env host.Env, bound host.Number) (host.Number, error) {
	if err := checkSpan(env, bound.Span); err != nil {
		return host.Number{}, err
	}
	n, ok := host.NumberAt(at(env, bound.Span.Start))
	if !ok || n.Span.Start != bound.Span.Start {
		return host.Number{}, ErrNotFound
	}
	return n, nil
}

func numberAction(name, description string, fn func(env host.Env, n host.Number) (host.Number, bool, error)) *action.Action {
	return action.MustNew(name, description, 1, func(ctx context.Context, args ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		bound, err := valueArg[host.Number](name, args)
		if err != nil {
			return err
		}
		n, err := currentNumber(env, bound)
		if err != nil {
			return err
		}
		out, changed, err := fn(env, n)
		if err != nil || !changed {
			return err
		}
		return replaceSpan(env, n.Span, out.Format())
	})
}

func numberActions() []*action.Action {
	return []*action.Action{
		numberAction(ActionNumberIncrement, "Increment", func(_ host.Env, n host.Number) (host.Number, bool, error) {
			if n.Value == math.MaxInt64 {
				return n, false, fmt.Errorf("%w: %s + 1", ErrNumberRange, n)
			}
			n.Value++
			return n, true, nil
		}),
		numberAction(ActionNumberDecrement, "Decrement", func(_ host.Env, n host.Number) (host.Number, bool, error) {
			if n.Value == math.MinInt64 {
				return n, false, fmt.Errorf("%w: %s - 1", ErrNumberRange, n)
			}
			n.Value--
			return n, true, nil
		}),
		numberAction(ActionNumberToHex, "Convert to hexadecimal", func(env host.Env, n host.Number) (host.Number, bool, error) {
			if n.Base == 16 {
				env.Message("%s is already hexadecimal", n)
				return n, false, nil
			}
			n.Base = 16
			return n, true, nil
		}),
	}
}
