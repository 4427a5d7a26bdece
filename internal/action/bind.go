package action

import "context"

// Bound is an invoker with its first argument fixed.
type Bound struct {
	target Invoker
	value  any
}

// Bind returns an invoker that calls target with value prepended to
// whatever arguments it is given.
func Bind(target Invoker, value any) *Bound {
	return &Bound{target: target, value: value}
}

// Name returns the name of the wrapped action.
func (b *Bound) Name() string { return b.target.Name() }

// Value returns the bound argument.
func (b *Bound) Value() any { return b.value }

// Unwrap returns the wrapped invoker.
func (b *Bound) Unwrap() Invoker { return b.target }

// Invoke calls the wrapped invoker with the bound value first.
func (b *Bound) Invoke(ctx context.Context, args ...any) error {
	full := make([]any, 0, len(args)+1)
	full = append(full, b.value)
	full = append(full, args...)
	return b.target.Invoke(ctx, full...)
}

// Base strips every layer of binding and returns the underlying invoker.
func Base(inv Invoker) Invoker {
	for {
		u, ok := inv.(interface{ Unwrap() Invoker })
		if !ok {
			return inv
		}
		inv = u.Unwrap()
	}
}

// Describe returns the description of the underlying action, or "" when
// the invoker is not an *Action.
func Describe(inv Invoker) string {
	if a, ok := Base(inv).(*Action); ok {
		return a.Description()
	}
	return ""
}
