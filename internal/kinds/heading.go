package kinds

import (
	"context"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

const maxMarkdownLevel = 6

func headingAction(name, description string, fn func(env host.Env, h host.Heading) error) *action.Action {
	return action.MustNew(name, description, 0, func(ctx context.Context, _ ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		h, ok := host.HeadingAt(env)
		if !ok {
			return ErrNotFound
		}
		return fn(env, h)
	})
}

// rewriteHeading replaces h's line with nh, keeping point on the title.
func rewriteHeading(env host.Env, h, nh host.Heading) error {
	line := nh.Render()
	rel := env.Point() - h.Span.Start + len(line) - h.Span.Len()
	rel = max(0, min(rel, len(line)))
	if err := env.Replace(h.Span.Start, h.Span.End, line); err != nil {
		return err
	}
	env.SetPoint(h.Span.Start + rel)
	return nil
}

// moveSection swaps h's section with its sibling in direction dir.
func moveSection(env host.Env, h host.Heading, dir int) error {
	text := env.Text()
	sib, ok := h.Sibling(text, dir)
	if !ok {
		return host.ErrNoSibling
	}
	col := env.Point() - h.Span.Start

	var (
		span   host.Span
		joined string
		newH   int
	)
	if dir < 0 {
		span, joined, _, newH = host.SwapSections(text, sib, h)
	} else {
		span, joined, newH, _ = host.SwapSections(text, h, sib)
	}
	if err := env.Replace(span.Start, span.End, joined); err != nil {
		return err
	}
	env.SetPoint(newH + col)
	return nil
}

func headingActions() []*action.Action {
	return []*action.Action{
		headingAction(ActionHeadingPromote, "Promote heading", func(env host.Env, h host.Heading) error {
			if h.Level <= 1 {
				return ErrHeadingLevel
			}
			nh := h
			nh.Level--
			return rewriteHeading(env, h, nh)
		}),
		headingAction(ActionHeadingDemote, "Demote heading", func(env host.Env, h host.Heading) error {
			if h.Marker == '#' && h.Level >= maxMarkdownLevel {
				return ErrHeadingLevel
			}
			nh := h
			nh.Level++
			return rewriteHeading(env, h, nh)
		}),
		headingAction(ActionHeadingMoveUp, "Move section up", func(env host.Env, h host.Heading) error {
			return moveSection(env, h, -1)
		}),
		headingAction(ActionHeadingMoveDown, "Move section down", func(env host.Env, h host.Heading) error {
			return moveSection(env, h, 1)
		}),
		headingAction(ActionHeadingCycleTodo, "Cycle TODO state", func(env host.Env, h host.Heading) error {
			if h.Marker != '*' {
				return ErrNoTodo
			}
			return rewriteHeading(env, h, h.NextTodo())
		}),
	}
}
