package kinds

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

// regionFunc edits the region text.
type regionFunc func(env host.Env, sp host.Span, text string) error

func regionAction(name, description string, fn regionFunc) *action.Action {
	return action.MustNew(name, description, 1, func(ctx context.Context, args ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		sp, err := valueArg[host.Span](name, args)
		if err != nil {
			return err
		}
		if err := checkSpan(env, sp); err != nil {
			return err
		}
		return fn(env, sp, sp.In(env.Text()))
	})
}

// rewrite returns a regionFunc replacing the region with f(text).
func rewrite(f func(string) string) regionFunc {
	return func(env host.Env, sp host.Span, text string) error {
		out := f(text)
		if out == text {
			return nil
		}
		if err := env.Replace(sp.Start, sp.End, out); err != nil {
			return err
		}
		env.SetMark(sp.Start)
		env.SetPoint(sp.Start + len(out))
		return nil
	}
}

// mapLines applies f to the region's lines, keeping a final newline.
func mapLines(f func([]string) []string) func(string) string {
	return func(text string) string {
		trailing := strings.HasSuffix(text, "\n")
		body := strings.TrimSuffix(text, "\n")
		out := strings.Join(f(strings.Split(body, "\n")), "\n")
		if trailing {
			out += "\n"
		}
		return out
	}
}

func sortLines(lines []string) []string {
	slices.Sort(lines)
	return lines
}

func dedupeLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

func countLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

func regionActions() []*action.Action {
	return []*action.Action{
		regionAction(ActionRegionUpcase, "Upcase region", rewrite(cases.Upper(language.Und).String)),
		regionAction(ActionRegionDowncase, "Downcase region", rewrite(cases.Lower(language.Und).String)),
		regionAction(ActionRegionCapitalize, "Capitalize words in region", rewrite(cases.Title(language.Und).String)),
		regionAction(ActionRegionSortLines, "Sort lines", rewrite(mapLines(sortLines))),
		regionAction(ActionRegionDedupe, "Delete duplicate lines", rewrite(mapLines(dedupeLines))),
		regionAction(ActionRegionKill, "Kill region", func(env host.Env, sp host.Span, text string) error {
			env.Copy(text)
			if err := env.Replace(sp.Start, sp.End, ""); err != nil {
				return err
			}
			env.Deactivate()
			return nil
		}),
		regionAction(ActionRegionCopy, "Copy region", func(env host.Env, _ host.Span, text string) error {
			env.Copy(text)
			env.Deactivate()
			env.Message("Copied %d characters", utf8.RuneCountInString(text))
			return nil
		}),
		regionAction(ActionRegionCountWords, "Count lines, words and characters", func(env host.Env, _ host.Span, text string) error {
			env.Message("Region: %d lines, %d words, %d characters",
				countLines(text), len(strings.Fields(text)), utf8.RuneCountInString(text))
			return nil
		}),
	}
}
