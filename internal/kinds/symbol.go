package kinds

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// occurrences returns the offsets of name as a whole word in text.
func occurrences(text, name string) []int {
	if name == "" {
		return nil
	}
	var out []int
	for off := 0; off <= len(text)-len(name); {
		i := strings.Index(text[off:], name)
		if i < 0 {
			break
		}
		start, end := off+i, off+i+len(name)
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			out = append(out, start)
		}
		off = start + len(name)
	}
	return out
}

// search moves point to the next (dir > 0) or previous occurrence of
// name, wrapping around the buffer.
func search(env host.Env, name string, dir int) error {
	offs := occurrences(env.Text(), name)
	if len(offs) == 0 {
		return ErrNotFound
	}

	cur := env.Point()
	if sym, sp, ok := host.SymbolAt(env); ok && sym == name {
		cur = sp.Start
	}

	next, wrapped := -1, false
	if dir > 0 {
		for _, o := range offs {
			if o > cur {
				next = o
				break
			}
		}
		if next < 0 {
			next, wrapped = offs[0], true
		}
	} else {
		for i := len(offs) - 1; i >= 0; i-- {
			if offs[i] < cur {
				next = offs[i]
				break
			}
		}
		if next < 0 {
			next, wrapped = offs[len(offs)-1], true
		}
	}

	env.SetPoint(next)
	if wrapped {
		env.Message("Wrapped search for %s", name)
	}
	return nil
}

// lineList renders the one-based lines of offs, e.g. "3, 7, 12".
func lineList(text string, offs []int) string {
	parts := make([]string, len(offs))
	for i, o := range offs {
		line, _ := host.Position(text, o)
		parts[i] = strconv.Itoa(line)
	}
	return strings.Join(parts, ", ")
}

func symbolActions() []*action.Action {
	return []*action.Action{
		valueAction(ActionSymbolDescribe, "Describe symbol", func(env host.Env, name string) error {
			an := env.Analyzer()
			if an == nil {
				env.Message("%s", name)
				return nil
			}
			info, ok := an.Symbol(name)
			if !ok {
				env.Message("%s: no definition in this buffer", name)
				return nil
			}
			env.Message("%s: %s defined on line %d, %d references",
				name, info.Kind, info.Line+1, len(an.References(name)))
			return nil
		}),
		valueAction(ActionXrefDefinition, "Go to definition", func(env host.Env, name string) error {
			an := env.Analyzer()
			if an == nil {
				return ErrNoAnalyzer
			}
			info, ok := an.Symbol(name)
			if !ok {
				return ErrNotFound
			}
			env.SetPoint(info.Definition.Start)
			return nil
		}),
		valueAction(ActionXrefReferences, "List references", func(env host.Env, name string) error {
			an := env.Analyzer()
			if an == nil {
				return ErrNoAnalyzer
			}
			refs := an.References(name)
			offs := make([]int, len(refs))
			for i, r := range refs {
				offs[i] = r.Start
			}
			env.Message("%s: %d references on lines %s", name, len(refs), lineList(env.Text(), offs))
			return nil
		}),
		valueAction(ActionIdentSearchFwd, "Next occurrence", func(env host.Env, name string) error {
			return search(env, name, 1)
		}),
		valueAction(ActionIdentSearchBwd, "Previous occurrence", func(env host.Env, name string) error {
			return search(env, name, -1)
		}),
		valueAction(ActionIdentOccurrences, "Count occurrences", func(env host.Env, name string) error {
			text := env.Text()
			offs := occurrences(text, name)
			env.Message("%s: %d occurrences on lines %s", name, len(offs), lineList(text, offs))
			return nil
		}),
	}
}
