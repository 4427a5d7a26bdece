package analysis

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Result is the analysis of one buffer revision. It is immutable.
type Result struct {
	Language    Language
	Revision    uint64
	symbols     map[string]SymbolInfo
	references  map[string][]Span
	diagnostics []Diagnostic
}

// Symbol returns the first definition of name.
func (r *Result) Symbol(name string) (SymbolInfo, bool) {
	s, ok := r.symbols[name]
	return s, ok
}

// References returns every occurrence of name, definitions included, in
// buffer order.
func (r *Result) References(name string) []Span {
	return append([]Span(nil), r.references[name]...)
}

// DiagnosticAt returns the innermost diagnostic covering offset. The end
// of a diagnostic counts as covered so that point just after a bad token
// still finds it.
func (r *Result) DiagnosticAt(offset int) (Diagnostic, bool) {
	var best Diagnostic
	found := false
	for _, d := range r.diagnostics {
		if offset < d.Span.Start || offset > d.Span.End {
			continue
		}
		if !found || d.Span.End-d.Span.Start < best.Span.End-best.Span.Start {
			best, found = d, true
		}
	}
	return best, found
}

// Diagnostics returns all diagnostics in buffer order.
func (r *Result) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diagnostics...)
}

// Symbols returns the defined names in sorted order.
func (r *Result) Symbols() []string {
	names := make([]string, 0, len(r.symbols))
	for name := range r.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builder collects a Result while walking a syntax tree.
type builder struct {
	src    []byte
	lang   Language
	result *Result
}

func newBuilder(lang Language, src []byte, rev uint64) *builder {
	return &builder{
		src:  src,
		lang: lang,
		result: &Result{
			Language:   lang,
			Revision:   rev,
			symbols:    make(map[string]SymbolInfo),
			references: make(map[string][]Span),
		},
	}
}

func span(n *sitter.Node) Span {
	return Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (b *builder) define(n *sitter.Node, kind SymbolKind) {
	if n == nil {
		return
	}
	name := n.Content(b.src)
	if _, exists := b.result.symbols[name]; exists || name == "_" {
		return
	}
	b.result.symbols[name] = SymbolInfo{
		Name:       name,
		Kind:       kind,
		Definition: span(n),
		Line:       int(n.StartPoint().Row),
	}
}

func (b *builder) reference(n *sitter.Node) {
	name := n.Content(b.src)
	b.result.references[name] = append(b.result.references[name], span(n))
}

func (b *builder) diagnose(n *sitter.Node) {
	var msg string
	switch {
	case n.IsMissing():
		msg = "missing " + n.Type()
	case n.IsError():
		msg = "syntax error"
	default:
		return
	}
	p := n.StartPoint()
	b.result.diagnostics = append(b.result.diagnostics, Diagnostic{
		Span:    span(n),
		Line:    int(p.Row),
		Column:  int(p.Column),
		Message: msg,
	})
}

func (b *builder) walk(n *sitter.Node) {
	b.diagnose(n)

	switch b.lang {
	case LangGo:
		b.goNode(n)
	case LangPython:
		b.pythonNode(n)
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		b.walk(n.Child(i))
	}
}

func (b *builder) goNode(n *sitter.Node) {
	switch n.Type() {
	case "identifier", "field_identifier", "type_identifier":
		b.reference(n)
	case "function_declaration", "method_declaration":
		b.define(n.ChildByFieldName("name"), SymbolFunction)
	case "type_spec":
		b.define(n.ChildByFieldName("name"), SymbolType)
	case "var_spec", "const_spec":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() != "identifier" {
				break
			}
			b.define(c, SymbolVariable)
		}
	case "short_var_declaration", "range_clause":
		left := n.ChildByFieldName("left")
		if left == nil {
			return
		}
		for i := 0; i < int(left.NamedChildCount()); i++ {
			if c := left.NamedChild(i); c.Type() == "identifier" {
				b.define(c, SymbolVariable)
			}
		}
	case "parameter_declaration":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c.Type() == "identifier" {
				b.define(c, SymbolVariable)
			}
		}
	}
}

func (b *builder) pythonNode(n *sitter.Node) {
	switch n.Type() {
	case "identifier":
		b.reference(n)
	case "function_definition":
		b.define(n.ChildByFieldName("name"), SymbolFunction)
	case "class_definition":
		b.define(n.ChildByFieldName("name"), SymbolType)
	case "assignment", "augmented_assignment", "for_statement":
		left := n.ChildByFieldName("left")
		if left == nil {
			return
		}
		if left.Type() == "identifier" {
			b.define(left, SymbolVariable)
			return
		}
		for i := 0; i < int(left.NamedChildCount()); i++ {
			if c := left.NamedChild(i); c.Type() == "identifier" {
				b.define(c, SymbolVariable)
			}
		}
	case "parameters":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			switch c.Type() {
			case "identifier":
				b.define(c, SymbolVariable)
			case "default_parameter", "typed_parameter", "typed_default_parameter":
				if name := c.ChildByFieldName("name"); name != nil {
					b.define(name, SymbolVariable)
				} else if c.NamedChildCount() > 0 && c.NamedChild(0).Type() == "identifier" {
					b.define(c.NamedChild(0), SymbolVariable)
				}
			}
		}
	}
}
