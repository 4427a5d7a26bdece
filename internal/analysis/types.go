package analysis

import "fmt"

// Language is a language the service can parse.
type Language string

// Supported languages.
const (
	LangGo     Language = "go"
	LangPython Language = "python"
)

// LanguageForMode maps an editor mode to a supported language.
func LanguageForMode(mode string) (Language, bool) {
	switch mode {
	case "go":
		return LangGo, true
	case "python":
		return LangPython, true
	}
	return "", false
}

// Span is a half-open byte range.
type Span struct {
	Start int
	End   int
}

// Contains reports whether offset lies in the span. An empty span
// contains its own position.
func (s Span) Contains(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return offset >= s.Start && offset < s.End
}

// SymbolKind classifies a symbol.
type SymbolKind uint8

// Symbol kinds.
const (
	SymbolUnknown SymbolKind = iota
	SymbolFunction
	SymbolVariable
	SymbolType
)

// String returns the kind name.
func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolVariable:
		return "variable"
	case SymbolType:
		return "type"
	}
	return "unknown"
}

// SymbolInfo describes a defined name.
type SymbolInfo struct {
	Name       string
	Kind       SymbolKind
	Definition Span
	// Line is the zero-based line of the definition.
	Line int
}

// Diagnostic is a syntax problem found by the parser.
type Diagnostic struct {
	Span    Span
	Line    int
	Column  int
	Message string
}

// String formats the diagnostic as "line:col: message" with one-based
// positions.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line+1, d.Column+1, d.Message)
}
