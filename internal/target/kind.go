package target

import (
	"fmt"

	"github.com/dshills/atpoint/internal/suggest"
)

// Kind identifies a category of target.
type Kind uint8

// Target kinds, in default precedence order.
const (
	KindNone Kind = iota
	KindRegion
	KindTableCell
	KindHeading
	KindTimestamp
	KindDiagnostic
	KindURL
	KindEmail
	KindFile
	KindNumber
	KindFunction
	KindVariable
	KindIdentifier
)

var kindNames = [...]string{
	KindNone:       "none",
	KindRegion:     "region",
	KindTableCell:  "table-cell",
	KindHeading:    "heading",
	KindTimestamp:  "timestamp",
	KindDiagnostic: "diagnostic",
	KindURL:        "url",
	KindEmail:      "email",
	KindFile:       "file",
	KindNumber:     "number",
	KindFunction:   "function",
	KindVariable:   "variable",
	KindIdentifier: "identifier",
}

// String returns the kind name used in configuration.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every defined kind except KindNone, in default order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindRegion; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// KindNames returns the names of Kinds().
func KindNames() []string {
	ks := Kinds()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return names
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q%s", ErrUnknownKind, name, suggest.Hint(name, KindNames()))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
