package target

import (
	"fmt"

	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/host"
)

// Target is a detected thing at point.
type Target struct {
	Kind Kind

	// Map holds the actions that apply to the target.
	Map *actionmap.Map

	// Value is bound into every action of Map, or actionmap.NoValue to
	// invoke them directly.
	Value any
}

// HasValue reports whether the target carries a value to bind.
func (t *Target) HasValue() bool {
	return !actionmap.IsNoValue(t.Value)
}

func (t *Target) String() string {
	if !t.HasValue() {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %v", t.Kind, t.Value)
}

// Detector recognizes one kind of target.
type Detector interface {
	// Kind returns the kind this detector reports.
	Kind() Kind

	// Detect returns the target at point, or nil when there is none. It
	// must not modify env.
	Detect(env host.Env) (*Target, error)
}

// DetectFunc is the body of a detector built with NewDetector.
type DetectFunc func(env host.Env) (*Target, error)

type funcDetector struct {
	kind Kind
	fn   DetectFunc
}

// NewDetector returns a detector for kind that calls fn.
func NewDetector(kind Kind, fn DetectFunc) Detector {
	return &funcDetector{kind: kind, fn: fn}
}

func (d *funcDetector) Kind() Kind { return d.kind }

func (d *funcDetector) Detect(env host.Env) (*Target, error) { return d.fn(env) }
