package kinds

import (
	"fmt"

	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/analysis"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/target"
)

// probe finds the value of one kind at point.
type probe func(env host.Env) (any, bool)

var probes = map[target.Kind]probe{
	target.KindRegion: func(env host.Env) (any, bool) {
		sp, ok := env.Region()
		if !ok || sp.Len() == 0 {
			return nil, false
		}
		return sp, true
	},
	target.KindTableCell: func(env host.Env) (any, bool) {
		_, ok := host.TableAt(env)
		return actionmap.NoValue, ok
	},
	target.KindHeading: func(env host.Env) (any, bool) {
		_, ok := host.HeadingAt(env)
		return actionmap.NoValue, ok
	},
	target.KindTimestamp: func(env host.Env) (any, bool) {
		return host.TimestampAt(env)
	},
	target.KindDiagnostic: func(env host.Env) (any, bool) {
		an := env.Analyzer()
		if an == nil {
			return nil, false
		}
		return an.DiagnosticAt(env.Point())
	},
	target.KindURL: func(env host.Env) (any, bool) {
		u, _, ok := host.URLAt(env)
		return u, ok
	},
	target.KindEmail: func(env host.Env) (any, bool) {
		addr, _, ok := host.EmailAt(env)
		return addr, ok
	},
	target.KindFile: func(env host.Env) (any, bool) {
		p, _, ok := host.FileAt(env)
		return p, ok
	},
	target.KindNumber: func(env host.Env) (any, bool) {
		return host.NumberAt(env)
	},
	target.KindFunction: symbolOfKind(analysis.SymbolFunction),
	target.KindVariable: symbolOfKind(analysis.SymbolVariable),
	target.KindIdentifier: func(env host.Env) (any, bool) {
		name, _, ok := host.SymbolAt(env)
		return name, ok
	},
}

// symbolOfKind matches the symbol at point when the analyzer classifies
// it as kind.
func symbolOfKind(kind analysis.SymbolKind) probe {
	return func(env host.Env) (any, bool) {
		name, _, ok := host.SymbolAt(env)
		if !ok {
			return nil, false
		}
		an := env.Analyzer()
		if an == nil {
			return nil, false
		}
		info, ok := an.Symbol(name)
		if !ok || info.Kind != kind {
			return nil, false
		}
		return name, true
	}
}

// NewDetector returns the built-in detector for kind, offering m.
func NewDetector(kind target.Kind, m *actionmap.Map) (target.Detector, error) {
	p, ok := probes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", target.ErrUnknownKind, kind)
	}
	return target.NewDetector(kind, func(env host.Env) (*target.Target, error) {
		v, ok := p(env)
		if !ok {
			return nil, nil
		}
		return &target.Target{Kind: kind, Map: m, Value: v}, nil
	}), nil
}
