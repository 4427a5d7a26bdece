package dispatch

import (
	"context"
	"testing"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/target"
)

type call struct {
	Name string
	Args []any
}

type journal struct{ calls []call }

func (j *journal) names() []string {
	out := make([]string, len(j.calls))
	for i, c := range j.calls {
		out[i] = c.Name
	}
	return out
}

func (j *journal) fn(name string) action.Func {
	return func(_ context.Context, args ...any) error {
		j.calls = append(j.calls, call{Name: name, Args: args})
		return nil
	}
}

// recorder is a Prompter that counts calls.
type recorder struct {
	shows []Prompt
	hides int
}

func (r *recorder) Show(p Prompt) { r.shows = append(r.shows, p) }
func (r *recorder) Hide() { r.hides++ }

func fixed(kind target.Kind, m *actionmap.Map, value any) target.Detector {
	return target.NewDetector(kind, func(host.Env) (*target.Target, error) {
		return &target.Target{Kind: kind, Map: m, Value: value}, nil
	})
}

func none(kind target.Kind) target.Detector {
	return target.NewDetector(kind, func(host.Env) (*target.Target, error) { return nil, nil })
}

type fixture struct {
	actions  *action.Registry
	prompter *recorder
	stats    *Stats
}

func newFixture(t *testing.T, actions ...*action.Action) *fixture {
	t.Helper()
	reg := action.NewRegistry()
	if err := reg.Register(actions...); err != nil {
		t.Fatal(err)
	}
	return &fixture{actions: reg, prompter: &recorder{}, stats: NewStats()}
}

func (f *fixture) dispatcher(t *testing.T, ds ...target.Detector) *Dispatcher {
	t.Helper()
	detectors, err := target.NewRegistry(ds...)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig().
		WithDetectors(detectors).
		WithMaps(actionmap.NewRegistry()).
		WithActions(f.actions).
		WithPrompter(f.prompter).
		WithStats(f.stats)
	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}
