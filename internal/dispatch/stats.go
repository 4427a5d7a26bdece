package dispatch

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dshills/atpoint/internal/action"
)

// Stats collects invocation statistics across dispatches.
type Stats struct {
	mu sync.RWMutex

	actions map[string]*ActionStats

	sessions    uint64
	emptyMenus  uint64
	defaults    uint64
	defaultHits uint64
}

// ActionStats holds the counters for one action, keyed by the name of the
// underlying action.
type ActionStats struct {
	Name          string
	Invocations   uint64
	Errors        uint64
	Panics        uint64
	Repeats       uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastInvoked   time.Time
}

// AverageDuration returns the mean invocation time.
func (a ActionStats) AverageDuration() time.Duration {
	if a.Invocations == 0 {
		return 0
	}
	return a.TotalDuration / time.Duration(a.Invocations)
}

// StatsSnapshot is a point-in-time copy of the global counters.
type StatsSnapshot struct {
	Sessions    uint64
	EmptyMenus  uint64
	Defaults    uint64
	DefaultHits uint64
	Invocations uint64
	Errors      uint64
	Panics      uint64
	ActionCount int
}

// NewStats creates an empty collector.
func NewStats() *Stats {
	return &Stats{actions: make(map[string]*ActionStats)}
}

// RecordSession counts an interactive session.
func (s *Stats) RecordSession(empty bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions++
	if empty {
		s.emptyMenus++
	}
}

// RecordDefault counts a default dispatch and whether it found a binding.
func (s *Stats) RecordDefault(hit bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults++
	if hit {
		s.defaultHits++
	}
}

// RecordInvoke records one action invocation. repeat marks a sticky
// action invoked again within the same session.
func (s *Stats) RecordInvoke(name string, d time.Duration, err error, repeat bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	as := s.actions[name]
	if as == nil {
		as = &ActionStats{Name: name}
		s.actions[name] = as
	}
	as.Invocations++
	as.TotalDuration += d
	as.LastInvoked = time.Now()
	if d > as.MaxDuration {
		as.MaxDuration = d
	}
	if repeat {
		as.Repeats++
	}
	if err != nil {
		as.Errors++
		if errors.Is(err, action.ErrActionPanic) {
			as.Panics++
		}
	}
}

// Action returns a copy of the counters for name.
func (s *Stats) Action(name string) (ActionStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	as, ok := s.actions[name]
	if !ok {
		return ActionStats{}, false
	}
	return *as, true
}

// Top returns up to n actions ordered by invocation count, ties by name.
func (s *Stats) Top(n int) []ActionStats {
	s.mu.RLock()
	out := make([]ActionStats, 0, len(s.actions))
	for _, as := range s.actions {
		out = append(out, *as)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Invocations != out[j].Invocations {
			return out[i].Invocations > out[j].Invocations
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Snapshot returns the global counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := StatsSnapshot{
		Sessions:    s.sessions,
		EmptyMenus:  s.emptyMenus,
		Defaults:    s.defaults,
		DefaultHits: s.defaultHits,
		ActionCount: len(s.actions),
	}
	for _, as := range s.actions {
		snap.Invocations += as.Invocations
		snap.Errors += as.Errors
		snap.Panics += as.Panics
	}
	return snap
}

// Reset clears all counters.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = make(map[string]*ActionStats)
	s.sessions, s.emptyMenus, s.defaults, s.defaultHits = 0, 0, 0, 0
}
