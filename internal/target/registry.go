package target

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is the ordered list of detectors. Order is precedence.
type Registry struct {
	mu        sync.RWMutex
	detectors []Detector
}

// NewRegistry creates a registry holding detectors in the given order.
func NewRegistry(detectors ...Detector) (*Registry, error) {
	r := &Registry{}
	for _, d := range detectors {
		if err := r.Append(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Append adds d with the lowest precedence.
func (r *Registry) Append(d Detector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(d.Kind()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, d.Kind())
	}
	r.detectors = append(r.detectors, d)
	return nil
}

// Insert adds d directly before the detector for kind before.
func (r *Registry) Insert(before Kind, d Detector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(d.Kind()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, d.Kind())
	}
	i := r.indexLocked(before)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotRegistered, before)
	}
	r.detectors = slices.Insert(r.detectors, i, d)
	return nil
}

// Remove drops the detector for kind and reports whether it was present.
func (r *Registry) Remove(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(kind)
	if i < 0 {
		return false
	}
	r.detectors = slices.Delete(r.detectors, i, i+1)
	return true
}

// Reorder moves the detectors for kinds to the front in the given order.
// Detectors not named keep their relative order after them.
func (r *Registry) Reorder(kinds ...Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	front, err := r.pickLocked(kinds)
	if err != nil {
		return err
	}
	rest := make([]Detector, 0, len(r.detectors)-len(front))
	for _, d := range r.detectors {
		if !slices.Contains(kinds, d.Kind()) {
			rest = append(rest, d)
		}
	}
	r.detectors = append(front, rest...)
	return nil
}

// Retain keeps only the detectors for kinds, in the given order.
func (r *Registry) Retain(kinds ...Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept, err := r.pickLocked(kinds)
	if err != nil {
		return err
	}
	r.detectors = kept
	return nil
}

func (r *Registry) pickLocked(kinds []Kind) ([]Detector, error) {
	out := make([]Detector, 0, len(kinds))
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			return nil, fmt.Errorf("%w: %s listed twice", ErrDuplicateKind, k)
		}
		seen[k] = true
		i := r.indexLocked(k)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, k)
		}
		out = append(out, r.detectors[i])
	}
	return out, nil
}

// Detectors returns a snapshot of the detectors in precedence order.
func (r *Registry) Detectors() []Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Detector(nil), r.detectors...)
}

// Kinds returns the registered kinds in precedence order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, len(r.detectors))
	for i, d := range r.detectors {
		out[i] = d.Kind()
	}
	return out
}

// Get returns the detector for kind.
func (r *Registry) Get(kind Kind) (Detector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(kind); i >= 0 {
		return r.detectors[i], true
	}
	return nil, false
}

// Len returns the number of detectors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.detectors)
}

func (r *Registry) indexLocked(kind Kind) int {
	for i, d := range r.detectors {
		if d.Kind() == kind {
			return i
		}
	}
	return -1
}
