// Package suggest finds the closest known name for a misspelled one.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to name by edit distance.
// Candidates further away than a third of the name's length (minimum 2)
// are not considered close; ok is false when nothing qualifies.
func Closest(name string, candidates []string) (best string, ok bool) {
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}

	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	bestDist := limit + 1
	lower := strings.ToLower(name)
	for _, c := range sorted {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= limit
}

// Hint formats a " (did you mean %q?)" suffix, or returns "" when there is
// no close candidate.
func Hint(name string, candidates []string) string {
	if best, ok := Closest(name, candidates); ok {
		return ` (did you mean "` + best + `"?)`
	}
	return ""
}
