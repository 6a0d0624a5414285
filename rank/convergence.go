package rank

import (
	"math"
	"math/rand"
	"sort"
)

// Converged reports whether the largest per-page difference between two
// vectors is within tolerance. This is the default termination check of the
// iterative estimator.
func Converged(previous, current Vector, tolerance float64) bool {
	return MaxDelta(previous, current) <= tolerance
}

// MaxDelta returns the largest absolute per-page difference between two
// vectors over the keys of previous.
func MaxDelta(previous, current Vector) float64 {
	max := 0.0
	for page := range previous {
		delta := math.Abs(current[page] - previous[page])
		if delta > max {
			max = delta
		}
	}
	return max
}

// probeConverged inspects a single page chosen uniformly at random and
// reports whether that one page moved less than tolerance. A page can pass by
// chance while others are still moving, so iteration may stop early; the
// check exists for compatibility and Converged is the default.
func probeConverged(previous, current Vector, tolerance float64, rng *rand.Rand) bool {
	pages := make([]string, 0, len(previous))
	for page := range previous {
		pages = append(pages, page)
	}
	// Sorted so a seeded source probes the same sequence of pages
	sort.Strings(pages)
	page := pages[rng.Intn(len(pages))]
	return math.Abs(current[page]-previous[page]) <= tolerance
}
