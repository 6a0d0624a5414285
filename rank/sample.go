package rank

import (
	"fmt"
	"math/rand"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
)

// Sample estimates PageRank values by walking the corpus for n steps.
// The walk starts on a page chosen uniformly at random; each step draws the
// next page from the transition distribution of the current one. A page's
// estimate is the fraction of the n draws that landed on it, so the result
// sums to exactly 1.
//
// The random source is explicit so callers can seed it for reproducible runs.
func Sample(g graph.Graph, damping float64, n int, rng *rand.Rand) (Vector, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("sample count %d must be at least 1: %w", n, ErrInvalidInput)
	}

	pages := g.Pages()
	counts := make(map[string]int, len(pages))
	page := pages[rng.Intn(len(pages))]
	for i := 0; i < n; i++ {
		dist, err := Transition(g, page, damping)
		if err != nil {
			return nil, err
		}
		page = draw(dist, pages, rng)
		counts[page]++
	}

	ranks := make(Vector, len(pages))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / float64(n)
	}
	return ranks, nil
}

// draw picks a page according to dist. Accumulating over the sorted page list
// keeps draws reproducible for a fixed random source.
func draw(dist Vector, pages []string, rng *rand.Rand) string {
	x := rng.Float64()
	acc := 0.0
	for _, p := range pages {
		acc += dist[p]
		if x < acc {
			return p
		}
	}
	// x landed in the rounding error past the last accumulated value
	return pages[len(pages)-1]
}
