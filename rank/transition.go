package rank

import (
	"fmt"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
)

// Transition returns the probability distribution over which page a random
// surfer on page visits next. With probability damping the surfer follows one
// of the page's outbound links; with probability 1-damping it jumps to a page
// chosen uniformly from the whole corpus. A sink page behaves as if it linked
// to every page, itself included, so its distribution is uniform.
//
// The returned distribution sums to 1 within floating-point tolerance.
func Transition(g graph.Graph, page string, damping float64) (Vector, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if _, ok := g[page]; !ok {
		return nil, fmt.Errorf("page %s is not in the corpus: %w", page, ErrInvalidInput)
	}

	n := float64(len(g))
	dist := make(Vector, len(g))

	// Sink -> uniform over the whole corpus
	if g.IsSink(page) {
		for p := range g {
			dist[p] = 1 / n
		}
		return dist, nil
	}

	// Random jump term for every page, link-follow term on top for targets
	base := (1 - damping) / n
	for p := range g {
		dist[p] = base
	}
	follow := damping / float64(len(g[page]))
	for target := range g[page] {
		dist[target] += follow
	}
	return dist, nil
}
