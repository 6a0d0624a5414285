package rank

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
)

// Options configures the iterative estimator.
type Options struct {
	Tolerance     float64    // convergence threshold; DefaultTolerance when <= 0
	MaxIterations int        // safety bound; DefaultMaxIterations when <= 0
	Probe         bool       // check one random page per pass instead of all pages
	Rand          *rand.Rand // used by the probe check; time-seeded when nil
}

// DefaultOptions returns the all-pages convergence check with
// tolerance 1e-3 and a bound of 10000 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Iterate estimates PageRank values by relaxing the PageRank equations until
// the convergence check passes. Every page starts at 1/N; each pass computes
//
//	new[p] = (1-damping)/N + damping * sum of current[k]/outdegree(k)
//
// over the pages k linking to p, with sinks contributing current[k]/N to
// every page. The result sums to 1 within the convergence tolerance.
//
// Returns ErrNoConvergence if the fixed point is not reached within
// opts.MaxIterations passes.
func Iterate(g graph.Graph, damping float64, opts Options) (Vector, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Probe && opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := float64(len(g))
	current := make(Vector, len(g))
	for p := range g {
		current[p] = 1 / n
	}
	for i := 0; i < opts.MaxIterations; i++ {
		next := Relax(g, damping, current)
		done := false
		if opts.Probe {
			done = probeConverged(current, next, opts.Tolerance, opts.Rand)
		} else {
			done = Converged(current, next, opts.Tolerance)
		}
		if done {
			return next, nil
		}
		current = next
	}
	return nil, fmt.Errorf("no fixed point after %d iterations: %w", opts.MaxIterations, ErrNoConvergence)
}

// Relax applies one pass of the PageRank equations to current.
func Relax(g graph.Graph, damping float64, current Vector) Vector {
	n := float64(len(g))
	next := make(Vector, len(g))
	base := (1 - damping) / n
	for p := range g {
		next[p] = base
	}
	for k, links := range g {
		if len(links) == 0 {
			// A sink spreads its rank over every page, itself included
			share := damping * current[k] / n
			for p := range g {
				next[p] += share
			}
			continue
		}
		share := damping * current[k] / float64(len(links))
		for target := range links {
			next[target] += share
		}
	}
	return next
}
