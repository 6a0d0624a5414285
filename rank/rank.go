// Package rank estimates PageRank values for the pages of a closed corpus,
// either by sampling a random-surfer walk or by iterating the PageRank
// equations to a fixed point.
package rank

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
)

const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultTolerance     = 1e-3
	DefaultMaxIterations = 10000
)

var (
	// ErrInvalidInput marks malformed parameters (empty graph, out-of-range
	// damping factor, non-positive sample count, unknown page).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoConvergence marks an iteration that hit its safety bound before
	// reaching a fixed point.
	ErrNoConvergence = errors.New("no convergence")
)

// Vector maps every page of the corpus to a probability-like value.
// Both transition distributions and rank estimates use this shape.
type Vector map[string]float64

// Sum returns the total probability mass of the vector.
func (v Vector) Sum() float64 {
	total := 0.0
	for _, value := range v {
		total += value
	}
	return total
}

// Fprint writes the vector to w sorted by page identifier,
// one page per line, ranks to 4 decimal places.
func Fprint(w io.Writer, title string, v Vector) {
	fmt.Fprintln(w, title)
	pages := make([]string, 0, len(v))
	for page := range v {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	for _, page := range pages {
		fmt.Fprintf(w, "  %s: %.4f\n", page, v[page])
	}
}

func validate(g graph.Graph, damping float64) error {
	if len(g) == 0 {
		return fmt.Errorf("empty graph: %w", ErrInvalidInput)
	}
	if damping < 0 || damping > 1 {
		return fmt.Errorf("damping factor %f outside [0, 1]: %w", damping, ErrInvalidInput)
	}
	return nil
}
