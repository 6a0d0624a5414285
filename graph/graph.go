package graph

import (
	"fmt"
	"sort"
)

// Set holds the outbound link targets of a single page.
type Set map[string]bool

// Graph maps every page in the corpus to the set of pages it links to.
// A Graph is built once and never mutated afterwards.
type Graph map[string]Set

// New builds a Graph from raw page -> outbound links data.
// Self-links are removed and links pointing outside the corpus are dropped,
// so every remaining target is itself a key of the graph.
func New(links map[string][]string) Graph {
	g := make(Graph, len(links))
	for page := range links {
		g[page] = make(Set)
	}
	for page, targets := range links {
		for _, target := range targets {
			// Link to itself -> skip
			if target == page {
				continue
			}
			// Link to a page outside the corpus -> skip
			if _, ok := g[target]; !ok {
				continue
			}
			g[page][target] = true
		}
	}
	return g
}

// Pages returns every page identifier in the corpus, sorted.
func (g Graph) Pages() []string {
	pages := make([]string, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// IsSink reports whether page has no outbound links.
func (g Graph) IsSink(page string) bool {
	return len(g[page]) == 0
}

func (g Graph) String() string {
	var s string
	for _, page := range g.Pages() {
		s += fmt.Sprintf("%s ->", page)
		targets := make([]string, 0, len(g[page]))
		for target := range g[page] {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			s += fmt.Sprintf(" %s", target)
		}
		s += "\n"
	}
	return s
}
