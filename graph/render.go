package graph

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render draws the link graph to a PNG file at path. When ranks is not nil,
// every node is labeled with its rank to 4 decimal places.
func Render(g Graph, ranks map[string]float64, path string) error {
	gv := graphviz.New()
	viz, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("could not create graphviz graph: %v", err)
	}
	defer func() {
		viz.Close()
		gv.Close()
	}()

	nodes := make(map[string]*cgraph.Node, len(g))
	for _, page := range g.Pages() {
		node, err := viz.CreateNode(page)
		if err != nil {
			return fmt.Errorf("could not create node %s: %v", page, err)
		}
		if ranks != nil {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, ranks[page]))
		}
		nodes[page] = node
	}
	for _, page := range g.Pages() {
		for target := range g[page] {
			if _, err := viz.CreateEdge("", nodes[page], nodes[target]); err != nil {
				return fmt.Errorf("could not create edge %s -> %s: %v", page, target, err)
			}
		}
	}
	if err := gv.RenderFilename(viz, graphviz.PNG, path); err != nil {
		return fmt.Errorf("could not render graph to %s: %v", path, err)
	}
	return nil
}
