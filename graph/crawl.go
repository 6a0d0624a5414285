package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Crawl parses a directory of HTML pages and builds the link graph of the
// corpus. Every file ending in .html is a page, identified by its file name.
// Anchor targets that are not pages of the corpus are dropped, as are links
// from a page to itself.
func Crawl(dir string) (Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %v", dir, err)
	}
	links := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		file, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read page %s: %v", entry.Name(), err)
		}
		doc, err := html.Parse(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("could not parse page %s: %v", entry.Name(), err)
		}
		links[entry.Name()] = extractLinks(doc)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("no HTML pages found in %s", dir)
	}
	return New(links), nil
}

// extractLinks walks the parsed document and collects anchor href targets.
func extractLinks(doc *html.Node) []string {
	var targets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					targets = append(targets, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return targets
}
