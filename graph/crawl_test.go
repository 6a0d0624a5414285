package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func writePage(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
		t.Fatalf("could not write page %s: %v", name, err)
	}
}

func TestCrawl(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "1.html", `<html><body>
		<a href="2.html">two</a>
		<a href="3.html">three</a>
		<a href="1.html">self</a>
	</body></html>`)
	writePage(t, dir, "2.html", `<html><body><a href="3.html">three</a></body></html>`)
	writePage(t, dir, "3.html", `<html><body><a href="https://example.com">out</a></body></html>`)
	writePage(t, dir, "notes.txt", "not a page")

	g, err := Crawl(dir)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}
	if len(g) != 3 {
		t.Fatalf("expected 3 pages, got %d: %v", len(g), g.Pages())
	}
	if !g["1.html"]["2.html"] || !g["1.html"]["3.html"] {
		t.Errorf("expected 1.html to link to 2.html and 3.html, got %v", g["1.html"])
	}
	if g["1.html"]["1.html"] {
		t.Errorf("expected self-link of 1.html to be dropped")
	}
	if !g.IsSink("3.html") {
		t.Errorf("expected 3.html to be a sink after dropping the external link, got %v", g["3.html"])
	}
}

func TestCrawlAttributeOrder(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "1.html", `<html><body>
		<a class="nav" id="first" href="2.html">two</a>
	</body></html>`)
	writePage(t, dir, "2.html", `<html></html>`)

	g, err := Crawl(dir)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}
	if !g["1.html"]["2.html"] {
		t.Errorf("expected href to be found among other attributes, got %v", g["1.html"])
	}
}

func TestCrawlMissingDirectory(t *testing.T) {
	if _, err := Crawl(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("expected an error for a missing directory")
	}
}

func TestCrawlEmptyDirectory(t *testing.T) {
	if _, err := Crawl(t.TempDir()); err == nil {
		t.Errorf("expected an error for a directory without HTML pages")
	}
}
