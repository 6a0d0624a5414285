package graph

import (
	"reflect"
	"testing"
)

func TestNewDropsSelfLinks(t *testing.T) {
	g := New(map[string][]string{
		"A": {"A", "B"},
		"B": {"B"},
	})
	if g["A"]["A"] {
		t.Errorf("expected self-link of A to be dropped")
	}
	if !g["A"]["B"] {
		t.Errorf("expected link A -> B to survive")
	}
	if len(g["B"]) != 0 {
		t.Errorf("expected B to become a sink, got %v", g["B"])
	}
}

func TestNewDropsExternalLinks(t *testing.T) {
	g := New(map[string][]string{
		"A": {"B", "https://example.com", "missing.html"},
		"B": {"A"},
	})
	if len(g["A"]) != 1 || !g["A"]["B"] {
		t.Errorf("expected A to keep only the in-corpus link, got %v", g["A"])
	}
}

func TestPagesSorted(t *testing.T) {
	g := New(map[string][]string{
		"c.html": {},
		"a.html": {},
		"b.html": {},
	})
	want := []string{"a.html", "b.html", "c.html"}
	if got := g.Pages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pages() = %v, want %v", got, want)
	}
}

func TestIsSink(t *testing.T) {
	g := New(map[string][]string{
		"A": {},
		"B": {"A"},
	})
	if !g.IsSink("A") {
		t.Errorf("expected A to be a sink")
	}
	if g.IsSink("B") {
		t.Errorf("did not expect B to be a sink")
	}
}
