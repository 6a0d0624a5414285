package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jules0707/ai50-projects-2023-x-pagerank/graph"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/rank"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/server"
	"github.com/jules0707/ai50-projects-2023-x-pagerank/utils"
)

var api string // Connection string of the server
var dir string // Corpus directory

func init() {
	flag.StringVar(&api, "api", "http://127.0.0.1:1234", "API Server Connection")
	flag.StringVar(&dir, "dir", "corpus", "Corpus directory")
}

func main() {
	flag.Parse()

	corpus, err := graph.Crawl(dir)
	utils.FailOnError("Could not load corpus", err)

	links := make(map[string][]string, len(corpus))
	for _, page := range corpus.Pages() {
		targets := make([]string, 0, len(corpus[page]))
		for target := range corpus[page] {
			targets = append(targets, target)
		}
		links[page] = targets
	}
	body, err := json.Marshal(server.ComputeRequest{Corpus: links})
	utils.FailOnError("Could not encode corpus", err)

	resp, err := http.Post(api+"/pagerank", "application/json", bytes.NewReader(body))
	utils.FailOnError("Could not reach server", err)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Server error (%d): %s\n", resp.StatusCode, msg)
		os.Exit(1)
	}
	var result server.ComputeResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	utils.FailOnError("Could not decode response", err)

	fmt.Printf("Job %s\n", result.Job)
	rank.Fprint(os.Stdout, fmt.Sprintf("PageRank Results from Sampling (n = %d)", result.Samples), result.Sampling)
	rank.Fprint(os.Stdout, "PageRank Results from Iteration", result.Iteration)
}
