package main

import (
	"fmt"
	"io"

	"ghsieve/searcher"
)

// summaryLimit caps how many hits the post-run summary prints.
const summaryLimit = 5

// printSummary reports the run outcome and the first few hits.
func printSummary(w io.Writer, items []searcher.Item, path string) {
	fmt.Fprintf(w, "Search finished: %d result(s)\n", len(items))
	fmt.Fprintf(w, "Results saved to %s\n\n", path)

	shown := len(items)
	if shown > summaryLimit {
		shown = summaryLimit
	}
	fmt.Fprintf(w, "First %d result(s):\n", shown)

	for i, item := range items[:shown] {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(w, "   type: %s\n", item.Kind)
		fmt.Fprintf(w, "   url: %s\n", item.URL)
		fmt.Fprintf(w, "   repository: %s\n\n", item.Repository)
	}
}
