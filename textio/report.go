package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/paths"
)

const (
	reportTitle = "Pathfinding Algorithm Comparison Results"
	noPath      = "No path found"
)

// WriteReport writes the comparison report for results, one block per
// result in the given order:
//
//	Algorithm: Dijkstra
//	Path: Pune -> Mumbai -> Nashik
//	Total Distance: 315.00 km
//	Total Time: 6.50 hours
func WriteReport(w io.Writer, results ...paths.Result) error {
	bw := bufio.NewWriter(w)
	writeTitle(bw)
	for _, res := range results {
		writeResult(bw, res)
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write report: %w", err)
	}

	return nil
}

// WriteComparison writes cmp as a report prefixed with the run ID and the
// query endpoints. Each block carries the algorithm's elapsed time and, for
// the shortest found paths, a "Best: distance, time" line. The report ends
// with the total comparison time.
func WriteComparison(w io.Writer, cmp analysis.Comparison) error {
	bw := bufio.NewWriter(w)
	writeTitle(bw)
	fmt.Fprintf(bw, "Run: %s\n", cmp.ID)
	fmt.Fprintf(bw, "Query: %s -> %s\n\n", cmp.Source, cmp.Destination)
	for _, e := range cmp.Entries {
		writeResult(bw, e.Result)
		if best := bestLabel(e); best != "" {
			fmt.Fprintf(bw, "Best: %s\n", best)
		}
		fmt.Fprintf(bw, "Elapsed: %s\n\n", e.Elapsed)
	}
	fmt.Fprintf(bw, "Total comparison time: %s\n", cmp.Total())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write comparison: %w", err)
	}

	return nil
}

// FormatPath renders nodes as "A -> B -> C", or "No path found" when empty.
func FormatPath(nodes []string) string {
	if len(nodes) == 0 {
		return noPath
	}

	return strings.Join(nodes, " -> ")
}

func bestLabel(e analysis.Entry) string {
	switch {
	case e.BestDistance && e.BestTime:
		return "distance, time"
	case e.BestDistance:
		return "distance"
	case e.BestTime:
		return "time"
	}

	return ""
}

func writeTitle(w io.Writer) {
	fmt.Fprintln(w, reportTitle)
	fmt.Fprintln(w, strings.Repeat("=", len(reportTitle)))
	fmt.Fprintln(w)
}

func writeResult(w io.Writer, res paths.Result) {
	fmt.Fprintf(w, "Algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(w, "Path: %s\n", FormatPath(res.Nodes))
	fmt.Fprintf(w, "Total Distance: %.2f km\n", res.Distance)
	fmt.Fprintf(w, "Total Time: %.2f hours\n", res.Time)
}
