package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/cubic-hopper/internal/storage"
)

// printSessionSummary prints the aggregated runs and the top five.
func printSessionSummary(w io.Writer, ledger *storage.Ledger) {
	st, err := ledger.Stats()
	if err != nil {
		fmt.Fprintf(w, "Warning: %v\n", err)
		return
	}
	if st.Runs == 0 {
		fmt.Fprintln(w, "No finished runs this session.")
		return
	}

	fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.1f  Farthest: %.0f\n",
		st.Runs, st.Best, st.AvgScore, st.MaxDistance)

	top, err := ledger.TopRuns(5)
	if err != nil {
		fmt.Fprintf(w, "Warning: %v\n", err)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-6s  %s\n", "Rank", "Score", "Distance", "Zone", "Difficulty")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "--------", "----", "----------")
	for i, r := range top {
		fmt.Fprintf(w, "  %-4d  %-6d  %-8.0f  %-6s  %s\n", i+1, r.Score, r.Distance, r.Zone, r.Difficulty)
	}
}
