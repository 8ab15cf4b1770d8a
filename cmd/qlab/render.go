package main

import (
	"fmt"
	"sort"
	"strings"

	"qsimlab/qsim"
)

const histogramWidth = 32

type countEntry struct {
	state string
	count int
}

// sortedEntries orders outcomes most frequent first, ties lexicographic.
func sortedEntries(counts qsim.Counts) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for state, count := range counts {
		entries = append(entries, countEntry{state, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].state < entries[j].state
	})
	return entries
}

// printCounts writes a shot histogram, most common outcome first.
func printCounts(counts qsim.Counts) {
	entries := sortedEntries(counts)
	total := counts.Total()
	for _, e := range entries {
		prob := float64(e.count) / float64(total)
		bar := strings.Repeat("█", int(prob*histogramWidth+0.5))
		fmt.Printf("  %s  %5d / %d  %.3f  %s\n", e.state, e.count, total, prob, bar)
	}
}

// probabilityBar renders a 0..1 value as a fixed-width bar.
func probabilityBar(p float64, width int) string {
	filled := int(p*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
