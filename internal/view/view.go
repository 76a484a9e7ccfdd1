// Package view renders a window of file lines around a cursor line, the
// display surface shared by open, goto, scroll, print and the edit
// verifier's accept/reject reports.
package view

import (
	"fmt"
	"strings"
)

// DefaultWindow is the number of lines shown when the session has no
// explicit window size.
const DefaultWindow = 100

// Clamp bounds a cursor line into [1, docLen]. An empty document clamps
// to line 1.
func Clamp(line, docLen int) int {
	if docLen < 1 {
		return 1
	}
	if line < 1 {
		return 1
	}
	if line > docLen {
		return docLen
	}
	return line
}

// Center returns the cursor line that centres a window on the inclusive
// span [start, end].
func Center(start, end int) int {
	if end < start {
		end = start
	}
	return start + (end-start)/2
}

// Render produces the text window around cursor: a header with the path
// and total line count, elided-line markers, and the numbered body.
func Render(path string, lines []string, cursor, window int) string {
	if window < 1 {
		window = DefaultWindow
	}
	total := len(lines)
	cursor = Clamp(cursor, total)

	start := cursor - window/2
	if start < 1 {
		start = 1
	}
	end := start + window - 1
	if end > total {
		end = total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[File: %s (%d lines total)]\n", path, total)
	if start > 1 {
		fmt.Fprintf(&b, "(%d more lines above)\n", start-1)
	}
	for i := start; i <= end; i++ {
		fmt.Fprintf(&b, "%d:%s\n", i, lines[i-1])
	}
	if end < total {
		fmt.Fprintf(&b, "(%d more lines below)\n", total-end)
	}
	return b.String()
}
