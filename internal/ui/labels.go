// Package ui draws the on-screen controls and diagnostics around the board.
package ui

import (
	"fmt"
	"strings"
)

var helpEntries = []string{
	"Space: Play/Pause",
	"S: Single Step",
	"R: Reset Board",
}

const randomHelp = "F: Fill Random"

// HelpRows returns the key help text, two entries per row.
func HelpRows(random bool) []string {
	entries := append([]string(nil), helpEntries...)
	if random {
		entries = append(entries, randomHelp)
	}
	var rows []string
	for i := 0; i < len(entries); i += 2 {
		end := min(i+2, len(entries))
		rows = append(rows, strings.Join(entries[i:end], "  "))
	}
	return rows
}

// FPSLabel formats the frame-rate diagnostic.
func FPSLabel(fps float64) string {
	return fmt.Sprintf("FPS: %.0f", fps)
}

// MouseLabel formats the pointer-position diagnostic.
func MouseLabel(x, y int) string {
	return fmt.Sprintf("Mouse: (%d, %d)", x, y)
}
