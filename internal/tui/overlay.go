package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg on top of bg with its top-left corner at column x, row y.
// Background lines that are too short are padded with spaces and missing
// rows are appended.
func overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	x = max(x, 0)
	y = max(y, 0)

	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		base := bgLines[row]
		baseWidth := ansi.StringWidth(base)

		left := ansi.Truncate(base, x, "")
		if baseWidth < x {
			left += strings.Repeat(" ", x-baseWidth)
		}

		var right string
		if end := x + ansi.StringWidth(line); baseWidth > end {
			right = ansi.TruncateLeft(base, end, "")
		}

		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
