package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnWidth returns the display width a table column needs to fit its
// title plus every entry. The title is a required argument, so the maximum
// is always taken over a non-empty candidate set.
func ColumnWidth(title string, entries ...string) int {
	w := runewidth.StringWidth(title)
	for _, entry := range entries {
		if ew := runewidth.StringWidth(entry); ew > w {
			w = ew
		}
	}
	return w
}

// Pad left-aligns s inside a cell of the given display width.
func Pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
