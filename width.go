package vtscreen

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// runeCells classifies a rune by the number of columns it occupies:
// 0 for combining/zero-width marks, 1 for narrow, 2 for wide (CJK, most
// emoji). Total over all runes; never errors.
func runeCells(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns a string occupies, measured
// per grapheme cluster rather than per rune, so combined sequences and
// emoji ZWJ sequences are counted the way they render.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
