// Released under an MIT license. See LICENSE.

// Package terminal reports properties of the terminal lisa is attached to.
package terminal

import (
	"github.com/mattn/go-runewidth"
)

// Fits returns true if every line fits in width columns. A width of zero
// or less is treated as unknown and nothing fits.
func Fits(width int, lines ...string) bool {
	if width <= 0 {
		return false
	}

	for _, l := range lines {
		if runewidth.StringWidth(l) > width {
			return false
		}
	}

	return true
}

// Pad right-pads s with spaces to width columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// StringWidth returns the number of columns needed to display s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
