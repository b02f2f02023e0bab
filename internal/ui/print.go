// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/type/grid"
	"github.com/michaelmacinnis/lisa/internal/system/terminal"
)

// Print writes the literal representation of c to w. A grid is laid out
// as a table, one row per line, when every row fits in width columns.
func Print(w io.Writer, c cell.I, width int) {
	if grid.Is(c) {
		lines := table(grid.To(c).Table())
		if len(lines) > 0 && terminal.Fits(width, lines...) {
			fmt.Fprintln(w, strings.Join(lines, "\n"))

			return
		}
	}

	fmt.Fprintln(w, literal.String(c))
}

func table(rows [][]string) []string {
	widths := []int{}

	for _, r := range rows {
		for i, s := range r {
			if i == len(widths) {
				widths = append(widths, 0)
			}

			if n := terminal.StringWidth(s); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, len(rows))

	for i, r := range rows {
		padded := make([]string, len(r))
		for j, s := range r {
			padded[j] = terminal.Pad(s, widths[j])
		}

		lines[i] = strings.TrimRight(strings.Join(padded, " "), " ")
	}

	return lines
}
