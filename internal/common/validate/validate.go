// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

func Variadic(actual []cell.I, min, max int) ([]cell.I, []cell.I) {
	n := len(actual)
	if n < min {
		s := Count(min, "argument", "s")
		fault.Raise(fault.ArityError, "expected %s, passed %d", s, n)
	}

	if n > max {
		n = max
	}

	return actual[:n], actual[n:]
}

func Fixed(actual []cell.I, min, max int) []cell.I {
	expected, rest := Variadic(actual, min, max)
	if len(rest) > 0 {
		s := Count(max, "argument", "s")
		fault.Raise(fault.ArityError, "expected %s, passed %d", s, len(actual))
	}

	return expected
}

func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Kind raises a TypeMismatch unless c is one of kinds.
// The position describes where c came from ("argument 1 to car").
func Kind(c cell.I, position string, kinds ...cell.Kind) cell.I {
	k := c.Kind()
	for _, expected := range kinds {
		if k == expected {
			return c
		}
	}

	names := make([]string, len(kinds))
	for i, expected := range kinds {
		names[i] = expected.String()
	}

	fault.Raise(
		fault.TypeMismatch, "%s: expected %s, got %s",
		position, strings.Join(names, " or "), k,
	)

	return nil
}
