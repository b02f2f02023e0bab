// Released under an MIT license. See LICENSE.

// Package integer converts a lisa cell to an int64 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/rational"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) int64 {
	r, isRational := c.(rational.I)
	if !isRational {
		fault.Raise(fault.TypeMismatch, "%s cannot be converted to an integer value", c.Name())
	}

	br := r.Rat()
	if br.IsInt() {
		bi := br.Num()
		if bi.IsInt64() {
			return bi.Int64()
		}
	}

	fault.Raise(fault.TypeMismatch, "%s does not have an integer value", br.RatString())

	return 0
}
