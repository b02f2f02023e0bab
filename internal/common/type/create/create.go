// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating lisa types.
package create

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
)

// Bool returns the lisa value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return num.One
	}

	return num.Zero
}
