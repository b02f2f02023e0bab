// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		fault.Raise(fault.TypeMismatch, "%s cannot be used in a string context", c.Name())
	}

	return b.String()
}
