// Released under an MIT license. See LICENSE.

// Package literal defines the interface for lisa types that can be printed.
package literal

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

// I (literal) is any type that has a printed representation.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return "<nil>"
	}

	l, ok := c.(I)
	if !ok {
		fault.Raise(fault.TypeMismatch, "%s does not have a literal representation", c.Name())
	}

	return l.Literal()
}
