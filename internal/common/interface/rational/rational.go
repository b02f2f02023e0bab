// Released under an MIT license. See LICENSE.

// Package rational defines the interface for lisa's real numeric type.
package rational

import (
	"math/big"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

// I (rational) is anything that can be treated as an exact real number.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for a cell, if possible.
func Number(c cell.I) *big.Rat {
	r, ok := c.(rational)
	if !ok {
		fault.Raise(fault.TypeMismatch, "%s cannot be used in a numeric context", c.Name())
	}

	return r.Rat()
}
