// Released under an MIT license. See LICENSE.

// Package slot provides the storage cell behind each name in a frame.
package slot

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/reference"
)

// T (slot) holds the value bound to one name. Slots are guarded by the
// table that owns them.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot holding the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() reference.I {
	return New(s.c)
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}
