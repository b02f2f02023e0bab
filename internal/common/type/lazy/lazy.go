// Released under an MIT license. See LICENSE.

// Package lazy provides lisa's deferred cell.
//
// A deferred cell is a computation that yields a value when forced. Forcing
// is not memoized: every force runs the computation again (call-by-name).
package lazy

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
)

const name = "deferred"

// Thunk is a zero argument computation.
type Thunk func() cell.I

// T (lazy) holds a thunk.
type T struct {
	thunk Thunk
}

type lazy = T

// New creates a deferred cell for the computation fn.
func New(fn Thunk) cell.I {
	return &lazy{thunk: fn}
}

// Equal forces the deferred cell l and compares the result with c.
func (l *lazy) Equal(c cell.I) bool {
	return Force(l).Equal(Force(c))
}

// Kind returns cell.Deferred.
func (l *lazy) Kind() cell.Kind {
	return cell.Deferred
}

// Literal forces the deferred cell l and returns the result's representation.
func (l *lazy) Literal() string {
	return literal.String(Force(l))
}

// Name returns the type name for a deferred cell.
func (l *lazy) Name() string {
	return name
}

// Force runs deferred computations until c is a resolved value.
func Force(c cell.I) cell.I {
	for {
		l, ok := c.(*lazy)
		if !ok {
			return c
		}

		c = l.thunk()
	}
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*lazy)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *lazy {
	if t, ok := c.(*lazy); ok {
		return t
	}

	panic("not a " + name + " cell")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t lazy

	// The lazy type is a cell.
	_ = cell.I(&t)

	// The lazy type has a literal representation.
	_ = literal.I(&t)
}
