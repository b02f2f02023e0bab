// Released under an MIT license. See LICENSE.

// Package env provides lisa's lexical environment frames.
package env

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/reference"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/struct/hash"
)

// T (env) is a frame: a table of bindings, a link to the enclosing frame
// and the callable, if any, that captured the frame as its scope.
type T struct {
	*hash.T
	label    string
	owner    cell.I
	previous *env
}

type env = T

// New creates a new env with previous as its ancestor.
// A nil previous creates a root frame.
func New(label string, previous *env) *env {
	return &env{
		T:        hash.New(),
		label:    label,
		previous: previous,
	}
}

// Ancestor returns the enclosing frame or nil for the root.
func (e *env) Ancestor() *env {
	return e.previous
}

// Climb returns the frame n links above e.
func (e *env) Climb(n int64) *env {
	if n < 0 {
		fault.Raise(fault.IndexOutOfBounds, "cannot climb %d frames", n)
	}

	f := e
	for i := int64(0); i < n; i++ {
		if f.previous == nil {
			fault.Raise(fault.IndexOutOfBounds, "%d frames requested, %d available", n, i)
		}

		f = f.previous
	}

	return f
}

// Clone creates a frame with the same ancestor, owner and label as e and a
// copy of its bindings.
func (e *env) Clone() *env {
	return &env{
		T:        e.Copy(),
		label:    e.label,
		owner:    e.owner,
		previous: e.previous,
	}
}

// Descendant creates a new frame enclosed by e.
func (e *env) Descendant(label string) *env {
	return New(label, e)
}

// IsRoot returns true if e has no ancestor.
func (e *env) IsRoot() bool {
	return e.previous == nil
}

// Label returns the descriptive label given to e when it was created.
func (e *env) Label() string {
	return e.label
}

// Lookup retrieves the reference associated with the name k in e or the
// nearest ancestor that binds it. It returns nil if k is unbound.
func (e *env) Lookup(k string) reference.I {
	for f := e; f != nil; f = f.previous {
		if r := f.Get(k); r != nil {
			return r
		}
	}

	return nil
}

// Owner returns the callable that captured e, or nil.
func (e *env) Owner() cell.I {
	return e.owner
}

// Push binds the name k to the value v in e, replacing any existing binding.
func (e *env) Push(k string, v cell.I) {
	e.Set(k, v)
}

// SetOwner records c as the callable that captured e.
func (e *env) SetOwner(c cell.I) {
	e.owner = c
}

// TopmostAncestor returns the root frame above e.
func (e *env) TopmostAncestor() *env {
	f := e
	for f.previous != nil {
		f = f.previous
	}

	return f
}
