// Released under an MIT license. See LICENSE.

// Package null provides lisa's empty/absent sentinel.
package null

import (
	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
)

const name = "null"

// T (null) has a single value, Value.
type T struct{}

type null = T

// Value is the only null.
var Value cell.I = &null{} //nolint:gochecknoglobals

// Bool returns false. Null is never true.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is null.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Kind returns cell.Null.
func (n *null) Kind() cell.Kind {
	return cell.Null
}

// Literal returns the literal representation of null.
func (n *null) Literal() string {
	return "null"
}

// Name returns the type name for null.
func (n *null) Name() string {
	return name
}

// String returns the text of null.
func (n *null) String() string {
	return n.Literal()
}

// Is returns true if c is null.
func Is(c cell.I) bool {
	_, ok := c.(*null)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
