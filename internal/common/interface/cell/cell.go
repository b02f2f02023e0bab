// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lisa types.
package cell

import "strconv"

// I (cell) is the basic unit of storage in lisa. Code and data are both cells.
type I interface {
	Equal(c I) bool
	Kind() Kind
	Name() string
}

// Kind identifies which of lisa's closed set of value types a cell is.
// Consumers switch over every Kind and treat anything else as a bug.
type Kind int

// The kinds of cell.
const (
	Number Kind = iota
	Complex
	Symbol
	Text
	Sequence
	Grid
	Closure
	Operative
	Null
	Deferred
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Complex:
		return "complex"
	case Symbol:
		return "symbol"
	case Text:
		return "text"
	case Sequence:
		return "sequence"
	case Grid:
		return "grid"
	case Closure:
		return "closure"
	case Operative:
		return "operative"
	case Null:
		return "null"
	case Deferred:
		return "deferred"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Unreachable panics to report a kind that a consumer does not handle.
func Unreachable(c I) {
	panic("unhandled kind: " + c.Kind().String())
}
