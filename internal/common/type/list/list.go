// Released under an MIT license. See LICENSE.

// Package list provides lisa's sequence type. The same sequence is a list
// value and, when evaluated, a form whose head names the callable.
package list

import (
	"strings"

	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

const name = "sequence"

// T (list) is an immutable sequence of cells.
type T struct {
	elements []cell.I
}

type list = T

// Empty is the empty sequence. The reader produces it for nil.
var Empty cell.I = &list{} //nolint:gochecknoglobals

// New creates a new list composed of all of the elements in elements.
// The slice is copied.
func New(elements ...cell.I) cell.I {
	return Of(append([]cell.I(nil), elements...))
}

// Of wraps elements as a list without copying. The caller must not modify
// elements afterwards.
func Of(elements []cell.I) cell.I {
	if len(elements) == 0 {
		return Empty
	}

	return &list{elements: elements}
}

// Bool returns the boolean value of the list l. Non-empty lists are true.
func (l *list) Bool() bool {
	return len(l.elements) != 0
}

// Elements returns the elements of l. The slice must not be modified.
func (l *list) Elements() []cell.I {
	return l.elements
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c).elements
	if len(o) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(o[i]) {
			return false
		}
	}

	return true
}

// Kind returns cell.Sequence.
func (l *list) Kind() cell.Kind {
	return cell.Sequence
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = literal.String(e)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Functions specific to list.

// Append creates a new list with elements added to the end of start.
func Append(start cell.I, elements ...cell.I) cell.I {
	s := To(start).elements

	joined := make([]cell.I, 0, len(s)+len(elements))
	joined = append(joined, s...)
	joined = append(joined, elements...)

	return Of(joined)
}

// Head returns the first element of c, if c is a non-empty list.
func Head(c cell.I) (cell.I, bool) {
	if !Is(c) {
		return nil, false
	}

	e := To(c).elements
	if len(e) == 0 {
		return nil, false
	}

	return e[0], true
}

// Join creates a new list with every element from every list in lists.
func Join(lists ...cell.I) cell.I {
	var joined []cell.I

	for _, l := range lists {
		joined = append(joined, To(l).elements...)
	}

	return Of(joined)
}

// Length returns the number of elements in the list c.
func Length(c cell.I) int64 {
	return int64(len(To(c).elements))
}

// Nth returns element index of the list c.
// Negative values of index count backwards from the end of the list.
func Nth(c cell.I, index int64) cell.I {
	e := To(c).elements

	return e[check(index, int64(len(e)))]
}

// Prepend creates a new list with elements in front of the list c.
func Prepend(c cell.I, elements ...cell.I) cell.I {
	return Join(New(elements...), c)
}

// Reverse creates a reversed copy of the list c.
func Reverse(c cell.I) cell.I {
	e := To(c).elements
	reversed := make([]cell.I, len(e))

	for i, v := range e {
		reversed[len(e)-1-i] = v
	}

	return Of(reversed)
}

// Slice creates a new list that is a slice of the list c.
// Negative values of start or end count backwards from the end of the list.
// An end of zero or less is relative to the length.
// Start and end past the length are clamped to the length.
func Slice(c cell.I, start, end int64) cell.I {
	e := To(c).elements
	length := int64(len(e))

	if start < 0 {
		start = length + start
	}

	if start < 0 {
		fault.Raise(fault.IndexOutOfBounds, "slice starts before first element")
	} else if start > length {
		start = length
	}

	if end <= 0 {
		end = length + end
	}

	if end < 0 {
		fault.Raise(fault.IndexOutOfBounds, "slice ends before first element")
	} else if end > length {
		end = length
	}

	if end < start {
		fault.Raise(fault.IndexOutOfBounds, "end of slice before start")
	}

	return New(e[start:end]...)
}

func check(index, length int64) int64 {
	if index < 0 {
		index = length + index
	}

	if index < 0 {
		fault.Raise(fault.IndexOutOfBounds, "index before first element")
	} else if index >= length {
		fault.Raise(fault.IndexOutOfBounds, "index after last element")
	}

	return index
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)

	// The list type has a truth value.
	_ = truth.I(&t)
}
