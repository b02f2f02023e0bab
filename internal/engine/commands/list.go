// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/null"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

func sequence(c cell.I, position string) cell.I {
	return validate.Kind(c, position, cell.Sequence)
}

func callable(c cell.I, position string) cell.I {
	return validate.Kind(c, position, cell.Closure, cell.Operative)
}

// appendTo returns a copy of a sequence with the remaining arguments added
// to the end.
func appendTo(_ *executor.T, args []cell.I) cell.I {
	validate.Variadic(args, 2, 2)

	return list.Append(sequence(args[0], "argument 1 to append"), args[1:]...)
}

// car returns the first element of a sequence, or null if it is empty.
// Given several sequences it returns a sequence of their first elements.
func car(_ *executor.T, args []cell.I) cell.I {
	validate.Variadic(args, 1, 1)

	first := func(c cell.I) cell.I {
		if h, ok := list.Head(sequence(c, "argument to car")); ok {
			return h
		}

		return null.Value
	}

	if len(args) == 1 {
		return first(args[0])
	}

	heads := make([]cell.I, len(args))
	for i, a := range args {
		heads[i] = first(a)
	}

	return list.Of(heads)
}

// cdr returns all but the first element of a sequence, or null if it is empty.
func cdr(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	l := sequence(v[0], "argument to cdr")
	if list.Length(l) == 0 {
		return null.Value
	}

	return list.Slice(l, 1, 0)
}

// cons prepends an element to a sequence: (cons e l). Given more than two
// arguments the sequence comes first and the rest are prepended in order:
// (cons l a b) is (a b . l).
func cons(_ *executor.T, args []cell.I) cell.I {
	validate.Variadic(args, 2, 2)

	if len(args) == 2 {
		return list.Prepend(sequence(args[1], "argument 2 to cons"), args[0])
	}

	return list.Prepend(sequence(args[0], "argument 1 to cons"), args[1:]...)
}

// drop removes n elements from the front of a sequence, or -n from the back.
func drop(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	n := integer.Value(v[0])
	l := sequence(v[1], "argument 2 to drop")

	length := list.Length(l)
	if n > length || -n > length {
		fault.Raise(fault.IndexOutOfBounds, "cannot drop %d of %d elements", n, length)
	}

	if n >= 0 {
		return list.Slice(l, n, 0)
	}

	return list.Slice(l, 0, n)
}

func filter(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	f := callable(v[0], "argument 1 to filter")

	kept := []cell.I{}

	for _, e := range list.To(sequence(v[1], "argument 2 to filter")).Elements() {
		if truth.Value(lazy.Force(x.Call(f, e))) {
			kept = append(kept, e)
		}
	}

	return list.Of(kept)
}

func foldl(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	f := callable(v[0], "argument 1 to foldl")
	acc := v[1]

	for _, e := range list.To(sequence(v[2], "argument 3 to foldl")).Elements() {
		acc = lazy.Force(x.Call(f, acc, e))
	}

	return acc
}

// iota returns the sequence 0 to n-1. Given a sequence of counts it
// returns every combination of indices, in row-major order.
func iota(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if validate.Kind(v[0], "argument to iota", cell.Number, cell.Sequence).Kind() == cell.Number {
		return count(integer.Value(v[0]))
	}

	combinations := [][]cell.I{{}}

	for _, c := range list.To(v[0]).Elements() {
		n := integer.Value(validate.Kind(c, "count passed to iota", cell.Number))

		next := [][]cell.I{}

		for _, prefix := range combinations {
			for i := int64(0); i < n; i++ {
				e := make([]cell.I, len(prefix), len(prefix)+1)
				copy(e, prefix)

				next = append(next, append(e, num.Int(i)))
			}
		}

		combinations = next
	}

	result := make([]cell.I, len(combinations))
	for i, e := range combinations {
		result[i] = list.Of(e)
	}

	return list.Of(result)
}

func makeList(_ *executor.T, args []cell.I) cell.I {
	return list.New(args...)
}

func mapTo(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	f := callable(v[0], "argument 1 to map")
	l := list.To(sequence(v[1], "argument 2 to map")).Elements()

	mapped := make([]cell.I, len(l))
	for i, e := range l {
		mapped[i] = lazy.Force(x.Call(f, e))
	}

	return list.Of(mapped)
}

// nth returns the element of a sequence or the character of text at an index.
func nth(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	i := integer.Value(v[0])
	if i < 0 {
		fault.Raise(fault.IndexOutOfBounds, "negative index %d passed to nth", i)
	}

	if validate.Kind(v[1], "argument 2 to nth", cell.Sequence, cell.Text).Kind() == cell.Text {
		return character(str.To(v[1]).Runes(), i)
	}

	return list.Nth(v[1], i)
}

func reverse(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if validate.Kind(v[0], "argument to reverse", cell.Sequence, cell.Text).Kind() == cell.Sequence {
		return list.Reverse(v[0])
	}

	r := str.To(v[0]).Runes()
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return str.New(string(r))
}

func size(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if validate.Kind(v[0], "argument to size", cell.Sequence, cell.Text).Kind() == cell.Text {
		return num.Int(int64(len(str.To(v[0]).Runes())))
	}

	return num.Int(list.Length(v[0]))
}

// take keeps n elements from the front of a sequence, or -n from the back.
func take(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	n := integer.Value(v[0])
	l := sequence(v[1], "argument 2 to take")

	length := list.Length(l)
	if n > length || -n > length {
		fault.Raise(fault.IndexOutOfBounds, "cannot take %d of %d elements", n, length)
	}

	if n >= 0 {
		return list.Of(list.To(l).Elements()[:n])
	}

	return list.Of(list.To(l).Elements()[length+n:])
}

func count(n int64) cell.I {
	if n < 0 {
		fault.Raise(fault.IndexOutOfBounds, "negative count %d", n)
	}

	c := make([]cell.I, n)
	for i := range c {
		c[i] = num.Int(int64(i))
	}

	return list.Of(c)
}
