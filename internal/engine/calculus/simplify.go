// Released under an MIT license. See LICENSE.

package calculus

import (
	"math/big"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/cpx"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

// MaxSimplify applies Simplify to expr until it stops changing.
func MaxSimplify(x *executor.T, expr cell.I) cell.I {
	for {
		next := Simplify(x, expr)
		if next.Equal(expr) {
			return next
		}

		expr = next
	}
}

// Simplify makes one rewriting pass over expr. Arithmetic on constants is
// folded by evaluating it with x.
func Simplify(x *executor.T, expr cell.I) cell.I {
	if expr.Kind() != cell.Sequence {
		return expr
	}

	elements := list.To(expr).Elements()
	if len(elements) == 0 {
		fault.Raise(fault.UnsupportedDerivative, "simplification of an empty sequence")
	}

	head := sym.To(validate.Kind(elements[0], "head of simplified form", cell.Symbol)).String()
	args := elements[1:]

	switch head {
	case "+", "-", "*":
		if constant(args) {
			return lazy.Force(x.Evaluate(expr))
		}
	}

	if len(args) == 2 {
		a, b := args[0], args[1]

		switch head {
		case "+":
			if is(a, 0) {
				return b
			}

			if is(b, 0) {
				return a
			}

		case "-":
			if is(a, 1) {
				return list.New(elements[0], b)
			}

			if is(b, 1) {
				return a
			}

		case "*":
			if is(a, 0) || is(b, 0) {
				return num.Zero
			}

			if is(a, 1) {
				return b
			}

			if is(b, 1) {
				return a
			}

		case "**":
			if is(b, 1) {
				return a
			}
		}
	}

	simplified := make([]cell.I, len(elements))
	for i, e := range elements {
		simplified[i] = Simplify(x, e)
	}

	return list.Of(simplified)
}

// constant returns true for one or two arguments that are all numbers.
func constant(args []cell.I) bool {
	if len(args) != 1 && len(args) != 2 {
		return false
	}

	for _, a := range args {
		switch a.Kind() {
		case cell.Complex, cell.Number:
		default:
			return false
		}
	}

	return true
}

// is returns true if c is a number or complex number equal to n.
func is(c cell.I, n int64) bool {
	r := big.NewRat(n, 1)

	switch c.Kind() {
	case cell.Number:
		return num.To(c).Rat().Cmp(r) == 0
	case cell.Complex:
		z := cpx.To(c)

		return z.Real().Cmp(r) == 0 && z.Imag().Sign() == 0
	}

	return false
}
