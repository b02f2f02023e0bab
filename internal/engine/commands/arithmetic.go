// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

// arithmetic applies monadic to one argument or dyadic to two.
func arithmetic(
	name string, args []cell.I, monadic func(number) number, dyadic func(a, b number) number,
) cell.I {
	v := validate.Fixed(args, 1, 2)

	a := operand(v[0], "argument 1 to "+name)
	if len(v) == 1 {
		return monadic(a).cell()
	}

	return dyadic(a, operand(v[1], "argument 2 to "+name)).cell()
}

// add returns the sum of two numbers or the conjugate of one.
func add(_ *executor.T, args []cell.I) cell.I {
	return arithmetic("+", args, func(a number) number {
		a.im.Neg(a.im)

		return a
	}, add2)
}

// div returns the quotient of two numbers or the reciprocal of one.
func div(_ *executor.T, args []cell.I) cell.I {
	return arithmetic("/", args, func(a number) number {
		return div2(number{re: big.NewRat(1, 1), im: new(big.Rat), complex: a.complex}, a)
	}, div2)
}

// mul returns the product of two numbers or the signum of one.
func mul(_ *executor.T, args []cell.I) cell.I {
	return arithmetic("*", args, signum, mul2)
}

// pow returns a raised to the power b. Integer powers are exact.
func pow(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	a := operand(v[0], "argument 1 to **")
	b := operand(v[1], "argument 2 to **")

	if b.im.Sign() == 0 && b.re.IsInt() {
		r := exact(a, b.re.Num())
		r.complex = r.complex || b.complex

		return r.cell()
	}

	if !a.complex && !b.complex && a.re.Sign() >= 0 {
		return rat(fromFloat(math.Pow(a.float64(), b.float64()))).cell()
	}

	return fromComplex(cmplx.Pow(a.complex128(), b.complex128())).cell()
}

// sub returns the difference of two numbers or the negation of one.
func sub(_ *executor.T, args []cell.I) cell.I {
	return arithmetic("-", args, func(a number) number {
		a.re.Neg(a.re)
		a.im.Neg(a.im)

		return a
	}, sub2)
}

func signum(a number) number {
	if !a.complex {
		return rat(big.NewRat(int64(a.re.Sign()), 1))
	}

	if a.isZero() {
		return a
	}

	z := a.complex128()

	return fromComplex(z / complex(cmplx.Abs(z), 0))
}
