// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/cpx"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

const iterations = 100

// transcendental applies f to real arguments for which inDomain is true
// and g to every other argument.
func transcendental(
	name string, args []cell.I,
	f func(float64) float64, inDomain func(float64) bool, g func(complex128) complex128,
) cell.I {
	v := validate.Fixed(args, 1, 1)

	a := operand(v[0], "argument to "+name)
	if !a.complex && inDomain(a.float64()) {
		return rat(fromFloat(f(a.float64()))).cell()
	}

	return fromComplex(g(a.complex128())).cell()
}

func everywhere(float64) bool {
	return true
}

func abs(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	a := operand(v[0], "argument to abs")
	if !a.complex {
		return num.Rat(a.re.Abs(a.re))
	}

	m := new(big.Rat).Mul(a.re, a.re)
	m.Add(m, new(big.Rat).Mul(a.im, a.im))

	if r, ok := exactSqrt(m); ok {
		return num.Rat(r)
	}

	return num.Rat(fromFloat(cmplx.Abs(a.complex128())))
}

func ceil(_ *executor.T, args []cell.I) cell.I {
	return round("ceil", args, func(q, m *big.Int) {
		if m.Sign() != 0 {
			q.Add(q, big.NewInt(1))
		}
	})
}

func cos(_ *executor.T, args []cell.I) cell.I {
	return transcendental("cos", args, math.Cos, everywhere, cmplx.Cos)
}

func cot(_ *executor.T, args []cell.I) cell.I {
	return transcendental("cot", args, func(f float64) float64 {
		return 1 / math.Tan(f)
	}, everywhere, cmplx.Cot)
}

func csc(_ *executor.T, args []cell.I) cell.I {
	return transcendental("csc", args, func(f float64) float64 {
		return 1 / math.Sin(f)
	}, everywhere, func(z complex128) complex128 {
		return 1 / cmplx.Sin(z)
	})
}

func exp(_ *executor.T, args []cell.I) cell.I {
	return transcendental("exp", args, math.Exp, everywhere, cmplx.Exp)
}

func floor(_ *executor.T, args []cell.I) cell.I {
	return round("floor", args, func(*big.Int, *big.Int) {})
}

func imagPart(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(operand(v[0], "argument to imag").im)
}

func lambertW(_ *executor.T, args []cell.I) cell.I {
	return transcendental("lambert-w", args, func(f float64) float64 {
		return real(halley(complex(f, 0), complex(math.Log1p(f), 0)))
	}, func(f float64) bool {
		return f >= -1/math.E
	}, func(z complex128) complex128 {
		return halley(z, cmplx.Log(z+1))
	})
}

func ln(_ *executor.T, args []cell.I) cell.I {
	return transcendental("ln", args, math.Log, func(f float64) bool {
		return f > 0
	}, cmplx.Log)
}

func makeComplex(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	re := num.To(validate.Kind(v[0], "real part", cell.Number))
	im := num.To(validate.Kind(v[1], "imaginary part", cell.Number))

	return cpx.New(re.Rat(), im.Rat())
}

func realPart(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Rat(operand(v[0], "argument to real").re)
}

func sec(_ *executor.T, args []cell.I) cell.I {
	return transcendental("sec", args, func(f float64) float64 {
		return 1 / math.Cos(f)
	}, everywhere, func(z complex128) complex128 {
		return 1 / cmplx.Cos(z)
	})
}

func sin(_ *executor.T, args []cell.I) cell.I {
	return transcendental("sin", args, math.Sin, everywhere, cmplx.Sin)
}

// sqrt is exact when the argument is the square of a rational number.
func sqrt(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	a := operand(v[0], "argument to sqrt")
	if !a.complex {
		if r, ok := exactSqrt(new(big.Rat).Abs(a.re)); ok {
			if a.re.Sign() < 0 {
				return cpx.New(new(big.Rat), r)
			}

			return num.Rat(r)
		}
	}

	return transcendental("sqrt", args, math.Sqrt, func(f float64) bool {
		return f >= 0
	}, cmplx.Sqrt)
}

func tan(_ *executor.T, args []cell.I) cell.I {
	return transcendental("tan", args, math.Tan, everywhere, cmplx.Tan)
}

func exactSqrt(r *big.Rat) (*big.Rat, bool) {
	n := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(n, n).Cmp(r.Num()) != 0 {
		return nil, false
	}

	d := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(d, d).Cmp(r.Denom()) != 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(n, d), true
}

// halley solves w·e^w = z for w starting from the estimate w.
func halley(z, w complex128) complex128 {
	for i := 0; i < iterations; i++ {
		e := cmplx.Exp(w)
		f := w*e - z

		next := w - f/(e*(w+1)-(w+2)*f/(2*w+2))
		if cmplx.Abs(next-w) <= 1e-15*(1+cmplx.Abs(next)) {
			return next
		}

		w = next
	}

	return w
}

// round rounds a real number toward negative infinity, then lets adjust
// move the quotient q given the remainder m.
func round(name string, args []cell.I, adjust func(q, m *big.Int)) cell.I {
	v := validate.Fixed(args, 1, 1)

	r := num.To(validate.Kind(v[0], "argument to "+name, cell.Number)).Rat()

	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	adjust(q, m)

	return num.Rat(new(big.Rat).SetInt(q))
}
