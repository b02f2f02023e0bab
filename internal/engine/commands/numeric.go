// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/cpx"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
)

// number is an operand of an arithmetic primitive. The imaginary part of a
// real number is zero and complex is false.
type number struct {
	re      *big.Rat
	im      *big.Rat
	complex bool
}

func operand(c cell.I, position string) number {
	switch validate.Kind(c, position, cell.Number, cell.Complex).Kind() {
	case cell.Complex:
		z := cpx.To(c)

		return number{re: z.Real(), im: z.Imag(), complex: true}
	default:
		return number{re: new(big.Rat).Set(num.To(c).Rat()), im: new(big.Rat)}
	}
}

func rat(r *big.Rat) number {
	return number{re: r, im: new(big.Rat)}
}

func (n number) cell() cell.I {
	if n.complex {
		return cpx.New(n.re, n.im)
	}

	return num.Rat(n.re)
}

func (n number) complex128() complex128 {
	re, _ := n.re.Float64()
	im, _ := n.im.Float64()

	return complex(re, im)
}

func (n number) float64() float64 {
	f, _ := n.re.Float64()

	return f
}

func (n number) isZero() bool {
	return n.re.Sign() == 0 && n.im.Sign() == 0
}

func add2(a, b number) number {
	return number{
		re:      new(big.Rat).Add(a.re, b.re),
		im:      new(big.Rat).Add(a.im, b.im),
		complex: a.complex || b.complex,
	}
}

func sub2(a, b number) number {
	return number{
		re:      new(big.Rat).Sub(a.re, b.re),
		im:      new(big.Rat).Sub(a.im, b.im),
		complex: a.complex || b.complex,
	}
}

func mul2(a, b number) number {
	re := new(big.Rat).Mul(a.re, b.re)
	re.Sub(re, new(big.Rat).Mul(a.im, b.im))

	im := new(big.Rat).Mul(a.re, b.im)
	im.Add(im, new(big.Rat).Mul(a.im, b.re))

	return number{re: re, im: im, complex: a.complex || b.complex}
}

func div2(a, b number) number {
	if b.isZero() {
		fault.Raise(fault.TypeMismatch, "division by zero")
	}

	// (a + bi) / (c + di) = ((ac + bd) + (bc - ad)i) / (c² + d²)
	d := new(big.Rat).Mul(b.re, b.re)
	d.Add(d, new(big.Rat).Mul(b.im, b.im))

	re := new(big.Rat).Mul(a.re, b.re)
	re.Add(re, new(big.Rat).Mul(a.im, b.im))
	re.Quo(re, d)

	im := new(big.Rat).Mul(a.im, b.re)
	im.Sub(im, new(big.Rat).Mul(a.re, b.im))
	im.Quo(im, d)

	return number{re: re, im: im, complex: a.complex || b.complex}
}

// exact raises a to the integer power n.
func exact(a number, n *big.Int) number {
	if n.Sign() < 0 {
		return div2(rat(big.NewRat(1, 1)), exact(a, new(big.Int).Neg(n)))
	}

	result := number{re: big.NewRat(1, 1), im: new(big.Rat), complex: a.complex}
	base := a

	for e := new(big.Int).Set(n); e.Sign() > 0; e.Rsh(e, 1) {
		if e.Bit(0) == 1 {
			result = mul2(result, base)
		}

		base = mul2(base, base)
	}

	return result
}

// fromFloat converts f to the shortest decimal that round trips.
func fromFloat(f float64) *big.Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		fault.Raise(fault.TypeMismatch, "result is not a finite number")
	}

	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		fault.Raise(fault.TypeMismatch, "cannot represent %v", f)
	}

	return r
}

func fromComplex(z complex128) number {
	return number{re: fromFloat(real(z)), im: fromFloat(imag(z)), complex: true}
}
