// Released under an MIT license. See LICENSE.

// Package cpx provides lisa's exact complex number type.
package cpx

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
)

const name = "complex"

// T (cpx) is a complex number with exact real and imaginary parts.
// A cpx is never mutated after creation.
type T struct {
	re *big.Rat
	im *big.Rat
}

type cpx = T

// New creates a new cpx cell from its real and imaginary parts.
func New(re, im *big.Rat) cell.I {
	return Cpx(re, im)
}

// Cpx creates a new cpx from its real and imaginary parts.
func Cpx(re, im *big.Rat) *cpx {
	return &cpx{re: new(big.Rat).Set(re), im: new(big.Rat).Set(im)}
}

// Parse returns the cpx written as "<re>j<im>" and true,
// or nil and false if s is not a complex literal.
func Parse(s string) (*cpx, bool) {
	i := strings.IndexByte(s, 'j')
	if i <= 0 || i == len(s)-1 {
		return nil, false
	}

	re, ok := num.Parse(s[:i])
	if !ok {
		return nil, false
	}

	im, ok := num.Parse(s[i+1:])
	if !ok {
		return nil, false
	}

	return Cpx(re.Rat(), im.Rat()), true
}

// Bool returns the boolean value of the cpx c. Non-zero is true.
func (c *cpx) Bool() bool {
	return c.re.Sign() != 0 || c.im.Sign() != 0
}

// Complex128 returns the nearest complex128 to the cpx c.
func (c *cpx) Complex128() complex128 {
	re, _ := c.re.Float64()
	im, _ := c.im.Float64()

	return complex(re, im)
}

// Equal returns true if o is a cpx with the same parts as the cpx c.
func (c *cpx) Equal(o cell.I) bool {
	if !Is(o) {
		return false
	}

	t := To(o)

	return c.re.Cmp(t.re) == 0 && c.im.Cmp(t.im) == 0
}

// Imag returns a copy of the imaginary part of the cpx c.
func (c *cpx) Imag() *big.Rat {
	return new(big.Rat).Set(c.im)
}

// Kind returns cell.Complex.
func (c *cpx) Kind() cell.Kind {
	return cell.Complex
}

// Literal returns the literal representation of the cpx c.
func (c *cpx) Literal() string {
	return c.String()
}

// Name returns the type name for the cpx c.
func (c *cpx) Name() string {
	return name
}

// Real returns a copy of the real part of the cpx c.
func (c *cpx) Real() *big.Rat {
	return new(big.Rat).Set(c.re)
}

// String returns the text of the cpx c.
func (c *cpx) String() string {
	return num.Format(c.re) + "j" + num.Format(c.im)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*cpx)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *cpx {
	if t, ok := c.(*cpx); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cpx

	// The cpx type is a cell.
	_ = cell.I(&t)

	// The cpx type has a literal representation.
	_ = literal.I(&t)

	// The cpx type is a stringer.
	_ = common.Stringer(&t)

	// The cpx type has a truth value.
	_ = truth.I(&t)
}
