// Released under an MIT license. See LICENSE.

// Package num provides lisa's exact real number type.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/interface/rational"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
)

const name = "number"

// T (num) wraps Go's big.Rat type. A num is never mutated after creation.
type T big.Rat

type num = T

//nolint:gochecknoglobals
var (
	// One and Zero are the literal truth values.
	One  = Int(1)
	Zero = Int(0)
)

// New creates a new num cell from a string.
func New(s string) cell.I {
	return Num(s)
}

// Num creates a new num from a string.
func Num(s string) *num {
	v, ok := Parse(s)
	if !ok {
		fault.Raise(fault.TypeMismatch, "'%s' is not a valid number", s)
	}

	return v
}

// Parse returns the num for s and true, or nil and false if s is not a number.
func Parse(s string) (*num, bool) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, false
	}

	return Rat(v), true
}

// Int creates a num from the integer i.
func Int(i int64) *num {
	return Rat(big.NewRat(i, 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) *num {
	return (*num)(r)
}

// Bool returns the boolean value of the num n. Non-zero is true.
func (n *num) Bool() bool {
	return n.Rat().Sign() != 0
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Kind returns cell.Number.
func (n *num) Kind() cell.Kind {
	return cell.Number
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n. Terminating fractions are written
// as decimals; others as a ratio.
func (n *num) String() string {
	return Format(n.Rat())
}

// Format returns the decimal text of r when r has a finite decimal
// expansion and r's ratio form otherwise.
func Format(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	d := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	m := new(big.Int)

	places := 0
	for _, f := range []*big.Int{two, five} {
		count := 0

		for {
			q, rem := new(big.Int).QuoRem(d, f, m)
			if rem.Sign() != 0 {
				break
			}

			d = q
			count++
		}

		if count > places {
			places = count
		}
	}

	if d.Cmp(big.NewInt(1)) != 0 {
		return r.RatString()
	}

	return r.FloatString(places)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
