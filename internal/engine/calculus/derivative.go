// Released under an MIT license. See LICENSE.

// Package calculus provides symbolic differentiation and algebraic
// simplification of lisa expression trees.
package calculus

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

type rule func(args []cell.I, v string) cell.I

//nolint:gochecknoglobals
var rules map[string]rule

// D returns the derivative of expr with respect to the variable v.
// The result is not simplified.
func D(expr cell.I, v string) cell.I {
	switch expr.Kind() {
	case cell.Closure:
		c := expr.(*executor.Closure)
		if c.Builtin() {
			fault.Raise(fault.UnsupportedDerivative, "derivative of %s", c.Literal())
		}

		return D(c.Body, v)

	case cell.Complex, cell.Number:
		return num.Zero

	case cell.Deferred:
		return D(lazy.Force(expr), v)

	case cell.Symbol:
		if sym.Named(expr, v) {
			return num.One
		}

		// Other variables are held constant.
		return num.Zero

	case cell.Sequence:
		return derive(expr, v)

	case cell.Grid, cell.Null, cell.Operative, cell.Text:
		fault.Raise(
			fault.UnsupportedDerivative, "derivative of %s %s",
			expr.Name(), literal.String(expr),
		)
	}

	cell.Unreachable(expr)

	return nil
}

func derive(expr cell.I, v string) cell.I {
	elements := list.To(expr).Elements()
	if len(elements) == 0 {
		fault.Raise(fault.UnsupportedDerivative, "derivative of an empty sequence")
	}

	head := sym.To(validate.Kind(elements[0], "head of differentiated form", cell.Symbol)).String()

	r, ok := rules[head]
	if !ok {
		fault.Raise(fault.UnsupportedDerivative, "derivative of %s", literal.String(expr))
	}

	return r(elements[1:], v)
}

func call(head string, args ...cell.I) cell.I {
	return list.New(append([]cell.I{sym.New(head)}, args...)...)
}

func unary(head string, fn func(f, df cell.I) cell.I) rule {
	return func(args []cell.I, v string) cell.I {
		if len(args) != 1 {
			fault.Raise(
				fault.ArityError, "%s: expected %s, passed %d",
				head, validate.Count(1, "argument", "s"), len(args),
			)
		}

		return fn(args[0], D(args[0], v))
	}
}

func binary(head string, fn func(f, g cell.I, v string) cell.I) rule {
	return func(args []cell.I, v string) cell.I {
		if len(args) != 2 {
			fault.Raise(
				fault.ArityError, "%s: expected %s, passed %d",
				head, validate.Count(2, "argument", "s"), len(args),
			)
		}

		return fn(args[0], args[1], v)
	}
}

// monadicOrDyadic handles operators that are also defined with one argument.
// A nil monadic rule means the one argument form has no derivative.
func monadicOrDyadic(head string, monadic rule, dyadic rule) rule {
	return func(args []cell.I, v string) cell.I {
		switch len(args) {
		case 1:
			if monadic == nil {
				fault.Raise(fault.UnsupportedDerivative, "derivative of monadic %s", head)
			}

			return monadic(args, v)
		case 2:
			return dyadic(args, v)
		}

		fault.Raise(
			fault.ArityError, "%s: expected 1 or 2 arguments, passed %d",
			head, len(args),
		)

		return nil
	}
}

func two() cell.I {
	return num.Int(2)
}

func init() { //nolint:gochecknoinits
	rules = map[string]rule{
		// (f + g)' = f' + g'
		"+": monadicOrDyadic("+", nil, func(a []cell.I, v string) cell.I {
			return call("+", D(a[0], v), D(a[1], v))
		}),

		// (-f)' = -f'  and  (f - g)' = f' - g'
		"-": monadicOrDyadic("-",
			func(a []cell.I, v string) cell.I {
				return call("-", D(a[0], v))
			},
			func(a []cell.I, v string) cell.I {
				return call("-", D(a[0], v), D(a[1], v))
			},
		),

		// (f g)' = f' g + g' f
		"*": monadicOrDyadic("*", nil, func(a []cell.I, v string) cell.I {
			return call("+",
				call("*", D(a[0], v), a[1]),
				call("*", D(a[1], v), a[0]),
			)
		}),

		// (1/f)' = -(f' / f²)  and  (f/g)' = (f' g - g' f) / g²
		"/": monadicOrDyadic("/",
			func(a []cell.I, v string) cell.I {
				return call("-", call("/", D(a[0], v), call("**", a[0], two())))
			},
			func(a []cell.I, v string) cell.I {
				return call("/",
					call("-",
						call("*", D(a[0], v), a[1]),
						call("*", D(a[1], v), a[0]),
					),
					call("**", a[1], two()),
				)
			},
		),

		// (f ** g)' = f ** (g - 1) * (g f' + f g' ln f)
		"**": binary("**", func(f, g cell.I, v string) cell.I {
			return call("*",
				call("**", f, call("-", g, num.One)),
				call("+",
					call("*", g, D(f, v)),
					call("*", call("*", f, D(g, v)), call("ln", f)),
				),
			)
		}),

		"sin": unary("sin", func(f, df cell.I) cell.I {
			return call("*", call("cos", f), df)
		}),

		"cos": unary("cos", func(f, df cell.I) cell.I {
			return call("*", call("-", call("sin", f)), df)
		}),

		"sqrt": unary("sqrt", func(f, df cell.I) cell.I {
			return call("/", df, call("*", two(), call("sqrt", f)))
		}),

		"ln": unary("ln", func(f, df cell.I) cell.I {
			return call("/", df, f)
		}),

		"exp": unary("exp", func(f, df cell.I) cell.I {
			return call("*", call("exp", f), df)
		}),

		"tan": unary("tan", func(f, df cell.I) cell.I {
			return call("*", df, call("**", call("sec", f), two()))
		}),

		"cot": unary("cot", func(f, df cell.I) cell.I {
			return call("*", df, call("*", num.Int(-1), call("**", call("csc", f), two())))
		}),

		"sec": unary("sec", func(f, df cell.I) cell.I {
			return call("*", df, call("*", call("sec", f), call("tan", f)))
		}),

		"csc": unary("csc", func(f, df cell.I) cell.I {
			return call("*", df, call("*", num.Int(-1), call("*", call("csc", f), call("cot", f))))
		}),

		// W(f)' = W(f) f' / (f (W(f) + 1))
		"lambert-w": unary("lambert-w", func(f, df cell.I) cell.I {
			return call("/",
				call("*", call("lambert-w", f), df),
				call("*", f, call("+", call("lambert-w", f), num.One)),
			)
		}),
	}
}

// Differentiate returns a new closure, created by x, that computes the
// derivative of c with respect to v.
func Differentiate(x *executor.T, c *executor.Closure, v string) cell.I {
	if c.Builtin() {
		fault.Raise(fault.UnsupportedDerivative, "derivative of %s", c.Literal())
	}

	derivative := MaxSimplify(x, D(MaxSimplify(x, c.Body), v))

	return x.Evaluate(list.New(sym.New("lambda"), c.Params, derivative))
}
