// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisa/internal/common/interface/truth"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/create"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/null"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

func bruijn(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	owner := x.Env().Climb(integer.Value(v[0])).Owner()
	if owner == nil {
		return null.Value
	}

	return owner
}

func def(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 2, 2)

	k := sym.To(validate.Kind(v[0], "name passed to def", cell.Symbol)).String()

	e := x.Env()
	if !e.IsRoot() {
		fault.Raise(fault.ScopeViolation, "%scannot define %s outside the root frame", sym.Where(v[0]), k)
	}

	value := lazy.Force(x.Evaluate(v[1]))

	e.Push(k, value)

	return value
}

func defmacro(x *executor.T, forms []cell.I) cell.I {
	return define(x, "macro", forms)
}

func defun(x *executor.T, forms []cell.I) cell.I {
	return define(x, "lambda", forms)
}

func define(x *executor.T, kind string, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 3, 3)

	return x.Evaluate(list.New(sym.New("def"), v[0], list.New(sym.New(kind), v[1], v[2])))
}

func dyad(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 1, 1)

	return executor.Lambda(x.Env(), list.New(sym.New("x"), sym.New("y")), v[0])
}

func equal(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return create.Bool(v[0].Equal(v[1]))
}

func eval(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return x.Evaluate(v[0])
}

func ifThenElse(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 3, 3)

	branch := v[2]
	if truth.Value(lazy.Force(x.Evaluate(v[0]))) {
		branch = v[1]
	}

	return lazy.New(func() cell.I {
		return x.Evaluate(branch)
	})
}

func kind(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(v[0].Kind().String())
}

func lambda(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 2, 2)

	return executor.Lambda(x.Env(), v[0], v[1])
}

func macro(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 2, 2)

	return executor.Macro(x.Env(), v[0], v[1])
}

func monad(x *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 1, 1)

	return executor.Lambda(x.Env(), list.New(sym.New("x")), v[0])
}

func notEqual(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return create.Bool(!v[0].Equal(v[1]))
}

func quote(_ *executor.T, forms []cell.I) cell.I {
	v := validate.Fixed(forms, 1, 1)

	return v[0]
}
