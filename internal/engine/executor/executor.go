// Released under an MIT license. See LICENSE.

// Package executor provides lisa's evaluator.
//
// Evaluation is recursive and runs on the caller's goroutine. Errors are
// raised as fault panics and recovered by whoever asked for the evaluation.
package executor

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/env"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
)

const debug = false

// T (executor) evaluates cells in the context of one frame.
type T struct {
	env *env.T
}

type executor = T

// New creates an executor for the frame e.
func New(e *env.T) *executor {
	return &executor{env: e}
}

// Call applies the callable c to args. Closures receive args as values.
// Operatives receive args as forms to be evaluated by x.
func (x *executor) Call(c cell.I, args ...cell.I) cell.I {
	switch c := lazy.Force(c).(type) {
	case *Closure:
		return c.Apply(x, args)
	case *Operative:
		return c.Apply(x, args)
	}

	fault.Raise(fault.NotCallable, "%s is not callable", literal.String(c))

	return nil
}

// Env returns the frame that x evaluates in.
func (x *executor) Env() *env.T {
	return x.env
}

// Evaluate returns the value of c in x's frame. The result may be deferred.
func (x *executor) Evaluate(c cell.I) cell.I {
	if debug {
		println("evaluate:", literal.String(c), "in", x.env.Label())
	}

	switch c.Kind() {
	case cell.Closure, cell.Complex, cell.Deferred, cell.Grid,
		cell.Null, cell.Number, cell.Operative, cell.Text:
		return c
	case cell.Sequence:
		return x.form(c)
	case cell.Symbol:
		return x.resolve(c)
	}

	cell.Unreachable(c)

	return nil
}

func (x *executor) form(c cell.I) cell.I {
	elements := list.To(c).Elements()
	if len(elements) == 0 {
		return c
	}

	head := lazy.Force(x.Evaluate(elements[0]))
	rest := elements[1:]

	switch head := head.(type) {
	case *Closure:
		args := make([]cell.I, len(rest))
		for i, e := range rest {
			args[i] = lazy.Force(x.Evaluate(e))
		}

		return head.Apply(x, args)

	case *Operative:
		return head.Apply(x, rest)
	}

	fault.Raise(
		fault.NotCallable, "%s%s is not callable",
		sym.Where(elements[0]), literal.String(head),
	)

	return nil
}

func (x *executor) resolve(c cell.I) cell.I {
	k := sym.To(c).String()

	r := x.env.Lookup(k)
	if r == nil {
		fault.Raise(fault.UnboundSymbol, "%s%s is not bound", sym.Where(c), k)
	}

	return r.Get()
}
