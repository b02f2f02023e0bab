// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/calculus"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

// derivative returns a deferred closure that computes the derivative of a
// closure with respect to a variable, x by default.
func derivative(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	return lazy.New(func() cell.I {
		f := validate.Kind(v[0], "argument 1 to D", cell.Closure).(*executor.Closure)

		variable := "x"
		if len(v) == 2 {
			variable = common.String(validate.Kind(v[1], "variable", cell.Symbol, cell.Text))
		}

		return calculus.Differentiate(x, f, variable)
	})
}

func simplify(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return calculus.MaxSimplify(x, v[0])
}
