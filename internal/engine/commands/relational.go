// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/create"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

// compare orders two real numbers. Complex numbers are not ordered.
func compare(name string, args []cell.I, ok func(int) bool) cell.I {
	v := validate.Fixed(args, 2, 2)

	a := num.To(validate.Kind(v[0], "argument 1 to "+name, cell.Number))
	b := num.To(validate.Kind(v[1], "argument 2 to "+name, cell.Number))

	return create.Bool(ok(a.Rat().Cmp(b.Rat())))
}

func ge(_ *executor.T, args []cell.I) cell.I {
	return compare(">=", args, func(c int) bool { return c >= 0 })
}

func gt(_ *executor.T, args []cell.I) cell.I {
	return compare(">", args, func(c int) bool { return c > 0 })
}

func le(_ *executor.T, args []cell.I) cell.I {
	return compare("<=", args, func(c int) bool { return c <= 0 })
}

func lt(_ *executor.T, args []cell.I) cell.I {
	return compare("<", args, func(c int) bool { return c < 0 })
}
