// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisa/internal/common/type/grid"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

func gridOf(c cell.I, position string) *grid.T {
	return grid.To(validate.Kind(c, position, cell.Grid))
}

func gridDims(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	rows, cols := gridOf(v[0], "argument to grid-dims").Dims()

	return list.New(num.Int(int64(rows)), num.Int(int64(cols)))
}

func gridRef(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	g := gridOf(v[0], "argument 1 to grid-ref")

	return g.At(int(integer.Value(v[1])), int(integer.Value(v[2])))
}

func gridRows(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return gridOf(v[0], "argument to grid-rows").Rows()
}

// makeGrid builds a grid by calling a function with each row and column.
func makeGrid(x *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	rows := integer.Value(v[0])
	cols := integer.Value(v[1])
	f := callable(v[2], "argument 3 to grid")

	return grid.New(int(rows), int(cols), func(r, c int) cell.I {
		return lazy.Force(x.Call(f, num.Int(int64(r)), num.Int(int64(c))))
	})
}
