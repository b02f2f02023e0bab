// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/integer"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/create"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

func text(c cell.I, position string) string {
	return common.String(validate.Kind(c, position, cell.Text))
}

func character(r []rune, i int64) cell.I {
	if i < 0 || i >= int64(len(r)) {
		fault.Raise(fault.IndexOutOfBounds, "index %d outside text of %d characters", i, len(r))
	}

	return str.New(string(r[i]))
}

func strCat(_ *executor.T, args []cell.I) cell.I {
	var b strings.Builder

	for i, a := range args {
		b.WriteString(text(a, "argument "+strconv.Itoa(i+1)+" to str-cat"))
	}

	return str.New(b.String())
}

func strMatch(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(text(v[0], "pattern"), text(v[1], "argument 2 to str-match"))
	if err != nil {
		fault.Raise(fault.TypeMismatch, "%s", err.Error())
	}

	return create.Bool(ok)
}

func strNth(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return character([]rune(text(v[1], "argument 2 to str-nth")), integer.Value(v[0]))
}

func strSize(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(int64(len([]rune(text(v[0], "argument to str-size")))))
}

// strSplit splits text around each instance of a separator.
func strSplit(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	fields := strings.Split(text(v[0], "argument 1 to str-split"), text(v[1], "separator"))

	parts := make([]cell.I, len(fields))
	for i, f := range fields {
		parts[i] = str.New(f)
	}

	return list.Of(parts)
}

func strToSym(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(text(v[0], "argument to str->sym"))
}

func symToStr(_ *executor.T, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(sym.To(validate.Kind(v[0], "argument to sym->str", cell.Symbol)).String())
}
