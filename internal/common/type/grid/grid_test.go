package grid

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
)

func identity(n int) cell.I {
	return New(n, n, func(r, c int) cell.I {
		if r == c {
			return num.One
		}

		return num.Zero
	})
}

func TestConstruction(t *testing.T) {
	g := To(identity(3))

	rows, cols := g.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("unexpected dimensions %d×%d", rows, cols)
	}

	if !g.At(1, 1).Equal(num.One) || !g.At(0, 2).Equal(num.Zero) {
		t.Fatal("unexpected cell values")
	}

	if g.Literal() != "(grid [1 0 0] [0 1 0] [0 0 1])" {
		t.Fatalf("unexpected literal %s", g.Literal())
	}
}

func TestEqual(t *testing.T) {
	if !identity(2).Equal(identity(2)) {
		t.Fatal("expected equal grids")
	}

	if identity(2).Equal(identity(3)) {
		t.Fatal("grids of different shapes compared equal")
	}
}

func TestOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	To(identity(2)).At(2, 0)
}

func TestRows(t *testing.T) {
	g := To(New(2, 3, func(r, c int) cell.I {
		return num.Int(int64(r*10 + c))
	}))

	if s := list.To(g.Rows()).Literal(); s != "((0 1 2) (10 11 12))" {
		t.Fatalf("unexpected rows %s", s)
	}
}
