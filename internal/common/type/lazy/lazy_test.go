package lazy

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
)

func TestForceIsNotMemoized(t *testing.T) {
	count := 0

	c := New(func() cell.I {
		count++

		return num.Int(int64(count))
	})

	if count != 0 {
		t.Fatal("creating a deferred cell must not run it")
	}

	first := Force(c)
	second := Force(c)

	if count != 2 {
		t.Fatalf("expected 2 runs, got %d", count)
	}

	if first.Equal(second) {
		t.Fatal("expected each force to run the computation again")
	}
}

func TestForceChains(t *testing.T) {
	inner := New(func() cell.I { return num.Int(7) })
	outer := New(func() cell.I { return inner })

	if !Force(outer).Equal(num.Int(7)) {
		t.Fatal("expected nested deferred cells to be forced")
	}

	if !Is(outer) || Is(Force(outer)) {
		t.Fatal("expected only the forced result to be resolved")
	}
}
