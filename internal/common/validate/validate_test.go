package validate

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
)

func raises(t *testing.T, class fault.Class, message string, fn func()) {
	t.Helper()

	defer func() {
		var err error

		fault.Recover(&err, recover())

		if !errors.Is(err, fault.New(class, "")) {
			t.Fatalf("expected %s, got %v", class, err)
		}

		if message != "" && err.Error() != class.String()+": "+message {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}()

	fn()
}

func args(n int) []cell.I {
	a := make([]cell.I, n)
	for i := range a {
		a[i] = num.Int(int64(i))
	}

	return a
}

func TestFixed(t *testing.T) {
	if len(Fixed(args(2), 2, 2)) != 2 {
		t.Fatal("expected two arguments")
	}

	raises(t, fault.ArityError, "expected 2 arguments, passed 3", func() {
		Fixed(args(3), 2, 2)
	})

	raises(t, fault.ArityError, "expected 1 argument, passed 0", func() {
		Fixed(args(0), 1, 1)
	})
}

func TestVariadic(t *testing.T) {
	expected, rest := Variadic(args(5), 1, 2)
	if len(expected) != 2 || len(rest) != 3 {
		t.Fatalf("unexpected split %d/%d", len(expected), len(rest))
	}
}

func TestKind(t *testing.T) {
	Kind(num.Int(1), "argument 1 to +", cell.Number, cell.Complex)

	raises(t, fault.TypeMismatch, "argument 1 to +: expected number or complex, got text", func() {
		Kind(str.New("a"), "argument 1 to +", cell.Number, cell.Complex)
	})
}
