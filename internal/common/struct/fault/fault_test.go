package fault

import (
	"errors"
	"fmt"
	"testing"
)

func recovered(fn func()) (err error) {
	defer func() {
		Recover(&err, recover())
	}()

	fn()

	return nil
}

func TestRaiseRecover(t *testing.T) {
	err := recovered(func() {
		Raise(ScopeViolation, "cannot define %s here", "x")
	})

	if err == nil {
		t.Fatal("expected an error")
	}

	if err.Error() != "ScopeViolation: cannot define x here" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	c, ok := ClassOf(err)
	if !ok || c != ScopeViolation {
		t.Fatalf("expected ScopeViolation, got %v", c)
	}
}

func TestStringPanicIsTypeMismatch(t *testing.T) {
	err := recovered(func() {
		panic("not a number")
	})

	c, ok := ClassOf(err)
	if !ok || c != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v (%v)", c, err)
	}
}

func TestIsMatchesClass(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(ArityError, "expected 2 arguments, passed 3"))

	if !errors.Is(err, New(ArityError, "")) {
		t.Fatal("expected errors.Is to match on class")
	}

	if errors.Is(err, New(TypeMismatch, "")) {
		t.Fatal("expected errors.Is not to match a different class")
	}
}

func TestOtherPanicsPropagate(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected the panic to propagate")
		}
	}()

	_ = recovered(func() {
		panic(errors.New("boom"))
	})
}
