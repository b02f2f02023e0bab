package env

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
)

func TestLookupClimbsAncestors(t *testing.T) {
	root := New("root", nil)
	root.Push("a", num.Int(1))

	child := root.Descendant("child")
	child.Push("b", num.Int(2))

	if r := child.Lookup("a"); r == nil || !r.Get().Equal(num.Int(1)) {
		t.Fatal("expected a to be visible from child")
	}

	if root.Lookup("b") != nil {
		t.Fatal("child binding leaked into root")
	}

	child.Push("a", num.Int(3))

	if !root.Lookup("a").Get().Equal(num.Int(1)) {
		t.Fatal("shadowing binding replaced root value")
	}

	if child.TopmostAncestor() != root || !root.IsRoot() || child.IsRoot() {
		t.Fatal("unexpected ancestry")
	}
}

func TestPushOverwrites(t *testing.T) {
	e := New("root", nil)
	e.Push("x", num.Int(1))
	e.Push("x", num.Int(2))

	if !e.Lookup("x").Get().Equal(num.Int(2)) {
		t.Fatal("expected later push to win")
	}
}

func TestClone(t *testing.T) {
	root := New("root", nil)
	frame := root.Descendant("lambda")
	frame.SetOwner(str.New("owner"))
	frame.Push("x", num.Int(1))

	clone := frame.Clone()
	clone.Push("x", num.Int(2))

	if !frame.Lookup("x").Get().Equal(num.Int(1)) {
		t.Fatal("clone shares bindings with original")
	}

	if clone.Ancestor() != root || clone.Owner() != frame.Owner() {
		t.Fatal("clone should keep ancestor and owner")
	}
}

func TestClimb(t *testing.T) {
	root := New("root", nil)
	a := root.Descendant("a")
	b := a.Descendant("b")

	if b.Climb(0) != b || b.Climb(1) != a || b.Climb(2) != root {
		t.Fatal("unexpected climb result")
	}

	defer func() {
		var err error

		fault.Recover(&err, recover())

		if !errors.Is(err, fault.New(fault.IndexOutOfBounds, "")) {
			t.Fatalf("expected IndexOutOfBounds, got %v", err)
		}
	}()

	b.Climb(3)
}
