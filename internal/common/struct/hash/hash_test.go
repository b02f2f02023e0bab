package hash

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/type/num"
)

func TestSetOverwrites(t *testing.T) {
	h := New()

	h.Set("x", num.Int(1))
	r := h.Get("x")

	h.Set("x", num.Int(2))

	if !r.Get().Equal(num.Int(2)) {
		t.Fatalf("expected the existing slot to be updated")
	}

	if n := len(h.Names()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	h := New()
	h.Set("x", num.Int(1))

	c := h.Copy()
	c.Set("x", num.Int(2))

	if !h.Get("x").Get().Equal(num.Int(1)) {
		t.Fatal("copy shares slots with the original")
	}
}

func TestNamesSorted(t *testing.T) {
	h := New()
	h.Set("c", num.Int(1))
	h.Set("a", num.Int(2))

	names := h.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "c" {
		t.Fatalf("unexpected names %v", names)
	}
}
