package sym

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisa/internal/common/struct/token"
)

func TestShortSymbolsAreInterned(t *testing.T) {
	if New("x") != New("x") {
		t.Fatal("expected short symbols to be interned")
	}

	if New("lambda") != New("lambda") {
		t.Fatal("expected cached symbols to be interned")
	}
}

func TestPlusEqualsPlain(t *testing.T) {
	source := &loc.T{Name: "test", Line: 2, Char: 5}
	p := Token(token.New(token.Atom, "square", source))

	if !p.Equal(New("square")) || !New("square").Equal(p) {
		t.Fatal("expected a located symbol to equal a plain one")
	}

	if !Named(p, "square") {
		t.Fatal("expected Named to see through Plus")
	}

	if w := Where(p); w != "test:2:5: " {
		t.Fatalf("unexpected location %q", w)
	}

	if Where(New("square")) != "" {
		t.Fatal("plain symbols have no location")
	}
}
