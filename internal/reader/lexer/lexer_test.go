package lexer

import (
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/struct/token"
)

type expected struct {
	class token.Class
	value string
	where string
}

func atom(v, where string) expected {
	return expected{token.Atom, v, where}
}

func char(c rune, where string) expected {
	return expected{token.Class(c), string(c), where}
}

func check(t *testing.T, l *T, tokens ...expected) {
	t.Helper()

	for _, e := range tokens {
		a := l.Token()
		if a == nil {
			t.Fatalf("expected %q but there are no tokens", e.value)
		}

		if a.Class() != e.class || a.Value() != e.value {
			t.Fatalf("expected %q; got %v", e.value, a)
		}

		if e.where != "" && a.Source().String() != e.where {
			t.Fatalf("expected %q at %s; got %s", e.value, e.where, a.Source())
		}
	}

	if a := l.Token(); a != nil {
		t.Fatalf("expected no tokens; got %v", a)
	}
}

func TestForm(t *testing.T) {
	l := New("test")

	l.Scan("(+ 1 2)\n")

	check(t, l,
		char('(', "test:1:1"),
		atom("+", "test:1:2"),
		atom("1", "test:1:4"),
		atom("2", "test:1:6"),
		char(')', "test:1:7"),
	)
}

func TestQuoteAndComment(t *testing.T) {
	l := New("test")

	l.Scan("; ignored\n'(a b) ; also ignored\nc\n")

	check(t, l,
		char('\'', "test:2:1"),
		char('(', "test:2:2"),
		atom("a", ""),
		atom("b", ""),
		char(')', ""),
		atom("c", "test:3:1"),
	)
}

func TestText(t *testing.T) {
	l := New("test")

	l.Scan(`"say \"hi\"" $'it\'s'` + "\n")

	check(t, l,
		expected{token.DoubleQuoted, `"say \"hi\""`, ""},
		expected{token.DollarSingleQuoted, `$'it\'s'`, ""},
	)
}

func TestDollarAtom(t *testing.T) {
	l := New("test")

	l.Scan("$x\n")

	check(t, l, atom("$x", ""))
}

func TestSplitAcrossBuffers(t *testing.T) {
	l := New("test")

	l.Scan("(lam")

	if a := l.Token(); a == nil || !a.Is('(') {
		t.Fatalf("expected '(' got %v", a)
	}

	if a := l.Token(); a != nil {
		t.Fatalf("expected no token until the atom completes; got %v", a)
	}

	l.Scan("bda)\n")

	check(t, l, atom("lambda", ""), char(')', ""))
}

func TestDeepNesting(t *testing.T) {
	l := New("test")

	s := ""
	for i := 0; i < 40; i++ {
		s += "("
	}

	l.Scan(s + "\n")

	tokens := make([]expected, 40)
	for i := range tokens {
		tokens[i] = char('(', "")
	}

	check(t, l, tokens...)
}
