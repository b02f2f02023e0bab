package commands_test

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/engine"
)

type example struct {
	text     string
	expected string
}

func run(t *testing.T, examples []example) {
	t.Helper()

	e := engine.New()

	for _, x := range examples {
		results, err := e.EvalString("test", x.text)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", x.text, err)

			continue
		}

		if actual := literal.String(results[len(results)-1]); actual != x.expected {
			t.Errorf("%s: expected %s, got %s", x.text, x.expected, actual)
		}
	}
}

func TestArithmetic(t *testing.T) {
	run(t, []example{
		{"(+ 1 2)", "3"},
		{"(- 1 3)", "-2"},
		{"(* 2.5 4)", "10"},
		{"(/ 1 3)", "1/3"},
		{"(/ 1 4)", "0.25"},
		{"(- 5)", "-5"},
		{"(* -7)", "-1"},
		{"(/ 4)", "0.25"},
		{"(+ 1j2)", "1j-2"},
		{"(+ 1j2 1)", "2j2"},
		{"(* 0j1 0j1)", "-1j0"},
		{"(/ 1j1 0j1)", "1j-1"},
		{"(** 2 10)", "1024"},
		{"(** 2 -2)", "0.25"},
		{"(** 0j1 2)", "-1j0"},
		{"(** 4 0.5)", "2"},
		{"(< 1 2)", "1"},
		{"(>= 1 2)", "0"},
		{"(<= 2 2)", "1"},
		{"(> 3 2)", "1"},
	})
}

func TestMath(t *testing.T) {
	run(t, []example{
		{"(sqrt 16/9)", "4/3"},
		{"(sqrt -4)", "0j2"},
		{"(sqrt 2)", "1.4142135623730951"},
		{"(sin 0)", "0"},
		{"(cos 0)", "1"},
		{"(exp 0)", "1"},
		{"(ln 1)", "0"},
		{"(lambert-w 0)", "0"},
		{"(floor -1.5)", "-2"},
		{"(ceil 1.25)", "2"},
		{"(floor 3)", "3"},
		{"(abs -3)", "3"},
		{"(abs 3j4)", "5"},
		{"(complex 1 2)", "1j2"},
		{"(real 1j2)", "1"},
		{"(imag 1j2)", "2"},
		{"(imag 7)", "0"},
	})
}

func TestSequences(t *testing.T) {
	run(t, []example{
		{"(cons 1 '(2 3))", "(1 2 3)"},
		{"(cons '(2) 0 1)", "(0 1 2)"},
		{"(cons '(1) 2 3)", "(2 3 1)"},
		{"(append '(1) 2 3)", "(1 2 3)"},
		{"(car '(1 2))", "1"},
		{"(car nil)", "null"},
		{"(car '(1 2) '(3 4))", "(1 3)"},
		{"(cdr '(1 2 3))", "(2 3)"},
		{"(cdr '(1))", "()"},
		{"(size '(1 2 3))", "3"},
		{"(size \"héllo\")", "5"},
		{"(nth 1 '(a b c))", "b"},
		{"(nth 1 \"abc\")", "$'b'"},
		{"(iota 4)", "(0 1 2 3)"},
		{"(iota '(2 2))", "((0 0) (0 1) (1 0) (1 1))"},
		{"(reverse '(1 2 3))", "(3 2 1)"},
		{"(reverse \"abc\")", "$'cba'"},
		{"(drop 1 '(1 2 3))", "(2 3)"},
		{"(drop -1 '(1 2 3))", "(1 2)"},
		{"(take 2 '(1 2 3))", "(1 2)"},
		{"(take -1 '(1 2 3))", "(3)"},
		{"(map square '(1 2 3))", "(1 4 9)"},
		{"(filter (monad (> x 1)) '(1 2 3))", "(2 3)"},
		{"(foldl + 0 '(1 2 3))", "6"},
		{"(sum (iota 5))", "10"},
		{"(list 1 'a \"b\")", "(1 a $'b')"},
	})
}

func TestText(t *testing.T) {
	run(t, []example{
		{"(str-split \"a,b,c\" \",\")", "($'a' $'b' $'c')"},
		{"(str-cat \"a\" \"b\" \"c\")", "$'abc'"},
		{"(str-size \"abc\")", "3"},
		{"(str-nth 0 \"abc\")", "$'a'"},
		{"(str-match \"*.go\" \"main.go\")", "1"},
		{"(str-match \"*.go\" \"main.c\")", "0"},
		{"(str->sym \"abc\")", "abc"},
		{"(sym->str 'abc)", "$'abc'"},
	})
}

func TestGrids(t *testing.T) {
	run(t, []example{
		{"(def g (grid 2 3 (dyad (+ (* 10 x) y))))", "(grid [0 1 2] [10 11 12])"},
		{"(grid-ref g 1 2)", "12"},
		{"(grid-dims g)", "(2 3)"},
		{"(grid-rows g)", "((0 1 2) (10 11 12))"},
	})
}

func TestCalculus(t *testing.T) {
	run(t, []example{
		{"(simplify '(+ (* 1 x) (* 0 y)))", "x"},
		{"(simplify '(* 2 (+ 1 2)))", "6"},
		{"((D (lambda (t) (* t (* t t))) 't) 2)", "12"},
		{"((D (lambda (x y) (* x y)) \"y\") 3 4)", "3"},
		{"(D (lambda (x) (sin x)))", "(lambda (x) (cos x))"},
	})
}

func TestFaults(t *testing.T) {
	e := engine.New()

	for text, class := range map[string]fault.Class{
		"(car 1)":                            fault.TypeMismatch,
		"(cons 1)":                           fault.ArityError,
		"(cons 1 2 3)":                       fault.TypeMismatch,
		"(nth -1 '(1 2))":                    fault.IndexOutOfBounds,
		"(nth -1 \"ab\")":                    fault.IndexOutOfBounds,
		"(drop 4 '(1 2 3))":                  fault.IndexOutOfBounds,
		"(str-nth 3 \"abc\")":                fault.IndexOutOfBounds,
		"(grid-ref (grid 1 1 (dyad 0)) 1 0)": fault.IndexOutOfBounds,
		"(< 1j1 2)":                          fault.TypeMismatch,
		"(def)":                              fault.ArityError,
		"(lambda x x)":                       fault.TypeMismatch,
		"(map 1 '(1))":                       fault.TypeMismatch,
	} {
		_, err := e.EvalString("test", text)
		if !errors.Is(err, fault.New(class, "")) {
			t.Errorf("%s: expected %s, got %v", text, class, err)
		}
	}
}
