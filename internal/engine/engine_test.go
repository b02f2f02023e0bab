package engine_test

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/engine"
)

func last(t *testing.T, e *engine.T, text string) string {
	t.Helper()

	results, err := e.EvalString("test", text)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", text, err)
	}

	if len(results) == 0 {
		t.Fatalf("%s: no results", text)
	}

	return literal.String(results[len(results)-1])
}

func fails(t *testing.T, e *engine.T, text string, class fault.Class) {
	t.Helper()

	_, err := e.EvalString("test", text)
	if !errors.Is(err, fault.New(class, "")) {
		t.Fatalf("%s: expected %s, got %v", text, class, err)
	}
}

func TestExamples(t *testing.T) {
	e := engine.New()

	for text, expected := range map[string]string{
		"(cons 2 (cons 3 nil))":        "(2 3)",
		"(cons 2 (cons 3 'nil))":       "(2 3)",
		"((lambda (x) (* x x)) 5)":     "25",
		"((D (lambda (x) (* x x))) 3)": "6",
		"(fact 5)":                     "120",
		"((compose square neg) 3)":     "9",
		"(if 1 'yes 'no)":              "yes",
		"(if 0 'yes 'no)":              "no",
		"(not 0)":                      "1",
		"(and 1 (or 0 1))":             "1",
		"(= '(1 2) (list 1 2))":        "1",
		"(/= 1 2)":                     "1",
		"(kind 'a)":                    "$'symbol'",
		"(eval '(+ 1 2))":              "3",
		"((monad (+ x 1)) 1)":          "2",
		"((dyad (- x y)) 5 3)":         "2",
		"argv":                         "()",
		"(defun twice (f v) (f (f v))) (twice square 3)": "81",
	} {
		if actual := last(t, e, text); actual != expected {
			t.Errorf("%s: expected %s, got %s", text, expected, actual)
		}
	}
}

func TestDefinitionScope(t *testing.T) {
	e := engine.New()

	if actual := last(t, e, "(def pi-is-three 3) pi-is-three"); actual != "3" {
		t.Fatalf("expected 3, got %s", actual)
	}

	fails(t, e, "((lambda (x) (def pi-is-three x)) 4)", fault.ScopeViolation)

	if actual := last(t, e, "pi-is-three"); actual != "3" {
		t.Fatalf("failed definition changed the binding to %s", actual)
	}
}

func TestUntakenBranchIsNeverEvaluated(t *testing.T) {
	e := engine.New()

	last(t, e, "(if 1 'ok (def poisoned 1))")
	last(t, e, "(if 0 (def poisoned 1) 'ok)")

	fails(t, e, "poisoned", fault.UnboundSymbol)
}

func TestDeterminism(t *testing.T) {
	e := engine.New()

	last(t, e, "(defun poly (x) (+ (* 3 (* x x)) (- x 7)))")

	first := last(t, e, "(poly 11/3)")
	for i := 0; i < 3; i++ {
		if again := last(t, e, "(poly 11/3)"); again != first {
			t.Fatalf("expected %s, got %s", first, again)
		}
	}
}

func TestRecursionSeesOwnBindings(t *testing.T) {
	e := engine.New()

	// Each call must see its own n after the recursive call returns.
	last(t, e, "(defun up (n) (if (= n 0) nil (append ((bruijn 0) (- n 1)) n)))")

	if actual := last(t, e, "(up 3)"); actual != "(1 2 3)" {
		t.Fatalf("expected (1 2 3), got %s", actual)
	}
}

func TestFaults(t *testing.T) {
	e := engine.New()

	for text, class := range map[string]fault.Class{
		"(1 2)":                        fault.NotCallable,
		"undefined":                    fault.UnboundSymbol,
		"((lambda (x) x) 1 2)":         fault.ArityError,
		"(+ 1 'a)":                     fault.TypeMismatch,
		"(/ 1 0)":                      fault.TypeMismatch,
		"(nth 5 '(1 2))":               fault.IndexOutOfBounds,
		"(bruijn 10)":                  fault.IndexOutOfBounds,
		"((D (lambda (x) (foo x))) 1)": fault.UnsupportedDerivative,
	} {
		fails(t, e, text, class)
	}
}

func TestArguments(t *testing.T) {
	e := engine.New("a", "b")

	if actual := last(t, e, "argv"); actual != "($'a' $'b')" {
		t.Fatalf("unexpected argv %s", actual)
	}
}

func TestNames(t *testing.T) {
	names := engine.New().Names()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}

	for _, n := range []string{"lambda", "D", "fact", "argv"} {
		if !found[n] {
			t.Errorf("expected %s to be bound", n)
		}
	}
}
