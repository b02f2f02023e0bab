package options

import (
	"reflect"
	"testing"

	"github.com/docopt/docopt-go"
)

func run(t *testing.T, tty bool, argv ...string) {
	t.Helper()

	err := parse(&docopt.Parser{HelpHandler: docopt.NoHelpHandler}, argv, tty)
	if err != nil {
		t.Fatalf("parsing %v: %v", argv, err)
	}
}

func TestScript(t *testing.T) {
	run(t, true, "-q", "prog.lisa", "a", "b")

	if Script() != "prog.lisa" || Expression() != "" {
		t.Fatalf("unexpected script %q, expression %q", Script(), Expression())
	}

	if Interactive() {
		t.Fatal("a script should not be interactive")
	}

	if !Quiet() {
		t.Fatal("expected quiet")
	}

	if expected := []string{"prog.lisa", "a", "b"}; !reflect.DeepEqual(Args(), expected) {
		t.Fatalf("expected %v, got %v", expected, Args())
	}
}

func TestExpression(t *testing.T) {
	run(t, true, "-c", "(+ 1 2)")

	if Expression() != "(+ 1 2)" || Script() != "" {
		t.Fatalf("unexpected expression %q, script %q", Expression(), Script())
	}

	if Interactive() || Quiet() {
		t.Fatal("expected non-interactive, non-quiet")
	}

	if len(Args()) != 0 {
		t.Fatalf("expected no arguments, got %v", Args())
	}
}

func TestInteractive(t *testing.T) {
	for _, c := range []struct {
		argv     []string
		tty      bool
		expected bool
	}{
		{[]string{}, true, true},
		{[]string{}, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
	} {
		run(t, c.tty, c.argv...)

		if Interactive() != c.expected {
			t.Errorf("%v with tty=%v: expected interactive=%v", c.argv, c.tty, c.expected)
		}
	}
}

func TestNoArguments(t *testing.T) {
	run(t, true)

	if !Interactive() || Script() != "" || Expression() != "" || len(Args()) != 0 {
		t.Fatal("expected an interactive session with no arguments")
	}
}

func TestVersion(t *testing.T) {
	run(t, false, "-v")

	if !ShowVersion() {
		t.Fatal("expected version to be requested")
	}
}

func TestUsageError(t *testing.T) {
	err := parse(&docopt.Parser{HelpHandler: docopt.NoHelpHandler}, []string{"-x"}, false)
	if err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}
