// Released under an MIT license. See LICENSE.

// Package options parses lisa's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "lisa 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	expression  string
	interactive bool
	quiet       bool
	script      string
	terminal    int
	version     bool
	usage       = `lisa

Usage:
  lisa [-q] SCRIPT [ARGUMENTS...]
  lisa [-q] -c EXPRESSION [ARGUMENTS...]
  lisa [-iq]
  lisa -h
  lisa -v

Arguments:
  ARGUMENTS  Bound to argv as a sequence of text.
  SCRIPT     Path to lisa script.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  -i, --interactive         Invert interactive mode.
  -q, --quiet               Do not print top-level results.
  -h, --help                Display this help.
  -v, --version             Print lisa version.

If lisa's stdin is a TTY, and lisa was invoked with no SCRIPT or EXPRESSION,
expressions are read interactively with line editing and history. Otherwise,
all of stdin is read and evaluated.
`
)

// Args returns the arguments to be bound to argv.
func Args() []string {
	return args
}

// Expression returns the expression passed with -c, if any.
func Expression() string {
	return expression
}

// Interactive returns true if lisa should start its REPL.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Help is printed and the process exits for -h.
func Parse() {
	err := parse(&docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	if interactive {
		terminal = int(os.Stdin.Fd())
	}
}

// Quiet returns true if top-level results should not be printed.
func Quiet() bool {
	return quiet
}

// Script returns the path of the script to evaluate, if any.
func Script() string {
	return script
}

// ShowVersion returns true if lisa was asked to print its version.
func ShowVersion() bool {
	return version
}

// Terminal returns the file descriptor of the controlling terminal.
func Terminal() int {
	return terminal
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	// A nil argv makes docopt read os.Args.
	if argv == nil {
		argv = []string{}
	}

	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}

	expression, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = script == "" && expression == "" && tty

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	quiet, _ = opts.Bool("--quiet")
	version, _ = opts.Bool("--version")

	args, _ = opts["ARGUMENTS"].([]string)
	if script != "" {
		args = append([]string{script}, args...)
	}

	return nil
}
