// Released under an MIT license. See LICENSE.

/*
Lisa is a small Lisp with APL-flavoured arithmetic, exact rational and
complex numbers, grids and symbolic differentiation.

	λ (def square (lambda (x) (* x x)))
	λ ((D square) 3)
	6
	λ (map (monad (+ x 1)) (iota 3))
	(1 2 3)

Lisa is released under an MIT license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/lisa/internal/engine"
	"github.com/michaelmacinnis/lisa/internal/system/options"
	"github.com/michaelmacinnis/lisa/internal/system/terminal"
	"github.com/michaelmacinnis/lisa/internal/ui"
)

func main() {
	options.Parse()

	if options.ShowVersion() {
		fmt.Println(options.Version)

		return
	}

	e := engine.New(options.Args()...)

	if options.Interactive() {
		ui.Run(e, options.Terminal(), options.Quiet())

		return
	}

	name, text, err := source()
	if err == nil {
		err = ui.Batch(os.Stdout, e, name, text, terminal.Width(int(os.Stdout.Fd())), options.Quiet())
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func source() (string, string, error) {
	if expression := options.Expression(); expression != "" {
		return "-c", expression, nil
	}

	if path := options.Script(); path != "" {
		b, err := os.ReadFile(path)

		return path, string(b), err
	}

	b, err := io.ReadAll(os.Stdin)

	return "stdin", string(b), err
}
