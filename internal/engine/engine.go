// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lisa code.
package engine

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/env"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
	"github.com/michaelmacinnis/lisa/internal/engine/boot"
	"github.com/michaelmacinnis/lisa/internal/engine/commands"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
	"github.com/michaelmacinnis/lisa/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating lisa code.
type T struct {
	root *env.T
	x    *executor.T
}

// New creates a new engine. The args are bound to argv as a sequence of text.
func New(args ...string) *T {
	root := env.New("root", nil)

	commands.Install(root)

	argv := make([]cell.I, len(args))
	for i, a := range args {
		argv[i] = str.New(a)
	}

	root.Push("argv", list.Of(argv))

	e := &T{root: root, x: executor.New(root)}

	if _, err := e.EvalString("boot.lisa", boot.Script()); err != nil {
		panic("boot: " + err.Error())
	}

	return e
}

// EvalString reads text and evaluates each datum in turn. It stops at the
// first error and returns the results so far.
func (e *T) EvalString(name, text string) ([]cell.I, error) {
	data, err := reader.Read(name, text)
	if err != nil {
		return nil, err
	}

	results := make([]cell.I, 0, len(data))

	for _, c := range data {
		r, err := e.Evaluate(c)
		if err != nil {
			return results, err
		}

		results = append(results, r)
	}

	return results, nil
}

// Evaluate evaluates c in the root frame and forces the result.
func (e *T) Evaluate(c cell.I) (result cell.I, err error) {
	defer func() {
		fault.Recover(&err, recover())
	}()

	return lazy.Force(e.x.Evaluate(c)), nil
}

// Executor returns an executor for the root frame.
func (e *T) Executor() *executor.T {
	return e.x
}

// Names returns the sorted names bound in the root frame.
func (e *T) Names() []string {
	return e.root.Names()
}

// Root returns the root frame.
func (e *T) Root() *env.T {
	return e.root
}
