// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lisa language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/lisa/internal/engine"
	"github.com/michaelmacinnis/lisa/internal/reader"
	"github.com/michaelmacinnis/lisa/internal/system/history"
	"github.com/michaelmacinnis/lisa/internal/system/terminal"
	"github.com/peterh/liner"
)

const prompt = "λ "

// Prompter is the line editing interface used by the REPL.
type Prompter interface {
	AppendHistory(line string)
	Prompt(p string) (string, error)
}

// Batch evaluates text and prints each result to w unless quiet is set.
// It stops at the first error.
func Batch(w io.Writer, e *engine.T, name, text string, width int, quiet bool) error {
	results, err := e.EvalString(name, text)

	if !quiet {
		for _, c := range results {
			Print(w, c, width)
		}
	}

	return err
}

// Run launches the REPL on the terminal fd. It returns at end of input.
func Run(e *engine.T, fd int, quiet bool) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e.Names))

	err := history.Load(cli.ReadHistory)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	Loop(cli, e, os.Stdout, os.Stderr, func() int {
		return terminal.Width(fd)
	}, quiet)

	err = history.Save(cli.WriteHistory)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// Loop reads lines from p until end of input, evaluating each datum as it
// is completed. Results are printed to out and errors to errs.
func Loop(p Prompter, e *engine.T, out, errs io.Writer, width func() int, quiet bool) {
	r := reader.New("stdin")
	defer func() {
		r.Close()
	}()

	for {
		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Discard any partial datum.
			r.Close()
			r = reader.New("stdin")

			continue
		} else if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(errs, err)
			}

			fmt.Fprintln(out)

			return
		}

		if strings.TrimSpace(line) != "" {
			p.AppendHistory(line)
		}

		data, err := r.Scan(line + "\n")
		if err != nil {
			fmt.Fprintln(errs, err)

			r.Close()
			r = reader.New("stdin")

			continue
		}

		for _, c := range data {
			v, err := e.Evaluate(c)
			if err != nil {
				fmt.Fprintln(errs, err)

				continue
			}

			if !quiet {
				Print(out, v, width())
			}
		}
	}
}

// Completer returns a liner word completer for the names returned by names.
func Completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		runes := []rune(line)

		head = string(runes[:pos])
		tail = string(runes[pos:])

		start := strings.LastIndexAny(head, " \t()'\"") + 1
		prefix := head[start:]
		head = head[:start]

		for _, n := range names() {
			if strings.HasPrefix(n, prefix) {
				completions = append(completions, n)
			}
		}

		return head, completions, tail
	}
}
