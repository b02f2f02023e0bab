// Released under an MIT license. See LICENSE.

// Package reader turns lisa source text into cells.
package reader

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/token"
	"github.com/michaelmacinnis/lisa/internal/reader/lexer"
	"github.com/michaelmacinnis/lisa/internal/reader/parser"
)

// T (reader) encapsulates the lisa lexer and parser for incremental input.
// After Scan returns an error the reader must be discarded.
type T struct {
	e chan error
	i chan string
	o chan []cell.I
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		e: make(chan error, 1),
		i: make(chan string),
		o: make(chan []cell.I),
		s: lexer.New(name),
	}

	var v []cell.I

	r.p = parser.New(func(c cell.I) {
		v = append(v, c)
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- v

			v = nil

			if !r.next() {
				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	go r.start()

	return r
}

// Read returns every datum in text. Label names the source in errors.
func Read(label, text string) ([]cell.I, error) {
	l := lexer.New(label)

	l.Scan(text + "\n")

	var data []cell.I

	err := parser.New(func(c cell.I) {
		data = append(data, c)
	}, l.Token).Parse()

	return data, err
}

// Close terminates the reader.
func (r *reader) Close() {
	close(r.i)
}

// Scan reads the line and returns the data it completed, if any.
// If scan encounters any error it returns the error.
func (r *reader) Scan(line string) (c []cell.I, err error) {
	r.i <- line

	select {
	case c = <-r.o:
	case err = <-r.e:
	}

	return c, err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	if r.next() {
		r.e <- r.p.Parse()
	}
}
