// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lisa language.
package parser

import (
	"errors"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/struct/token"
	"github.com/michaelmacinnis/lisa/internal/common/type/cpx"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/num"
	"github.com/michaelmacinnis/lisa/internal/common/type/str"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed datum.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		case common.Stringer:
			err = errors.New(r.String())
		default:
			err = errors.New("unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.datum())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) datum() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		panic("unexpected end of input")

	case t.Is('('):
		p.consume()

		return p.sequence()

	case t.Is(')'):
		panic(t.Source().String() + ": unexpected ')'")

	case t.Is('\''):
		p.consume()

		return list.New(sym.New("quote"), p.datum())

	case t.Is(token.DoubleQuoted):
		p.consume()

		return text(t.Value()[1 : len(t.Value())-1])

	case t.Is(token.DollarSingleQuoted):
		p.consume()

		return text(t.Value()[2 : len(t.Value())-1])
	}

	p.consume()

	return atom(t)
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

func (p *T) sequence() cell.I {
	elements := []cell.I{}

	for t := p.peek(); !t.Is(')'); t = p.peek() {
		elements = append(elements, p.datum())
	}

	p.consume()

	return list.Of(elements)
}

// Helper functions.

func atom(t *token.T) cell.I {
	v := t.Value()

	if v == "nil" {
		return list.Empty
	}

	if n, ok := num.Parse(v); ok {
		return n
	}

	if c, ok := cpx.Parse(v); ok {
		return c
	}

	return sym.Token(t)
}

func text(quoted string) cell.I {
	s, err := adapted.ActualBytes(quoted)
	if err != nil {
		panic(err)
	}

	return str.New(s)
}
