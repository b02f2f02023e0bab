// Released under an MIT license. See LICENSE.

// Package grid provides lisa's two-dimensional array type.
package grid

import (
	"strings"

	"github.com/michaelmacinnis/lisa/internal/common"
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
)

const name = "grid"

// T (grid) is an immutable rows × cols array of cells stored in row-major order.
type T struct {
	cells []cell.I
	cols  int
	rows  int
}

type grid = T

// New creates a grid by calling generate for every (row, col) index pair.
func New(rows, cols int, generate func(r, c int) cell.I) cell.I {
	if rows < 0 || cols < 0 {
		fault.Raise(fault.IndexOutOfBounds, "grid dimensions must not be negative: %d×%d", rows, cols)
	}

	g := &grid{cells: make([]cell.I, 0, rows*cols), cols: cols, rows: rows}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells = append(g.cells, generate(r, c))
		}
	}

	return g
}

// At returns the cell at row r and column c.
func (g *grid) At(r, c int) cell.I {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		fault.Raise(fault.IndexOutOfBounds, "index (%d %d) outside %d×%d grid", r, c, g.rows, g.cols)
	}

	return g.cells[r*g.cols+c]
}

// Dims returns the number of rows and columns in the grid g.
func (g *grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Equal returns true if c is a grid of the same shape with equal cells.
func (g *grid) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if o.rows != g.rows || o.cols != g.cols {
		return false
	}

	for i, v := range g.cells {
		if !v.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Kind returns cell.Grid.
func (g *grid) Kind() cell.Kind {
	return cell.Grid
}

// Literal returns the literal representation of the grid g.
func (g *grid) Literal() string {
	rows := g.Table()

	s := make([]string, len(rows))
	for i, r := range rows {
		s[i] = "[" + strings.Join(r, " ") + "]"
	}

	return "(grid " + strings.Join(s, " ") + ")"
}

// Name returns the name for a grid type.
func (g *grid) Name() string {
	return name
}

// Rows returns the grid g as a list of row lists.
func (g *grid) Rows() cell.I {
	rows := make([]cell.I, g.rows)

	for r := range rows {
		rows[r] = list.New(g.cells[r*g.cols : (r+1)*g.cols]...)
	}

	return list.Of(rows)
}

// String returns the text representation of the grid g.
func (g *grid) String() string {
	return g.Literal()
}

// Table returns the literal representation of every cell, by row.
func (g *grid) Table() [][]string {
	table := make([][]string, g.rows)

	for r := range table {
		table[r] = make([]string, g.cols)

		for c := range table[r] {
			table[r][c] = literal.String(g.cells[r*g.cols+c])
		}
	}

	return table
}

// Is returns true if c is a grid.
func Is(c cell.I) bool {
	_, ok := c.(*grid)

	return ok
}

// To returns a grid if c is a grid; Otherwise it panics.
func To(c cell.I) *grid {
	if t, ok := c.(*grid); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t grid

	// The grid type is a cell.
	_ = cell.I(&t)

	// The grid type has a literal representation.
	_ = literal.I(&t)

	// The grid type is a stringer.
	_ = common.Stringer(&t)
}
