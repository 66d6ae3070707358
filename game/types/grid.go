package types

import "github.com/pkg/errors"

// Grid is the fixed cell geometry of a session. It is a value type and is
// never mutated after NewGrid returns.
type Grid struct {
	cols    int
	rows    int
	spacing int
	width   int
	height  int
}

// NewGrid derives the column and row count of a width x height screen split
// into square cells of the given spacing.
func NewGrid(spacing, width, height int) (Grid, error) {
	if spacing <= 0 {
		return Grid{}, errors.Errorf("grid spacing must be positive, got %d", spacing)
	}
	if width <= 0 || height <= 0 {
		return Grid{}, errors.Errorf("screen size must be positive, got %dx%d", width, height)
	}
	if width%spacing != 0 {
		return Grid{}, errors.Errorf("screen width %d must be divisible by grid spacing %d", width, spacing)
	}
	if height%spacing != 0 {
		return Grid{}, errors.Errorf("screen height %d must be divisible by grid spacing %d", height, spacing)
	}

	return Grid{
		cols:    width / spacing,
		rows:    height / spacing,
		spacing: spacing,
		width:   width,
		height:  height,
	}, nil
}

func (g Grid) Cols() int    { return g.cols }
func (g Grid) Rows() int    { return g.rows }
func (g Grid) Spacing() int { return g.spacing }
func (g Grid) Width() int   { return g.width }
func (g Grid) Height() int  { return g.height }

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.cols * g.rows
}

// CellAt converts a column/row pair into a pixel position.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.spacing, Y: row * g.spacing}
}

// Center returns the cell at (cols/2, rows/2).
func (g Grid) Center() Point {
	return g.CellAt(g.cols/2, g.rows/2)
}

// Contains reports whether p is an aligned position inside the grid.
func (g Grid) Contains(p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.width || p.Y >= g.height {
		return false
	}
	return p.X%g.spacing == 0 && p.Y%g.spacing == 0
}

// Wrap folds a position that stepped past an edge back onto the opposite
// edge. Each axis is handled independently.
func (g Grid) Wrap(p Point) Point {
	maxX := g.width - g.spacing
	maxY := g.height - g.spacing

	if p.X < 0 {
		p.X = maxX
	}
	if p.X > maxX {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = maxY
	}
	if p.Y > maxY {
		p.Y = 0
	}
	return p
}

// Sentinel is an off-grid position that never equals any cell.
func (g Grid) Sentinel() Point {
	return Point{X: -g.spacing, Y: -g.spacing}
}
