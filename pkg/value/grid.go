package value

import (
	"errors"
	"fmt"
)

// ErrRaggedGrid is returned by Validate when columns differ in length.
var ErrRaggedGrid = errors.New("value: grid columns have different lengths")

// Grid is an ordered, rectangular, column-major 2-D container: g[col][row].
type Grid[T any] [][]T

// NewGrid builds a cols x rows grid by calling fn for every cell, column by column.
func NewGrid[T any](cols, rows int, fn func(col, row int) T) Grid[T] {
	g := make(Grid[T], cols)
	for col := range g {
		g[col] = make([]T, rows)
		for row := range g[col] {
			g[col][row] = fn(col, row)
		}
	}
	return g
}

// FromRows converts a row-major literal (rows[row][col]) to a grid.
// Every row must have the same length as the first one.
func FromRows[T any](rows [][]T) Grid[T] {
	if len(rows) == 0 {
		return Grid[T]{}
	}
	return NewGrid(len(rows[0]), len(rows), func(col, row int) T {
		return rows[row][col]
	})
}

// Map applies fn to every cell and returns a grid of the same shape.
func Map[T, U any](g Grid[T], fn func(T) U) Grid[U] {
	out := make(Grid[U], len(g))
	for col := range g {
		out[col] = make([]U, len(g[col]))
		for row, v := range g[col] {
			out[col][row] = fn(v)
		}
	}
	return out
}

// NumCols returns the number of columns.
func (g Grid[T]) NumCols() int { return len(g) }

// NumRows returns the number of rows, read from the first column.
func (g Grid[T]) NumRows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsEmpty reports whether the grid holds no cell at all.
func (g Grid[T]) IsEmpty() bool { return g.NumCols() == 0 || g.NumRows() == 0 }

// IsSingle reports whether the grid is 1x1, which broadcasting treats as a scalar.
func (g Grid[T]) IsSingle() bool { return g.NumCols() == 1 && g.NumRows() == 1 }

// At returns the cell at (col, row).
func (g Grid[T]) At(col, row int) T { return g[col][row] }

// ForEach visits every cell column by column. The pointer allows in-place updates.
func (g Grid[T]) ForEach(fn func(col, row int, cell *T)) {
	for col := range g {
		for row := range g[col] {
			fn(col, row, &g[col][row])
		}
	}
}

// Rows returns a row-major copy of the grid.
func (g Grid[T]) Rows() [][]T {
	rows := make([][]T, g.NumRows())
	for row := range rows {
		rows[row] = make([]T, g.NumCols())
		for col := range g {
			rows[row][col] = g[col][row]
		}
	}
	return rows
}

// Validate checks that every column has the same length.
func (g Grid[T]) Validate() error {
	n := g.NumRows()
	for col := range g {
		if len(g[col]) != n {
			return fmt.Errorf("%w: column %d has %d rows, expected %d", ErrRaggedGrid, col, len(g[col]), n)
		}
	}
	return nil
}

// Values builds a payload grid from column-major raw values.
func Values(cols [][]CellValue) Grid[Payload] {
	return Map(Grid[CellValue](cols), Of)
}
