package grid

import "fmt"

// Coordinate identifies a single cell as (Row, Col), zero-based from
// the top-left corner. Coordinates compare by value and are used as
// map keys throughout the module.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)" for error messages and
// debug output.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular grid of non-negative movement
// costs. Build one with New, Parse, or ParseDelimited; it is safe to
// share between any number of searches because nothing mutates it
// after construction.
type Grid struct {
	rows, cols int
	cells      [][]int64
}

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative values. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCell if any value is negative.
// Complexity: O(rows×cols) time and memory.
func New(values [][]int64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCell, r, c, v)
			}
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int64, cols)
		copy(cells[r], values[r])
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cost returns the movement cost of entering cell c, and true, when c
// is in bounds; out-of-bounds coordinates have no cost and return
// (0, false).
// Complexity: O(1).
func (g *Grid) Cost(c Coordinate) (int64, bool) {
	if !g.InBounds(c) {
		return 0, false
	}

	return g.cells[c.Row][c.Col], true
}

// TopLeft returns the grid's top-left corner (0,0), the default
// origin of a search.
func (g *Grid) TopLeft() Coordinate { return Coordinate{Row: 0, Col: 0} }

// BottomRight returns the grid's bottom-right corner, the default
// destination of a search.
func (g *Grid) BottomRight() Coordinate {
	return Coordinate{Row: g.rows - 1, Col: g.cols - 1}
}
