package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCell indicates a cell with a negative cost value.
	ErrNegativeCell = errors.New("grid: cell costs must be non-negative")
	// ErrBadCell indicates a text cell that is not a valid number.
	ErrBadCell = errors.New("grid: cell is not a valid number")
)
