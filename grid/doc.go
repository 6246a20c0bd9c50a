// Package grid provides an immutable rectangular grid of non-negative
// integer movement costs, plus loaders that build grids from raw text.
//
// Overview:
//
//   - A Grid maps a Coordinate (row, column) to the cost of entering
//     that cell. It is built once, deep-copied from its input, and
//     never mutated afterwards, so it can be shared freely between
//     searches.
//   - Coordinate is a plain value type with value equality; it is the
//     identity used throughout the module (map keys, search states).
//   - Two loaders cover the common input shapes: Parse for dense
//     single-digit grids (one rune per cell) and ParseDelimited for
//     separated multi-digit cells.
//
// Errors (sentinel):
//
//   - ErrEmptyGrid      if the input has no rows or no columns.
//   - ErrNonRectangular if rows have differing lengths.
//   - ErrNegativeCell   if any cell value is negative.
//   - ErrBadCell        if a text cell is not a valid number.
//
// Complexity: construction and parsing are O(rows×cols) time and
// memory; Cost and InBounds are O(1).
package grid
