package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Grid from dense digit text: one line per row, each
// cell a single decimal digit ('0'–'9'). Leading and trailing blank
// lines are ignored. Returns ErrBadCell (wrapped with the offending
// rune and position) for any non-digit cell, ErrEmptyGrid for empty
// input, ErrNonRectangular for ragged lines.
// Complexity: O(len(s)) time, O(rows×cols) memory.
func Parse(s string) (*Grid, error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int64, 0, len(lines))
	for r, line := range lines {
		row := make([]int64, 0, len(line))
		for c, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrBadCell, ch, r, c)
			}
			row = append(row, int64(ch-'0'))
		}
		values = append(values, row)
	}

	return New(values)
}

// ParseDelimited builds a Grid from text with multi-digit cells: one
// line per row, cells separated by sep (or by any run of whitespace
// when sep is empty). Returns ErrBadCell for any cell strconv cannot
// parse, plus the New sentinels for shape violations.
// Complexity: O(len(s)) time, O(rows×cols) memory.
func ParseDelimited(s, sep string) (*Grid, error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int64, 0, len(lines))
	for r, line := range lines {
		var fields []string
		if sep == "" {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, sep)
		}
		row := make([]int64, 0, len(fields))
		for c, f := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrBadCell, f, r, c)
			}
			row = append(row, v)
		}
		values = append(values, row)
	}

	return New(values)
}

// splitLines trims outer blank space and splits s into its non-empty
// constituent lines, preserving interior order.
func splitLines(s string) []string {
	raw := strings.Split(strings.TrimSpace(s), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
