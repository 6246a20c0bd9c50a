// Package runpath defines the types and configuration options for the
// run-constrained shortest-path engine.
//
// The engine searches an augmented state space of (coordinate,
// direction, run-length) triples with Dijkstra's algorithm. Its
// behavior is governed by a regime of two integers:
//
//	– minRun: a turn commits to exactly minRun consecutive steps in the
//	  new direction, taken as one atomic transition.
//	– maxRun: no run of consecutive same-direction steps may exceed it.
//
// Options:
//
//	– WithRuns(min, max):      the regime (default 1, 3).
//	– WithOrigin(c):           explicit start cell (default top-left).
//	– WithDestination(c):      explicit goal cell (default bottom-right).
//	– WithMaxCost(x):          states costlier than x are not explored.
//	– WithWallThreshold(t):    cells with cost ≥ t are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGrid                  if the provided grid is nil.
//	– ErrBadRegime                if minRun < 1 or maxRun < minRun.
//	– ErrOriginOutOfBounds        if the origin lies outside the grid.
//	– ErrDestinationOutOfBounds   if the destination lies outside the grid.
//	– ErrNotReachable             if no constrained route exists.
package runpath

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Direction is one of the four orthogonal movement directions.
type Direction uint8

const (
	// North moves one row up (decreasing Row).
	North Direction = iota
	// East moves one column right (increasing Col).
	East
	// South moves one row down (increasing Row).
	South
	// West moves one column left (decreasing Col).
	West

	// noDirection marks the origin state before any move has committed
	// a direction. It never appears in a non-origin state.
	noDirection
)

// directions lists the four candidate directions in expansion order.
var directions = [4]Direction{North, East, South, West}

// Opposite returns the reverse of d; a route may never step from d
// into Opposite(d).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return noDirection
	}
}

// String renders the direction name for error messages and debug output.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// step returns c moved one cell in direction d.
func step(c grid.Coordinate, d Direction) grid.Coordinate {
	switch d {
	case North:
		c.Row--
	case South:
		c.Row++
	case East:
		c.Col++
	case West:
		c.Col--
	}

	return c
}

// unsetCoordinate marks "use the grid's default corner" in Options.
var unsetCoordinate = grid.Coordinate{Row: -1, Col: -1}

// Options configures the behavior of a MinCost search.
//
// MinRun, MaxRun   – the regime; every turn commits to MinRun steps and
//
//	no straight run may exceed MaxRun. 1 ≤ MinRun ≤ MaxRun.
//
// Origin, Dest     – endpoint cells; {-1,-1} selects the grid corners.
// MaxCost          – exploration cap; states whose cumulative cost
//
//	exceeds it are never finalized. Default math.MaxInt64 (no cap).
//
// WallThreshold    – cells with cost ≥ this value are impassable.
//
//	Must be > 0. Default math.MaxInt64 (no walls).
type Options struct {
	MinRun        int             // Minimum committed run length after a turn
	MaxRun        int             // Maximum consecutive same-direction steps
	Origin        grid.Coordinate // Start cell, or {-1,-1} for top-left
	Dest          grid.Coordinate // Goal cell, or {-1,-1} for bottom-right
	MaxCost       int64           // Maximum cumulative cost to explore
	WallThreshold int64           // Cell-cost threshold treated as impassable
}

// Option represents a functional option for configuring MinCost.
type Option func(*Options)

// WithRuns sets the (minRun, maxRun) regime. Panics with ErrBadRegime's
// message when minRun < 1 or maxRun < minRun; invalid regimes are a
// configuration bug, not a runtime condition.
func WithRuns(minRun, maxRun int) Option {
	return func(o *Options) {
		if minRun < 1 || maxRun < minRun {
			panic(ErrBadRegime.Error())
		}
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithOrigin sets an explicit start cell. Bounds are validated against
// the grid inside MinCost (ErrOriginOutOfBounds).
func WithOrigin(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Origin = c
	}
}

// WithDestination sets an explicit goal cell. Bounds are validated
// against the grid inside MinCost (ErrDestinationOutOfBounds).
func WithDestination(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Dest = c
	}
}

// WithMaxCost caps exploration: any state whose cumulative cost would
// exceed max is neither finalized nor expanded. Must pass a
// non-negative value; negative values cause a panic with
// ErrBadMaxCost's message. Default (if not set) is math.MaxInt64.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithWallThreshold treats every cell whose cost is ≥ threshold as an
// impassable wall: no transition may enter it. Must pass a positive
// value; zero or negative cause a panic with ErrBadWallThreshold's
// message. Default (if not set) is math.MaxInt64 (no walls).
func WithWallThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadWallThreshold.Error())
		}
		o.WallThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-option
// overrides.
//
// Defaults:
//   - MinRun, MaxRun:  1, 3 (free turning, runs capped at three).
//   - Origin, Dest:    grid corners (top-left → bottom-right).
//   - MaxCost:         math.MaxInt64 (no cap).
//   - WallThreshold:   math.MaxInt64 (no walls).
func DefaultOptions() Options {
	return Options{
		MinRun:        1,
		MaxRun:        3,
		Origin:        unsetCoordinate,
		Dest:          unsetCoordinate,
		MaxCost:       math.MaxInt64,
		WallThreshold: math.MaxInt64,
	}
}
