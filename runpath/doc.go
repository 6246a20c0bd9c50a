// Package runpath provides an exact minimum-cost router for rectangular
// cost grids under momentum constraints: no reversals, and every run of
// consecutive same-direction steps must fall within a configurable
// [minRun, maxRun] window.
//
// Overview:
//
//   - MinCost runs Dijkstra's algorithm over an augmented state space of
//     (coordinate, direction, run-length) triples rather than over the
//     raw grid, because the legality and cost of the next move depend on
//     how the current cell was entered.
//   - A turn commits to exactly minRun consecutive steps as one atomic
//     transition (all entered cells are summed, and the whole transition
//     is pruned if any cell leaves the grid); continuing straight takes
//     single steps until the run reaches maxRun.
//   - The very first move from the origin is a documented exception: a
//     single step in any direction, exempt from the minRun commitment,
//     with ordinary run accounting from then on.
//
// When to use:
//
//   - Routing where momentum or turn radius matters: vehicles that must
//     travel a minimum block count before turning, conveyor or rail
//     layouts with forced straight segments, movement rules in
//     grid-based games.
//   - With minRun=1 and a large maxRun the engine degenerates to plain
//     no-reversal shortest path, so it also covers the unconstrained case.
//
// Key features:
//
//   - Functional options select the regime, the endpoints, an optional
//     exploration cost cap, and an optional wall threshold without
//     changing the API signature.
//   - One search invocation owns all of its state; a Grid can serve any
//     number of sequential searches.
//   - Unreachability is a sentinel error (ErrNotReachable), never a panic.
//
// Performance and complexity, with N = rows×cols and R = maxRun:
//
//   - Time:  O(N·R·minRun · log(N·R))
//   - Space: O(N·R) — the ledger holds at most one entry per
//     (cell, direction, run) triple.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:                nil *grid.Grid passed to MinCost.
//   - ErrBadRegime:              minRun < 1 or maxRun < minRun.
//   - ErrOriginOutOfBounds:      explicit origin outside the grid.
//   - ErrDestinationOutOfBounds: explicit destination outside the grid.
//   - ErrNotReachable:           no route satisfies the regime; a normal
//     outcome for callers to branch on, not a failure.
//   - ErrBadMaxCost / ErrBadWallThreshold: panic messages for invalid
//     option arguments (configuration bugs fail fast).
//
// API reference:
//
//	func MinCost(g *grid.Grid, opts ...Option) (int64, error)
//
//	  - g:    the cost grid; build it with grid.New or grid.Parse.
//	  - opts: zero or more functional options:
//	      • WithRuns(min, max):     the run regime (default 1, 3).
//	      • WithOrigin(c):          start cell (default top-left).
//	      • WithDestination(c):     goal cell (default bottom-right).
//	      • WithMaxCost(x):         skip states costlier than x.
//	      • WithWallThreshold(t):   cells costing ≥ t are impassable.
//
// Thread safety:
//
//   - MinCost shares nothing between invocations; concurrent searches
//     over the same (immutable) Grid are safe.
//
// See also:
//
//   - grid.Parse / grid.ParseDelimited: build grids from raw text.
package runpath
