// Package gridpath finds minimum-cost routes across rectangular cost
// grids under momentum constraints: a route may never reverse, and any
// run of consecutive same-direction steps must stay within a
// configurable [minRun, maxRun] window.
//
// 🚀 What is gridpath?
//
//	A small, focused library built from two subpackages:
//		• grid/    — immutable rectangular cost grids + text loaders
//		• runpath/ — the constrained shortest-path engine (Dijkstra over
//		  an augmented (coordinate, direction, run-length) state space)
//
// ✨ Why choose gridpath?
//
//   - Exact answers – Dijkstra over non-negative costs, no heuristics
//   - One knob pair – the (minRun, maxRun) regime covers everything
//     from unconstrained routing to long forced straight runs
//   - Pure Go – no cgo, a single test-only dependency
//   - Familiar API – functional options, sentinel errors, value types
//
// Start with grid.Parse or grid.New to build a cost grid, then call
// runpath.MinCost with the regime you need:
//
//	g, err := grid.Parse(input)
//	if err != nil { ... }
//	cost, err := runpath.MinCost(g, runpath.WithRuns(4, 10))
//
// See the examples/ directory for complete programs.
package gridpath
