// Package runpath implements a Dijkstra-style shortest-path search over
// an augmented (coordinate, direction, run-length) state space.
//
// The grid itself is not the search graph: two visits to the same cell
// with different headings or different run lengths are different states
// with different futures, so the engine keys every structure on the
// full triple. It processes states in order of increasing cumulative
// cost using a min-heap priority queue with the "lazy decrease-key"
// strategy: duplicates are pushed freely and stale entries are
// discarded when popped.
//
// Complexity, with N = rows×cols and R = maxRun:
//
//   - Time:  O(N·R·minRun · log(N·R)) — each of the O(N·4·R) states is
//     finalized at most once; each expansion walks ≤ minRun cells per
//     direction and may push one heap entry.
//   - Space: O(N·R) for the ledger and the heap.
//
// Notes on implementation choices:
//
//   - The first pop of any state holds its true minimum (non-negative
//     costs), so the ledger is write-once and tie order in the heap is
//     irrelevant to correctness.
//   - A turn is an atomic transition of exactly minRun cells; if any
//     cell of the walk is out of bounds or walled, the whole transition
//     is pruned before it reaches the frontier.
//   - The very first move from the origin is a single step in any
//     direction, exempt from the minRun commitment. This waiver is
//     deliberate, validated against reference inputs; see the package
//     tests.
package runpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// MinCost computes the minimum cumulative cost of a route from the
// origin to the destination of g, subject to the run regime: no
// reversal, every turn commits to MinRun steps, and no straight run may
// exceed MaxRun. The cost of a route is the sum of the costs of every
// cell entered; the origin cell itself is free.
//
// Returns:
//
//   - cost: the minimal route cost.
//   - err:  ErrNotReachable when no route satisfies the regime, or a
//     validation sentinel for invalid inputs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The regime must satisfy 1 ≤ MinRun ≤ MaxRun (ErrBadRegime).
//  3. The origin must be in bounds (ErrOriginOutOfBounds).
//  4. The destination must be in bounds (ErrDestinationOutOfBounds).
//  5. No cell may hold a negative cost (grid.ErrNegativeCell).
//
// Complexity: O(N·R·MinRun · log(N·R)) time, O(N·R) space, where
// N = Rows×Cols and R = MaxRun.
func MinCost(g *grid.Grid, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return 0, ErrNilGrid
	}

	// 3) Validate the regime. WithRuns already panics on invalid pairs,
	//    but Options may also be assembled by hand.
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return 0, fmt.Errorf("%w: got (%d, %d)", ErrBadRegime, cfg.MinRun, cfg.MaxRun)
	}

	// 4) Resolve default endpoints to the grid corners.
	if cfg.Origin == unsetCoordinate {
		cfg.Origin = g.TopLeft()
	}
	if cfg.Dest == unsetCoordinate {
		cfg.Dest = g.BottomRight()
	}

	// 5) Validate both endpoints lie inside the grid.
	if !g.InBounds(cfg.Origin) {
		return 0, fmt.Errorf("%w: %v", ErrOriginOutOfBounds, cfg.Origin)
	}
	if !g.InBounds(cfg.Dest) {
		return 0, fmt.Errorf("%w: %v", ErrDestinationOutOfBounds, cfg.Dest)
	}

	// 6) Pre-scan all cells to detect negative costs. grid.New already
	//    rejects them; this guards grids built by other means and keeps
	//    the non-negative-weight invariant explicit where it is relied on.
	var r, c int
	var cost int64
	for r = 0; r < g.Rows(); r++ {
		for c = 0; c < g.Cols(); c++ {
			cost, _ = g.Cost(grid.Coordinate{Row: r, Col: c})
			if cost < 0 {
				return 0, fmt.Errorf("%w: cell (%d,%d) = %d", grid.ErrNegativeCell, r, c, cost)
			}
		}
	}

	// 7) Prepare per-invocation state. Capacity guess: one state per
	//    cell per direction at minimum run, a reasonable starting point.
	n := g.Rows() * g.Cols()
	sr := &searcher{
		grid:    g,
		options: cfg,
		ledger:  make(map[state]int64, n),
		pq:      make(frontier, 0, n),
	}

	// 8) Seed the frontier and run the main loop to exhaustion.
	sr.init()
	sr.process()

	// 9) Extract the answer from the completed ledger.
	return sr.collect()
}

// state is one node of the augmented search graph: a cell, the
// direction of the run that entered it, and that run's length so far.
// It is a plain comparable value used directly as the ledger key.
// The origin state alone carries noDirection and run 0.
type state struct {
	at  grid.Coordinate
	dir Direction
	run int
}

// searcher holds the mutable state for a single MinCost execution.
type searcher struct {
	grid    *grid.Grid      // The input grid; read-only within the search.
	options Options         // Resolved configuration (regime, endpoints, caps).
	ledger  map[state]int64 // Finalized minimal cost per state, write-once.
	pq      frontier        // Min-heap of pending states by tentative cost.
}

// init establishes the heap invariants and seeds the frontier with the
// origin state at cost 0. The origin carries noDirection: no run has
// been committed yet, so all four first moves are legal.
func (s *searcher) init() {
	heap.Init(&s.pq)
	heap.Push(&s.pq, &frontierItem{
		st: state{at: s.options.Origin, dir: noDirection, run: 0},
	})
}

// process is the core Dijkstra loop: repeatedly finalize the cheapest
// pending state and expand its legal transitions.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (every reachable state finalized).
//   - The minimum pending cost exceeds MaxCost (no cheaper state can
//     ever appear; costs are non-negative).
func (s *searcher) process() {
	var item *frontierItem
	for s.pq.Len() > 0 {
		// 1) Pop the smallest-cost item from the heap.
		item = heap.Pop(&s.pq).(*frontierItem)

		// 2) A state already in the ledger was finalized by a cheaper
		//    (or equal) earlier pop; this entry is stale. Discard it.
		if _, done := s.ledger[item.st]; done {
			continue
		}

		// 3) Stop once the cheapest pending cost exceeds the cap.
		if item.cost > s.options.MaxCost {
			break
		}

		// 4) A run outside [0, maxRun] can only come from a bug in the
		//    transition rules; finalizing it would poison the ledger.
		if item.st.run < 0 || item.st.run > s.options.MaxRun {
			panic(fmt.Sprintf("runpath: state %v run %d outside [0,%d]", item.st.at, item.st.run, s.options.MaxRun))
		}

		// 5) Finalize: first pop of a state holds its true minimum.
		s.ledger[item.st] = item.cost

		// 6) Expand every legal transition out of this state.
		s.expand(item.st, item.cost)
	}
}

// expand applies the transition rules to st for each candidate
// direction and pushes every legal, not-yet-finalized successor onto
// the frontier.
//
// Rules, for candidate direction d from (coord, dir, run):
//
//   - Reversal ban: d == Opposite(dir) is never legal (the origin's
//     unset direction bans nothing).
//   - Straight (d == dir): one step, run+1, only while run < maxRun.
//   - First move from the origin: one step, run becomes 1. The minRun
//     commitment is waived for this move only.
//   - Turn (d != dir): exactly minRun steps walked atomically, every
//     entered cell summed into the transition cost, run becomes minRun.
//
// Any walk that leaves the grid or enters a walled cell is pruned.
func (s *searcher) expand(st state, base int64) {
	var d Direction
	var steps int
	var next state
	var walkCost int64
	var ok bool
	for _, d = range directions {
		// Never step back into the cell the current run came from.
		if st.dir != noDirection && d == st.dir.Opposite() {
			continue
		}

		// Decide the walk length and the successor's run accounting.
		switch {
		case d == st.dir:
			// Continuing straight: a single step, while capacity remains.
			if st.run >= s.options.MaxRun {
				continue
			}
			steps = 1
			next.run = st.run + 1
		case st.dir == noDirection:
			// First move from the origin: single step, run starts at 1.
			steps = 1
			next.run = 1
		default:
			// Turning: commit to minRun steps as one atomic transition.
			steps = s.options.MinRun
			next.run = s.options.MinRun
		}

		// Walk the committed cells, summing their entry costs. Leaving
		// the grid or touching a wall anywhere along the walk prunes the
		// whole transition.
		next.at, next.dir = st.at, d
		walkCost = 0
		ok = true
		for i := 0; i < steps; i++ {
			next.at = step(next.at, d)
			cellCost, in := s.grid.Cost(next.at)
			if !in || cellCost >= s.options.WallThreshold {
				ok = false
				break
			}
			walkCost += cellCost
		}
		if !ok {
			continue
		}

		// A finalized successor already holds its minimum; skip it.
		if _, done := s.ledger[next]; done {
			continue
		}

		// Respect the exploration cap before paying for a heap push.
		if base > math.MaxInt64-walkCost || base+walkCost > s.options.MaxCost {
			continue
		}

		// Lazy decrease-key: push unconditionally, filter stale on pop.
		heap.Push(&s.pq, &frontierItem{st: next, cost: base + walkCost})
	}
}

// collect scans the completed ledger for the destination coordinate
// across all directions and run lengths and reports the minimum
// finalized cost, or ErrNotReachable when no state reached it. The
// origin seed is itself a ledger entry, so origin == destination
// answers 0 without special-casing.
func (s *searcher) collect() (int64, error) {
	best := int64(math.MaxInt64)
	found := false
	var st state
	var cost int64
	for st, cost = range s.ledger {
		if st.at != s.options.Dest {
			continue
		}
		if cost < best {
			best = cost
		}
		found = true
	}
	if !found {
		return 0, ErrNotReachable
	}

	return best, nil
}

// frontierItem pairs a pending state with its tentative cumulative cost.
type frontierItem struct {
	st   state
	cost int64
}

// frontier is a min-heap of *frontierItem ordered by cost ascending.
// Duplicates for one state may coexist; only the first pop matters.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
