// Package runpath_test contains unit tests for the MinCost engine.
// These tests validate input checking, the four canonical regime
// scenarios, the degeneration to plain shortest path, and the
// wall-threshold and max-cost options.
package runpath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/runpath"
)

// onesGrid builds an n×m grid with every cell cost 1.
func onesGrid(t *testing.T, n, m int) *grid.Grid {
	t.Helper()
	values := make([][]int64, n)
	for r := range values {
		values[r] = make([]int64, m)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	g, err := grid.New(values)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestMinCost_NilGrid(t *testing.T) {
	// A nil grid must be rejected before anything else runs.
	_, err := runpath.MinCost(nil)
	if !errors.Is(err, runpath.ErrNilGrid) {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestMinCost_BadRegimePanicsInOption(t *testing.T) {
	// WithRuns panics on invalid pairs, like the other option constructors.
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic from WithRuns(0, 3)")
		}
	}()
	runpath.WithRuns(0, 3)(&runpath.Options{})
}

func TestMinCost_BadRegimeHandRolledOptions(t *testing.T) {
	// A regime assembled without WithRuns still fails validation inside
	// MinCost: maxRun below minRun is meaningless.
	g := onesGrid(t, 2, 2)
	_, err := runpath.MinCost(g, func(o *runpath.Options) { o.MinRun = 5; o.MaxRun = 2 })
	if !errors.Is(err, runpath.ErrBadRegime) {
		t.Fatalf("Expected ErrBadRegime, got %v", err)
	}
}

func TestMinCost_OriginOutOfBounds(t *testing.T) {
	g := onesGrid(t, 3, 3)
	_, err := runpath.MinCost(g, runpath.WithOrigin(grid.Coordinate{Row: 3, Col: 0}))
	if !errors.Is(err, runpath.ErrOriginOutOfBounds) {
		t.Fatalf("Expected ErrOriginOutOfBounds, got %v", err)
	}
}

func TestMinCost_DestinationOutOfBounds(t *testing.T) {
	g := onesGrid(t, 3, 3)
	_, err := runpath.MinCost(g, runpath.WithDestination(grid.Coordinate{Row: 0, Col: -1}))
	if !errors.Is(err, runpath.ErrDestinationOutOfBounds) {
		t.Fatalf("Expected ErrDestinationOutOfBounds, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Canonical Scenarios: the four regime shapes every change must keep.
// ------------------------------------------------------------------------

func TestMinCost_ScenarioA_FreeTurning(t *testing.T) {
	// 3×3 all-ones grid, regime (1,3): two steps right and two steps
	// down (in any interleaving) enter four cells of cost 1.
	g := onesGrid(t, 3, 3)
	cost, err := runpath.MinCost(g, runpath.WithRuns(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 4 {
		t.Errorf("cost = %d; want 4", cost)
	}
}

func TestMinCost_ScenarioB_LongCommit(t *testing.T) {
	// 5×5 all-ones grid, regime (4,10): one run of four right, one run
	// of four down.
	g := onesGrid(t, 5, 5)
	cost, err := runpath.MinCost(g, runpath.WithRuns(4, 10))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 8 {
		t.Errorf("cost = %d; want 8", cost)
	}
}

func TestMinCost_ScenarioC_TurnImpossible(t *testing.T) {
	// 2×3 grid with minRun=4: every turn would walk off the grid, so the
	// far corner can never be reached. This is the normal NotReachable
	// outcome, not an engine failure.
	g := onesGrid(t, 2, 3)
	_, err := runpath.MinCost(g, runpath.WithRuns(4, 10))
	if !errors.Is(err, runpath.ErrNotReachable) {
		t.Fatalf("Expected ErrNotReachable, got %v", err)
	}
}

func TestMinCost_ScenarioD_SingleCell(t *testing.T) {
	// Origin equals destination: the seed state is finalized at cost 0,
	// whatever the regime.
	g, err := grid.New([][]int64{{7}})
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}
	for _, regime := range [][2]int{{1, 3}, {4, 10}} {
		cost, err := runpath.MinCost(g, runpath.WithRuns(regime[0], regime[1]))
		if err != nil {
			t.Fatalf("regime %v: %v", regime, err)
		}
		if cost != 0 {
			t.Errorf("regime %v: cost = %d; want 0", regime, cost)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Degeneration: minRun=1 with a roomy maxRun is plain shortest path.
// ------------------------------------------------------------------------

func TestMinCost_DegeneratesToShortestPath(t *testing.T) {
	// On the 13×13 reference grid the unconstrained (reversal-free)
	// shortest path costs 78; regime (1,13) must match it because every
	// turn is a single step and no run can hit the cap.
	g, err := grid.Parse(referenceGrid13)
	if err != nil {
		t.Fatalf("grid.Parse error: %v", err)
	}
	cost, err := runpath.MinCost(g, runpath.WithRuns(1, 13))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 78 {
		t.Errorf("cost = %d; want 78", cost)
	}
}

// ------------------------------------------------------------------------
// 4. Explicit Endpoints: non-default origin and destination.
// ------------------------------------------------------------------------

func TestMinCost_ExplicitEndpoints(t *testing.T) {
	// Routing the reference grid corner-to-corner in reverse costs 101:
	// the cell sums differ because the origin cell is free and the
	// destination cell is paid.
	g, err := grid.Parse(referenceGrid13)
	if err != nil {
		t.Fatalf("grid.Parse error: %v", err)
	}
	cost, err := runpath.MinCost(
		g,
		runpath.WithRuns(1, 3),
		runpath.WithOrigin(grid.Coordinate{Row: 12, Col: 12}),
		runpath.WithDestination(grid.Coordinate{Row: 0, Col: 0}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 101 {
		t.Errorf("cost = %d; want 101", cost)
	}
}

// ------------------------------------------------------------------------
// 5. WallThreshold Tests: cells at or above the threshold are impassable.
// ------------------------------------------------------------------------

func TestMinCost_WallThresholdBlocksColumn(t *testing.T) {
	// The middle column costs 2 everywhere; with WallThreshold(2) it
	// becomes a solid wall and the right side is unreachable.
	g, err := grid.New([][]int64{
		{1, 2, 1},
		{1, 2, 1},
		{1, 2, 1},
	})
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	// Without the threshold the route crosses the wall once: cost 5.
	cost, err := runpath.MinCost(g, runpath.WithRuns(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 5 {
		t.Errorf("cost = %d; want 5", cost)
	}

	// With it, no route exists.
	_, err = runpath.MinCost(g, runpath.WithRuns(1, 3), runpath.WithWallThreshold(2))
	if !errors.Is(err, runpath.ErrNotReachable) {
		t.Fatalf("Expected ErrNotReachable, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 6. MaxCost Tests: exploration stops beyond the cap.
// ------------------------------------------------------------------------

func TestMinCost_MaxCostLimits(t *testing.T) {
	g, err := grid.Parse(referenceGrid13)
	if err != nil {
		t.Fatalf("grid.Parse error: %v", err)
	}

	// The optimal route costs 102; a cap of 50 cuts exploration short.
	_, err = runpath.MinCost(g, runpath.WithRuns(1, 3), runpath.WithMaxCost(50))
	if !errors.Is(err, runpath.ErrNotReachable) {
		t.Fatalf("Expected ErrNotReachable under cap, got %v", err)
	}

	// A cap equal to the optimum still admits the answer.
	cost, err := runpath.MinCost(g, runpath.WithRuns(1, 3), runpath.WithMaxCost(102))
	if err != nil {
		t.Fatal(err)
	}
	if cost != 102 {
		t.Errorf("cost = %d; want 102", cost)
	}
}

func TestMinCost_MaxCostZeroKeepsOrigin(t *testing.T) {
	// With MaxCost=0 only the free origin state is finalized, so an
	// origin==destination query still answers 0.
	g := onesGrid(t, 3, 3)
	cost, err := runpath.MinCost(
		g,
		runpath.WithMaxCost(0),
		runpath.WithDestination(grid.Coordinate{Row: 0, Col: 0}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
}

// ------------------------------------------------------------------------
// 7. Option Constructor Panics.
// ------------------------------------------------------------------------

func TestOptionPanics(t *testing.T) {
	cases := []struct {
		name string
		call func()
	}{
		{"NegativeMaxCost", func() { runpath.WithMaxCost(-1)(&runpath.Options{}) }},
		{"ZeroWallThreshold", func() { runpath.WithWallThreshold(0)(&runpath.Options{}) }},
		{"InvertedRuns", func() { runpath.WithRuns(5, 2)(&runpath.Options{}) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Expected panic")
				}
			}()
			tc.call()
		})
	}
}

// ------------------------------------------------------------------------
// 8. Defaults and helpers.
// ------------------------------------------------------------------------

func TestDefaultOptions(t *testing.T) {
	o := runpath.DefaultOptions()
	if o.MinRun != 1 || o.MaxRun != 3 {
		t.Errorf("default regime = (%d,%d); want (1,3)", o.MinRun, o.MaxRun)
	}
	if o.MaxCost != math.MaxInt64 || o.WallThreshold != math.MaxInt64 {
		t.Errorf("default caps = (%d,%d); want both MaxInt64", o.MaxCost, o.WallThreshold)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[runpath.Direction]runpath.Direction{
		runpath.North: runpath.South,
		runpath.South: runpath.North,
		runpath.East:  runpath.West,
		runpath.West:  runpath.East,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%v) = %v; want %v", d, got, want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := runpath.FormatResult(42, nil); got != "42" {
		t.Errorf("FormatResult(42, nil) = %q; want \"42\"", got)
	}
	if got := runpath.FormatResult(0, runpath.ErrNotReachable); got != "not reachable" {
		t.Errorf("FormatResult(ErrNotReachable) = %q; want \"not reachable\"", got)
	}
	if got := runpath.FormatResult(0, runpath.ErrNilGrid); got != "error: "+runpath.ErrNilGrid.Error() {
		t.Errorf("FormatResult(ErrNilGrid) = %q", got)
	}
}
