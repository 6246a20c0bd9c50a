package runpath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/runpath"
)

// randomGrid builds an n×n grid of deterministic pseudo-random costs in
// [1,9], the shape of the reference inputs at scale.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int64, n)
	for r := range values {
		values[r] = make([]int64, n)
		for c := range values[r] {
			values[r][c] = int64(1 + rng.Intn(9))
		}
	}
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	return g
}

// BenchmarkMinCost_FreeTurning measures the (1,3) regime on a 200×200
// grid: the densest state space per cell (every run length reachable).
func BenchmarkMinCost_FreeTurning(b *testing.B) {
	g := randomGrid(b, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runpath.MinCost(g, runpath.WithRuns(1, 3)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinCost_LongCommit measures the (4,10) regime on the same
// grid: fewer frontier pushes per state but longer atomic walks.
func BenchmarkMinCost_LongCommit(b *testing.B) {
	g := randomGrid(b, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runpath.MinCost(g, runpath.WithRuns(4, 10)); err != nil {
			b.Fatal(err)
		}
	}
}
