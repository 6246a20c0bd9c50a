package runpath

import "errors"

// Sentinel errors returned by the MinCost engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to MinCost.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrBadRegime indicates an invalid run regime: minRun must be at
	// least 1 and maxRun must be at least minRun.
	ErrBadRegime = errors.New("runpath: regime requires 1 <= minRun <= maxRun")

	// ErrOriginOutOfBounds indicates the requested origin cell lies
	// outside the grid.
	ErrOriginOutOfBounds = errors.New("runpath: origin out of grid bounds")

	// ErrDestinationOutOfBounds indicates the requested destination cell
	// lies outside the grid.
	ErrDestinationOutOfBounds = errors.New("runpath: destination out of grid bounds")

	// ErrNotReachable indicates the search completed without finalizing
	// any state at the destination: no route satisfies the regime. This
	// is a normal outcome, not a failure of the engine.
	ErrNotReachable = errors.New("runpath: destination not reachable under regime")

	// ErrBadMaxCost indicates MaxCost was set to a negative value,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("runpath: MaxCost must be non-negative")

	// ErrBadWallThreshold indicates WallThreshold was set to zero or
	// negative, which would make every cell (including zero-cost cells)
	// impassable.
	ErrBadWallThreshold = errors.New("runpath: WallThreshold must be positive")
)
