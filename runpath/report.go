package runpath

import (
	"errors"
	"fmt"
)

// FormatResult renders a MinCost outcome for display: the cost as a
// decimal number, "not reachable" for ErrNotReachable, or the error
// text for anything else.
func FormatResult(cost int64, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("%d", cost)
	case errors.Is(err, ErrNotReachable):
		return "not reachable"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
