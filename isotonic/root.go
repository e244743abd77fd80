package isotonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SelectRoot returns the index of the greatest priority. On exact ties the
// leftmost index wins, so the choice is deterministic.
func SelectRoot(q []float64) (int, error) {
	if len(q) == 0 {
		return -1, ErrEmptyPriorities
	}
	if err := checkFinite(q); err != nil {
		return -1, err
	}

	return floats.MaxIdx(q), nil
}

// checkFinite rejects NaN and ±Inf; a group mean over them is undefined.
func checkFinite(q []float64) error {
	for v, x := range q {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("isotonic: q[%d]=%g: %w", v, x, ErrInvalidPriority)
		}
	}

	return nil
}
