package calculator

import (
	"fmt"
	"math"
)

// GeometricMean returns the Nth root of the product of N values.
// Logs are summed so long series do not overflow.
func GeometricMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	sum := 0.0
	for i, v := range values {
		if v <= 0 {
			return 0, fmt.Errorf("geometric mean: value %d is not positive (%g)", i, v)
		}
		sum += math.Log(v)
	}
	return math.Exp(sum / float64(len(values))), nil
}
