package stats

import "math"

// Percentile returns the value at percentile p (0-100) of an
// ascending-sorted sample using linear interpolation between closest ranks.
// An empty sample returns 0; callers must check for an empty sample
// themselves before treating the result as data.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	idx := (p / 100) * float64(len(sorted)-1)
	lower := math.Floor(idx)
	upper := math.Ceil(idx)
	if lower == upper {
		return sorted[int(idx)]
	}

	frac := idx - lower
	return sorted[int(lower)]*(1-frac) + sorted[int(upper)]*frac
}
