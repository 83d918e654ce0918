package stats

import (
	"fmt"
	"math"
	"sort"

	tkerrors "tablekit/internal/errors"
)

// Mean returns the arithmetic mean of seq. Errors when seq is empty.
func Mean(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, tkerrors.InvalidValue(tkerrors.CodeEmptySequence, "cannot compute the mean of an empty sequence")
	}
	var sum float64
	for _, v := range seq {
		sum += v
	}
	return sum / float64(len(seq)), nil
}

// StdDev returns the population standard deviation of seq (divisor n).
// Errors when seq is empty.
func StdDev(seq []float64) (float64, error) {
	mean, err := Mean(seq)
	if err != nil {
		return 0, err
	}
	var sumSquared float64
	for _, v := range seq {
		d := v - mean
		sumSquared += d * d
	}
	return math.Sqrt(sumSquared / float64(len(seq))), nil
}

// SampleStdDev returns the sample standard deviation of seq
// (divisor n-1). Errors when seq has fewer than two values.
func SampleStdDev(seq []float64) (float64, error) {
	if len(seq) < 2 {
		return 0, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInsufficientData,
			"sample standard deviation needs at least two values",
			len(seq),
		)
	}
	mean, _ := Mean(seq)
	var sumSquared float64
	for _, v := range seq {
		d := v - mean
		sumSquared += d * d
	}
	return math.Sqrt(sumSquared / float64(len(seq)-1)), nil
}

// Quantile returns the q-quantile of seq using linear interpolation
// between closest ranks. q must lie in [0, 1]; seq must be non-empty.
func Quantile(seq []float64, q float64) (float64, error) {
	if len(seq) == 0 {
		return 0, tkerrors.InvalidValue(tkerrors.CodeEmptySequence, "cannot compute a quantile of an empty sequence")
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInvalidQuantile,
			fmt.Sprintf("quantile must be within [0, 1], got %v", q),
			q,
		)
	}

	sorted := make([]float64, len(seq))
	copy(sorted, seq)
	sort.Float64s(sorted)

	return quantileSorted(sorted, q), nil
}

// quantileSorted interpolates the q-quantile of an already sorted,
// non-empty slice.
func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	index := q * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Summary holds the descriptive statistics produced by Describe.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe returns descriptive statistics for seq: count, mean,
// population standard deviation, minimum, quartiles, and maximum.
// Errors when seq is empty.
func Describe(seq []float64) (Summary, error) {
	if len(seq) == 0 {
		return Summary{}, tkerrors.InvalidValue(tkerrors.CodeEmptySequence, "cannot describe an empty sequence")
	}

	mean, _ := Mean(seq)
	std, _ := StdDev(seq)

	sorted := make([]float64, len(seq))
	copy(sorted, seq)
	sort.Float64s(sorted)

	return Summary{
		Count:  len(seq),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Q1:     quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q3:     quantileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}
