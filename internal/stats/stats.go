package stats

import (
	"fmt"

	tkerrors "tablekit/internal/errors"
)

// MovingAverage computes a simple moving average over seq.
//
// For each starting position i from 0 to len(seq)-window, the output
// holds the arithmetic mean of the window consecutive values starting
// at i, so the result has length len(seq) - window + 1.
//
// Returns an invalid-value error when window is not positive or is
// larger than the sequence length.
func MovingAverage(seq []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInvalidWindow,
			"window must be a positive integer",
			window,
		)
	}
	if window > len(seq) {
		return nil, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInvalidWindow,
			fmt.Sprintf("window %d is larger than the sequence length %d", window, len(seq)),
			map[string]int{"window": window, "length": len(seq)},
		)
	}

	out := make([]float64, len(seq)-window+1)

	// Rolling sum: subtract the value leaving the window, add the one
	// entering it.
	var sum float64
	for _, v := range seq[:window] {
		sum += v
	}
	out[0] = sum / float64(window)
	for i := 1; i < len(out); i++ {
		sum += seq[i+window-1] - seq[i-1]
		out[i] = sum / float64(window)
	}
	return out, nil
}

// ZScore standardizes seq: each value x becomes (x - mean) / stddev,
// where mean and the population standard deviation are computed over
// the whole sequence.
//
// Returns an invalid-value error when seq is empty or when the
// standard deviation is zero (constant sequence, division undefined).
func ZScore(seq []float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, tkerrors.InvalidValue(tkerrors.CodeEmptySequence, "cannot compute z-scores of an empty sequence")
	}

	mean, _ := Mean(seq)
	std, _ := StdDev(seq)
	if std == 0 {
		return nil, tkerrors.InvalidValue(tkerrors.CodeZeroVariance, "standard deviation is zero; z-scores are undefined")
	}

	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = (v - mean) / std
	}
	return out, nil
}

// MinMaxScale maps seq linearly onto [0, 1]: each value x becomes
// (x - min) / (max - min).
//
// Returns an invalid-value error when seq is empty or when all values
// are equal (zero range, scaling undefined).
func MinMaxScale(seq []float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, tkerrors.InvalidValue(tkerrors.CodeEmptySequence, "cannot scale an empty sequence")
	}

	minVal, maxVal := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if minVal == maxVal {
		return nil, tkerrors.InvalidValue(tkerrors.CodeZeroRange, "all values are equal; min-max scaling is undefined")
	}

	span := maxVal - minVal
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = (v - minVal) / span
	}
	return out, nil
}
