package stats

import "math"

// MovingAverage computes a trailing moving average with the given window,
// using a minimum period of 1 so the result is defined at every point from
// the start of the series. NaN entries are excluded from each window's
// mean; a window holding only NaN yields NaN. The result has the same
// length and order as the input.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	result := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum, n := 0.0, 0
		for _, v := range values[start : i+1] {
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			result[i] = math.NaN()
		} else {
			result[i] = sum / float64(n)
		}
	}
	return result
}
