package stats

import (
	"errors"
	"math"

	"github.com/sartorproj/goanalyze/table"
)

// ErrNoData indicates that no numeric values survived coercion.
var ErrNoData = errors.New("no numeric data available to compute statistics")

// Result holds the summary statistics of one numeric column.
type Result struct {
	Mean float64
	Min  float64
	Max  float64
	Std  float64
}

// Describe extracts the referenced column as a numeric series, drops
// missing values, and computes mean, min, max, and sample standard
// deviation (divisor n-1; exactly 0 when a single value remains).
// It returns ErrNoData when nothing numeric remains.
func Describe(t *table.Table, ref table.ColumnRef) (Result, error) {
	series, _, err := t.Numeric(ref)
	if err != nil {
		return Result{}, err
	}
	values := DropMissing(series)
	if len(values) == 0 {
		return Result{}, ErrNoData
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	std := 0.0
	if len(values) > 1 {
		sumSq := 0.0
		for _, v := range values {
			diff := v - mean
			sumSq += diff * diff
		}
		std = math.Sqrt(sumSq / float64(len(values)-1))
	}

	return Result{Mean: mean, Min: min, Max: max, Std: std}, nil
}

// DropMissing returns the values with NaN entries removed.
func DropMissing(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
