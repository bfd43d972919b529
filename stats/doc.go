// Package stats computes descriptive statistics over numeric columns.
//
// Describe extracts one column as a numeric series, drops missing values,
// and returns mean, min, max, and sample standard deviation:
//
//	result, err := stats.Describe(tbl, table.ByName("temperature"))
//
// The standard deviation uses divisor n-1 and is exactly 0 when a single
// value remains. Describe fails with ErrNoData when no numeric values
// survive coercion.
//
// MovingAverage computes a trailing moving average with a minimum period
// of 1, so the result is defined at every point of the series:
//
//	smoothed := stats.MovingAverage(values, 7)
package stats
