// Package plot renders numeric columns as line charts and histograms.
//
// RenderSeries draws a column as a connected line with point markers. When
// the table has a date-like column (date, time, or timestamp, in that
// priority order) whose values parse as timestamps, it becomes the x-axis;
// otherwise the row index is used. An optional trailing moving average is
// overlaid as a second, wider line:
//
//	path, err := plot.RenderSeries(tbl, table.ByName("temperature"), "out/plot.png", plot.Options{
//	    MAWindow: 7,
//	    Theme:    "dark",
//	})
//
// RenderHistogram bins the column's non-missing values into equal-width
// buckets:
//
//	path, err := plot.RenderHistogram(tbl, table.ByName("temperature"), 20, "out/hist.png", plot.Options{})
//
// Both renderers create the output path's parent directory, always write
// the PNG file, and treat interactive display (Options.Show) as best
// effort: a missing display surface never fails the call.
package plot
