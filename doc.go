// Package goanalyze provides loading, descriptive statistics, and chart
// rendering for columns of delimited tabular data.
//
// GoAnalyze is a small analysis utility: point it at a CSV or Excel file
// and a column name, and it prints summary statistics and saves the column
// as a line chart (optionally with a moving-average overlay) or histogram.
//
// # Quick Start
//
// Load a file and describe a column:
//
//	tbl, _ := table.LoadCSV("data.csv")
//	result, _ := stats.Describe(tbl, table.ByName("temperature"))
//	fmt.Println(result.Mean, result.Std)
//
// Render the column as a line chart:
//
//	path, _ := plot.RenderSeries(tbl, table.ByName("temperature"), "plot.png", plot.Options{
//	    MAWindow: 7,
//	})
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: tabular data structures, CSV and Excel loaders, column
//     references, and numeric coercion
//   - stats: summary statistics and moving averages
//   - plot: line-chart and histogram rendering to PNG files
//
// The goanalyze command under cmd/goanalyze sequences the three packages
// and maps each failure kind to a distinct process exit code.
package goanalyze
