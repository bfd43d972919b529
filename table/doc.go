// Package table provides tabular data structures and file loaders.
//
// A Table is an ordered collection of named columns read from a delimited
// text file or an Excel sheet. Each cell is a tagged Value: a number, a
// string, a timestamp, or missing. All columns share the same row count.
//
// # Loading
//
// Load a CSV file, optionally parsing named columns as dates:
//
//	tbl, err := table.LoadCSV("data.csv", "date")
//
// The first row is read as column headers. Cells that parse as numbers
// become numeric values; empty and NA-style cells become missing. Date
// columns are reparsed as timestamps, degrading unparseable cells to
// missing rather than failing.
//
// Excel workbooks load the same way:
//
//	tbl, err := table.LoadExcel("data.xlsx", "", "date") // first sheet
//
// # Column References
//
// A ColumnRef selects one column by name, by position, or as a literal
// value sequence:
//
//	table.ByName("temperature")
//	table.ByIndex(1)
//	table.FromValues(cells)
//
// # Numeric Coercion
//
// Numeric converts the referenced column to a float64 series, marking
// every value that cannot be parsed as NaN so the series keeps the
// column's length and row order:
//
//	series, name, err := tbl.Numeric(table.ByName("temperature"))
package table
