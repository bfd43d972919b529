// Package main provides the CLI entry point for goanalyze.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goanalyze/plot"
	"github.com/sartorproj/goanalyze/stats"
	"github.com/sartorproj/goanalyze/table"
)

// Exit codes reported to the shell.
const (
	exitNoInput   = 2
	exitStats     = 3
	exitPlot      = 4
	exitHistogram = 5
)

var (
	outputPath  string
	show        bool
	maWindow    int
	title       string
	themeName   string
	histogram   bool
	histBins    int
	histOutput  string
	dateColumns []string
	sheetName   string
)

// exitError carries a process exit code alongside the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	rootCmd := &cobra.Command{
		Use:   "goanalyze [file] [column]",
		Short: "Compute statistics and render charts for one column of tabular data",
		Long: `goanalyze loads a CSV or Excel file, prints summary statistics for one
numeric column, and renders the column as a line chart and, optionally,
a histogram.`,
		Args:          cobra.ExactArgs(2),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", plot.DefaultSeriesPath, "Output path for the line chart")
	rootCmd.Flags().BoolVar(&show, "show", false, "Also display charts in the platform image viewer")
	rootCmd.Flags().IntVar(&maWindow, "ma-window", 0, "Moving average window to overlay on the line chart")
	rootCmd.Flags().StringVar(&title, "title", "", "Title for the line chart")
	rootCmd.Flags().StringVar(&themeName, "theme", "default", "Chart theme: default, light, dark")
	rootCmd.Flags().BoolVar(&histogram, "hist", false, "Also render a histogram of the column")
	rootCmd.Flags().IntVar(&histBins, "hist-bins", plot.DefaultBins, "Number of histogram bins")
	rootCmd.Flags().StringVar(&histOutput, "hist-output", plot.DefaultHistogramPath, "Output path for the histogram")
	rootCmd.Flags().StringSliceVar(&dateColumns, "date-column", nil, "Column names to parse as dates")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name for Excel input (default: first sheet)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath, column := args[0], args[1]

	tbl, err := loadTable(inputPath)
	if err != nil {
		if errors.Is(err, table.ErrFileNotFound) {
			return &exitError{exitNoInput, err}
		}
		return err
	}

	ref := table.ByName(column)

	result, err := stats.Describe(tbl, ref)
	if err != nil {
		return &exitError{exitStats, fmt.Errorf("failed to compute stats for column %q: %w", column, err)}
	}

	fmt.Println("Statistics:")
	fmt.Printf("  mean: %v\n", result.Mean)
	fmt.Printf("  min: %v\n", result.Min)
	fmt.Printf("  max: %v\n", result.Max)
	fmt.Printf("  std: %v\n", result.Std)

	opts := plot.Options{Title: title, Show: show, MAWindow: maWindow, Theme: themeName}
	saved, err := plot.RenderSeries(tbl, ref, outputPath, opts)
	if err != nil {
		return &exitError{exitPlot, fmt.Errorf("failed to create line plot: %w", err)}
	}
	fmt.Printf("Line plot saved to: %s\n", saved)

	if histogram {
		histOpts := plot.Options{Show: show, Theme: themeName}
		savedHist, err := plot.RenderHistogram(tbl, ref, histBins, histOutput, histOpts)
		if err != nil {
			return &exitError{exitHistogram, fmt.Errorf("failed to create histogram: %w", err)}
		}
		fmt.Printf("Histogram saved to: %s\n", savedHist)
	}

	return nil
}

// loadTable routes by file extension: .xlsx workbooks go through the Excel
// loader, everything else is read as delimited text.
func loadTable(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return table.LoadExcel(path, sheetName, dateColumns...)
	default:
		return table.LoadCSV(path, dateColumns...)
	}
}
