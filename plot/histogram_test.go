package plot

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/sartorproj/goanalyze/table"
)

func TestRenderHistogramCreatesFile(t *testing.T) {
	tbl := loadTable(t, `y
10
12
14
11
15
12
13`)
	out := filepath.Join(t.TempDir(), "hist.png")

	saved, err := RenderHistogram(tbl, table.ByName("y"), 5, out, Options{})
	if err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}
	if saved != out {
		t.Errorf("Expected resolved path %s, got %s", out, saved)
	}
	assertImage(t, saved)
}

func TestRenderHistogramDefaultPath(t *testing.T) {
	chdir(t, t.TempDir())
	tbl := datedTable(t)

	saved, err := RenderHistogram(tbl, table.ByName("temperature"), 0, "", Options{})
	if err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}
	if saved != DefaultHistogramPath {
		t.Errorf("Expected default path %s, got %s", DefaultHistogramPath, saved)
	}
	assertImage(t, saved)
}

func TestRenderHistogramShowNeverFails(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "hist.png")

	if _, err := RenderHistogram(tbl, table.ByName("temperature"), 4, out, Options{Show: true}); err != nil {
		t.Fatalf("RenderHistogram failed with Show: %v", err)
	}
	assertImage(t, out)
}

func TestRenderHistogramDropsMissing(t *testing.T) {
	tbl := loadTable(t, `y
10
abc
12
NA
14`)
	out := filepath.Join(t.TempDir(), "hist.png")

	if _, err := RenderHistogram(tbl, table.ByName("y"), 3, out, Options{}); err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}
	assertImage(t, out)
}

func TestRenderHistogramInvalidBins(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "hist.png")

	if _, err := RenderHistogram(tbl, table.ByName("temperature"), -1, out, Options{}); err == nil {
		t.Error("Expected error for negative bin count")
	}
}

func TestRenderHistogramNoNumericData(t *testing.T) {
	tbl := loadTable(t, "y\nfoo\nbar")
	out := filepath.Join(t.TempDir(), "hist.png")

	if _, err := RenderHistogram(tbl, table.ByName("y"), 5, out, Options{}); err == nil {
		t.Error("Expected error for a column with no numeric data")
	}
}

func TestRenderHistogramSingleBin(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "hist.png")

	if _, err := RenderHistogram(tbl, table.ByName("temperature"), 1, out, Options{}); err != nil {
		t.Fatalf("RenderHistogram failed for one bin: %v", err)
	}
	assertImage(t, out)
}

func TestBin(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}
	centers, counts, width := bin(data, 5)

	if len(centers) != 5 || len(counts) != 5 {
		t.Fatalf("Expected 5 buckets, got %d/%d", len(centers), len(counts))
	}
	if math.Abs(width-2.0) > 1e-10 {
		t.Errorf("Expected width 2.0, got %f", width)
	}

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != float64(len(data)) {
		t.Errorf("Counts must cover every value: got %f of %d", total, len(data))
	}

	// The maximum lands in the last bucket, not past it.
	if counts[4] == 0 {
		t.Error("Last bucket should contain the maximum value")
	}
}

func TestBinConstantData(t *testing.T) {
	centers, counts, width := bin([]float64{5, 5, 5}, 4)
	if width <= 0 {
		t.Errorf("Constant data must still produce positive width, got %f", width)
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("Expected all 3 values binned, got %f", total)
	}
	if len(centers) != 4 {
		t.Errorf("Expected 4 centers, got %d", len(centers))
	}
}
