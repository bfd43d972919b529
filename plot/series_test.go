package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/goanalyze/table"
)

func loadTable(t *testing.T, csvData string) *table.Table {
	t.Helper()
	tbl, err := table.LoadCSVFromReader(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	return tbl
}

func datedTable(t *testing.T) *table.Table {
	t.Helper()
	return loadTable(t, `date,temperature
2025-01-01,10
2025-01-02,12
2025-01-03,14
2025-01-04,11
2025-01-05,15`)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Chdir back failed: %v", err)
		}
	})
}

func assertImage(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected image at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("Image at %s is empty", path)
	}
}

func TestRenderSeriesCreatesFile(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "plot.png")

	saved, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{})
	if err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	if saved != out {
		t.Errorf("Expected resolved path %s, got %s", out, saved)
	}
	assertImage(t, saved)
}

func TestRenderSeriesCreatesParentDir(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "charts", "nested", "plot.png")

	saved, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{})
	if err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	assertImage(t, saved)
}

func TestRenderSeriesDefaultPath(t *testing.T) {
	chdir(t, t.TempDir())
	tbl := datedTable(t)

	saved, err := RenderSeries(tbl, table.ByName("temperature"), "", Options{})
	if err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	if saved != DefaultSeriesPath {
		t.Errorf("Expected default path %s, got %s", DefaultSeriesPath, saved)
	}
	assertImage(t, saved)
}

func TestRenderSeriesShowNeverFails(t *testing.T) {
	// No display surface in the test environment; the file must still be
	// written and the call must still succeed.
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "plot.png")

	saved, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{Show: true})
	if err != nil {
		t.Fatalf("RenderSeries failed with Show: %v", err)
	}
	assertImage(t, saved)
}

func TestRenderSeriesMovingAverage(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "plot.png")

	saved, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{MAWindow: 3})
	if err != nil {
		t.Fatalf("RenderSeries with overlay failed: %v", err)
	}
	assertImage(t, saved)
}

func TestRenderSeriesMovingAverageShortSeries(t *testing.T) {
	// Window larger than the series: the overlay is still defined at
	// every point via the minimum period of 1.
	tbl := loadTable(t, `y
10
12
14`)
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("y"), out, Options{MAWindow: 10}); err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	assertImage(t, out)
}

func TestRenderSeriesThemes(t *testing.T) {
	tbl := datedTable(t)
	for _, theme := range []string{"default", "light", "dark", "no-such-theme", ""} {
		t.Run("theme "+theme, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "plot.png")
			if _, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{Theme: theme}); err != nil {
				t.Fatalf("RenderSeries failed: %v", err)
			}
			assertImage(t, out)
		})
	}
}

func TestRenderSeriesCustomTitle(t *testing.T) {
	tbl := datedTable(t)
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("temperature"), out, Options{Title: "Daily temperature"}); err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	assertImage(t, out)
}

func TestRenderSeriesNoNumericData(t *testing.T) {
	tbl := loadTable(t, "y\nfoo\nbar")
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("y"), out, Options{}); err == nil {
		t.Error("Expected error for a column with no numeric data")
	}
}

func TestRenderSeriesBadRef(t *testing.T) {
	tbl := datedTable(t)
	if _, err := RenderSeries(tbl, table.ColumnRef{}, "", Options{}); err == nil {
		t.Error("Expected error for an invalid column reference")
	}
}

func TestTimeAxisSelection(t *testing.T) {
	tests := []struct {
		name     string
		csvData  string
		haveTime bool
	}{
		{"lowercase date", "date,y\n2025-01-01,1\n2025-01-02,2", true},
		{"capitalized Date", "Date,y\n2025-01-01,1\n2025-01-02,2", true},
		{"timestamp column", "timestamp,y\n2025-01-01T10:00:00,1\n2025-01-01T11:00:00,2", true},
		{"no date-like column", "x,y\n1,1\n2,2", false},
		{"date column with no parseable values", "date,y\nfoo,1\nbar,2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := loadTable(t, tt.csvData)
			times, ok := timeAxis(tbl)
			if ok != tt.haveTime {
				t.Errorf("Expected haveTime=%v, got %v", tt.haveTime, ok)
			}
			if ok && len(times) != tbl.Len() {
				t.Errorf("Time axis must be row-aligned: %d vs %d", len(times), tbl.Len())
			}
		})
	}
}

func TestRenderSeriesIndexFallback(t *testing.T) {
	// No date-like column: the renderer falls back to the row index
	// without failing.
	tbl := loadTable(t, "x,y\n1,10\n2,12\n3,14")
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("y"), out, Options{}); err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	assertImage(t, out)
}

func TestRenderSeriesGapsPreserveAlignment(t *testing.T) {
	// The missing row is skipped but later points keep their positions.
	tbl := loadTable(t, `date,y
2025-01-01,10
2025-01-02,abc
2025-01-03,14
2025-01-04,12`)
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("y"), out, Options{}); err != nil {
		t.Fatalf("RenderSeries failed: %v", err)
	}
	assertImage(t, out)
}

func TestRenderSeriesSinglePoint(t *testing.T) {
	tbl := loadTable(t, "y\n42")
	out := filepath.Join(t.TempDir(), "plot.png")

	if _, err := RenderSeries(tbl, table.ByName("y"), out, Options{}); err != nil {
		t.Fatalf("RenderSeries failed for a single point: %v", err)
	}
	assertImage(t, out)
}
