package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/goanalyze/stats"
	"github.com/sartorproj/goanalyze/table"
)

// Default output paths when the caller does not supply one.
const (
	DefaultSeriesPath    = "plot.png"
	DefaultHistogramPath = "hist.png"
)

// DefaultBins is the histogram bucket count used when bins is zero.
const DefaultBins = 20

const (
	chartWidth  = 800
	chartHeight = 450
)

// Options configures chart rendering.
type Options struct {
	// Title overrides the synthesized chart title.
	Title string
	// Show additionally opens the saved image in the platform viewer.
	// Display is best effort and never fails the render.
	Show bool
	// MAWindow overlays a trailing moving average with this window when
	// it is 2 or more.
	MAWindow int
	// Theme names a visual theme; unknown names fall back to the default.
	Theme string
}

// RenderSeries draws the referenced column as a connected line with point
// markers and writes it to outputPath as a PNG (plot.png when empty). When
// the table has a date-like column whose values parse as timestamps it
// becomes the x-axis; otherwise the row index is used. The resolved output
// path is returned.
func RenderSeries(t *table.Table, ref table.ColumnRef, outputPath string, opts Options) (string, error) {
	values, name, err := t.Numeric(ref)
	if err != nil {
		return "", err
	}

	th := themeByName(opts.Theme)
	times, haveTime := timeAxis(t)

	primary := chart.Style{
		StrokeColor: th.Series,
		StrokeWidth: 1.5,
		DotColor:    th.Series,
		DotWidth:    3,
	}
	series, err := buildSeries(name, times, haveTime, values, primary)
	if err != nil {
		return "", err
	}
	all := []chart.Series{series}

	if opts.MAWindow >= 2 {
		overlay := chart.Style{
			StrokeColor: th.Overlay,
			StrokeWidth: 3,
		}
		maName := fmt.Sprintf("MA(%d)", opts.MAWindow)
		ma := stats.MovingAverage(values, opts.MAWindow)
		maSeries, err := buildSeries(maName, times, haveTime, ma, overlay)
		if err == nil {
			all = append(all, maSeries)
		}
	}

	title := opts.Title
	if title == "" {
		title = "Series: " + name
	}
	xName := "Index"
	if haveTime {
		xName = "Time"
	}

	ch := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: th.Text},
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			FillColor: th.Background,
			FontColor: th.Text,
			Padding:   chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 12},
		},
		Canvas: chart.Style{FillColor: th.Canvas},
		XAxis: chart.XAxis{
			Name:      xName,
			Style:     chart.Style{FontColor: th.Text},
			NameStyle: chart.Style{FontColor: th.Text},
		},
		YAxis: chart.YAxis{
			Name:      name,
			Style:     chart.Style{FontColor: th.Text},
			NameStyle: chart.Style{FontColor: th.Text},
			Range:     paddedRange(values),
		},
		Series: all,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(&ch, outputPath, DefaultSeriesPath, opts.Show)
}

// timeColumns are scanned in priority order for an x-axis candidate.
var timeColumns = []string{
	"date", "Date", "DATE",
	"time", "Time", "TIME",
	"timestamp", "Timestamp", "TIMESTAMP",
}

// timeAxis returns the first date-like column with at least one parseable
// timestamp, row-aligned with zero times marking unparsed cells.
func timeAxis(t *table.Table) ([]time.Time, bool) {
	for _, name := range timeColumns {
		if times, n := t.Times(name); n > 0 {
			return times, true
		}
	}
	return nil, false
}

// buildSeries assembles one drawable series, keeping each surviving point
// at its original x position so missing values render as gaps.
func buildSeries(name string, times []time.Time, haveTime bool, values []float64, style chart.Style) (chart.Series, error) {
	if haveTime {
		xs := make([]time.Time, 0, len(values))
		ys := make([]float64, 0, len(values))
		for i, v := range values {
			if math.IsNaN(v) || times[i].IsZero() {
				continue
			}
			xs = append(xs, times[i])
			ys = append(ys, v)
		}
		if len(ys) == 0 {
			return nil, errors.New("no numeric data to plot")
		}
		if len(ys) == 1 {
			// go-chart needs two points to establish an x range.
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		return chart.TimeSeries{Name: name, XValues: xs, YValues: ys, Style: style}, nil
	}

	xs := make([]float64, 0, len(values))
	ys := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	if len(ys) == 0 {
		return nil, errors.New("no numeric data to plot")
	}
	if len(ys) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: style}, nil
}

// paddedRange supplies an explicit y range when the surviving values have
// zero spread, which go-chart cannot tick on its own. It returns nil (use
// the computed range) otherwise.
func paddedRange(values []float64) chart.Range {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsInf(min, 1) || min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}

// writeChart renders ch to a buffer, writes it to the resolved output path
// (creating parent directories), and optionally opens the platform viewer.
func writeChart(ch *chart.Chart, outputPath, defaultPath string, show bool) (string, error) {
	if outputPath == "" {
		outputPath = defaultPath
	}
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	if show {
		openImage(outputPath)
	}
	return outputPath, nil
}
