package plot

import (
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/goanalyze/stats"
	"github.com/sartorproj/goanalyze/table"
)

// RenderHistogram draws the referenced column as a histogram with the
// given number of buckets and writes it to outputPath as a PNG (hist.png
// when empty). Missing values are dropped before binning. A bins value of
// zero uses DefaultBins; a negative value is an error. The resolved output
// path is returned.
func RenderHistogram(t *table.Table, ref table.ColumnRef, bins int, outputPath string, opts Options) (string, error) {
	if bins == 0 {
		bins = DefaultBins
	}
	if bins < 1 {
		return "", fmt.Errorf("invalid bin count %d", bins)
	}

	values, name, err := t.Numeric(ref)
	if err != nil {
		return "", err
	}
	data := stats.DropMissing(values)
	if len(data) == 0 {
		return "", errors.New("no numeric data to plot")
	}

	centers, counts, width := bin(data, bins)

	// A single bucket leaves the x axis with zero spread; give it one
	// bucket width of room on each side.
	var xRange chart.Range
	if bins == 1 {
		xRange = &chart.ContinuousRange{Min: centers[0] - width, Max: centers[0] + width}
	}

	th := themeByName(opts.Theme)
	title := opts.Title
	if title == "" {
		title = "Histogram: " + name
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
			Name:      name,
			Style:     chart.Style{FontColor: th.Text},
			NameStyle: chart.Style{FontColor: th.Text},
			Range:     xRange,
		},
		YAxis: chart.YAxis{
			Name:      "Count",
			Style:     chart.Style{FontColor: th.Text},
			NameStyle: chart.Style{FontColor: th.Text},
		},
		Series: []chart.Series{
			chart.HistogramSeries{
				Name: name,
				Style: chart.Style{
					StrokeColor: th.Series,
					StrokeWidth: 1,
					FillColor:   th.Series.WithAlpha(180),
				},
				InnerSeries: chart.ContinuousSeries{
					XValues: centers,
					YValues: counts,
				},
			},
		},
	}

	return writeChart(&ch, outputPath, DefaultHistogramPath, opts.Show)
}

// bin distributes data into equal-width buckets and returns the bucket
// centers, the per-bucket counts, and the bucket width.
func bin(data []float64, bins int) (centers, counts []float64, width float64) {
	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		// All values identical: pad the range so buckets have width.
		min -= 0.5
		max += 0.5
	}
	width = (max - min) / float64(bins)

	counts = make([]float64, bins)
	for _, v := range data {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = min + (float64(i)+0.5)*width
	}
	return centers, counts, width
}
