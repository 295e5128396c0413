package trackers

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Curve is a named series of per-episode values
type Curve struct {
	Name   string
	Values []float64
}

// Plot renders the curves as a line chart in an HTML page written to
// w. Curves of different lengths are plotted against the episodes of
// the longest.
func Plot(w io.Writer, title string, curves ...Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("plot: no curves to plot")
	}

	numEpisodes := 0
	for _, c := range curves {
		if len(c.Values) > numEpisodes {
			numEpisodes = len(c.Values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
	)

	episodes := make([]string, numEpisodes)
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i+1)
	}
	line = line.SetXAxis(episodes)

	for _, c := range curves {
		items := make([]opts.LineData, 0, len(c.Values))
		for _, v := range c.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(c.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// MovingAverage returns the average of each window of n consecutive
// values of data. Values of n below 2 return a copy of data.
func MovingAverage(data []float64, n int) []float64 {
	if n < 2 || len(data) < n {
		return append([]float64(nil), data...)
	}

	out := make([]float64, 0, len(data)-n+1)
	var sum float64
	for i, v := range data {
		sum += v
		if i >= n {
			sum -= data[i-n]
		}
		if i >= n-1 {
			out = append(out, sum/float64(n))
		}
	}
	return out
}
