package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cosmocalc/internal/experiment"
)

var ErrUnknownColumn = errors.New("viz: unknown column")

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green, asciigraph.Red, asciigraph.Blue,
}

type PlotOptions struct {
	Height  int
	Width   int
	Caption string
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Height: 15, Width: 80}
}

// Columns extracts the named survey columns. Non-finite values, such as
// the distance modulus at z = 0, are dropped from their series.
func Columns(rows []experiment.Row, names ...string) ([][]float64, error) {
	index := make(map[string]int, len(experiment.Columns))
	for i, c := range experiment.Columns {
		index[c] = i
	}

	out := make([][]float64, len(names))
	for k, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (have %s)", ErrUnknownColumn, name, strings.Join(experiment.Columns, ", "))
		}
		series := make([]float64, 0, len(rows))
		for _, r := range rows {
			v := r.Values()[idx]
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			series = append(series, v)
		}
		out[k] = series
	}
	return out, nil
}

// Plot charts survey columns against the row index of an increasing
// redshift grid.
func Plot(rows []experiment.Row, names []string, opts PlotOptions) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("nothing to plot")
	}
	data, err := Columns(rows, names...)
	if err != nil {
		return "", err
	}
	for k, series := range data {
		if len(series) == 0 {
			return "", fmt.Errorf("column %s has no finite values", names[k])
		}
	}

	caption := opts.Caption
	if caption == "" {
		caption = fmt.Sprintf("%s vs z [%g, %g]",
			strings.Join(names, ", "), rows[0].Redshift, rows[len(rows)-1].Redshift)
	}

	plotOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	}
	if len(data) == 1 {
		return asciigraph.Plot(data[0], plotOpts...), nil
	}
	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range colors {
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	plotOpts = append(plotOpts, asciigraph.SeriesColors(colors...))
	return asciigraph.PlotMany(data, plotOpts...), nil
}
