package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/tuneinsight/realpoly/utils"
)

// Renderer writes a figure to w.
type Renderer interface {
	Render(w io.Writer, fig *Figure) error
	// Extension is the file extension of the output, without the dot.
	Extension() string
}

// HTMLRenderer renders a figure as an interactive go-echarts line chart.
// Width and Height are in pixels.
type HTMLRenderer struct {
	Width, Height int
}

// Extension returns "html".
func (r *HTMLRenderer) Extension() string {
	return FormatHTML
}

// Render writes the page of the chart of fig to w.
func (r *HTMLRenderer) Render(w io.Writer, fig *Figure) error {

	vp, err := fig.Viewport()
	if err != nil {
		return fmt.Errorf("cannot Render: %w", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Title,
			Width:     fmt.Sprintf("%dpx", r.Width),
			Height:    fmt.Sprintf("%dpx", r.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value", Min: vp.XMin, Max: vp.XMax}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value", Min: vp.YMin, Max: vp.YMax}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	for _, s := range fig.Series {
		items := make([]opts.LineData, 0, len(s.Points))
		for _, pt := range s.Points {
			if utils.IsFinite(pt.Y) {
				items = append(items, opts.LineData{Value: []interface{}{pt.X, pt.Y}})
			}
		}
		line.AddSeries(s.Label, items,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	if len(fig.Markers) > 0 {
		sc := charts.NewScatter()
		for _, label := range markerLabels(fig.Markers) {
			var items []opts.ScatterData
			for _, m := range fig.Markers {
				if m.Label == label {
					items = append(items, opts.ScatterData{Value: []interface{}{m.X, m.Y}})
				}
			}
			sc.AddSeries("roots of "+label, items,
				charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}),
			)
		}
		line.Overlap(sc)
	}

	utils.Logger().Debug("render html",
		"title", fig.Title,
		"series", len(fig.Series),
		"markers", len(fig.Markers))

	if err = line.Render(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// markerLabels returns the distinct labels of markers in order of appearance.
func markerLabels(markers []Marker) (labels []string) {
	seen := map[string]bool{}
	for _, m := range markers {
		if !seen[m.Label] {
			seen[m.Label] = true
			labels = append(labels, m.Label)
		}
	}
	return
}
