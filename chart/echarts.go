// echarts.go is the interactive rendering backend. Each resolved chart
// becomes a self-contained HTML snippet (a div plus its init script)
// that the report page embeds. The echarts runtime script itself is
// loaded once by the report template, not per snippet.
package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"insightagent/dataset"
)

const (
	chartWidth  = "860px"
	chartHeight = "420px"
)

// AnnotationHTML renders an inline note in place of a chart that could
// not be drawn. Both arguments are escaped, the reason frequently quotes
// model output.
func AnnotationHTML(title, reason string) string {
	return fmt.Sprintf(
		`<div class="chart-note"><strong>%s</strong><p>%s</p></div>`,
		html.EscapeString(title), html.EscapeString(reason))
}

// RenderInteractive renders one resolved chart against the dataset as an
// HTML snippet. Unrenderable data degrades to an inline annotation; an
// error is only returned when the chart engine itself fails.
func RenderInteractive(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	switch res.Kind {
	case KindBar:
		return interactiveBar(ds, res, title)
	case KindLine:
		return interactiveLine(ds, res, title, false)
	case KindArea:
		return interactiveLine(ds, res, title, true)
	case KindScatter:
		return interactiveScatter(ds, res, title)
	case KindHistogram:
		return interactiveHistogram(ds, res, title)
	case KindBox, KindViolin:
		return interactiveBox(ds, res, title)
	case KindPie:
		return interactivePie(ds, res, title)
	case KindHeatmap:
		return interactiveHeatmap(ds, title)
	default:
		return AnnotationHTML(title, "unrecognized chart kind"), nil
	}
}

type pageRenderer interface {
	Render(w io.Writer) error
}

// snippet renders the chart's full HTML page and slices the body out, so
// the result can be embedded without a nested document.
func snippet(c pageRenderer) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", fmt.Errorf("interactive render failed: %w", err)
	}
	page := buf.String()
	start := strings.Index(page, "<body>")
	end := strings.LastIndex(page, "</body>")
	if start < 0 || end < 0 || end < start {
		return "", fmt.Errorf("interactive render produced no body")
	}
	return page[start+len("<body>") : end], nil
}

func baseOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	}
}

func interactiveBar(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	labels, values := barData(ds, res)
	if len(labels) == 0 {
		return AnnotationHTML(title, "no data available for bar chart"), nil
	}

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Name: res.X, Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Name: res.Y, Type: "value"}),
	)...)
	bar.SetXAxis(labels).AddSeries(res.Y, data)
	return snippet(bar)
}

func interactiveLine(ds *dataset.Dataset, res Resolved, title string, filled bool) (string, error) {
	xs, ys, cells, ok := xySeries(ds, res)
	if !ok {
		return AnnotationHTML(title, "not enough numeric data to draw this chart"), nil
	}

	labels := make([]string, len(xs))
	data := make([]opts.LineData, len(ys))
	for i := range xs {
		if i < len(cells) && cells[i] != "" {
			labels[i] = cells[i]
		} else {
			labels[i] = fmt.Sprintf("%.4g", xs[i])
		}
		data[i] = opts.LineData{Value: ys[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Name: res.X, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: res.Y, Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)...)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	}
	if filled {
		seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{
			Opacity: 0.3,
		}))
	}
	line.SetXAxis(labels).AddSeries(res.Y, data, seriesOpts...)
	return snippet(line)
}

func interactiveScatter(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	xs, ys, _, ok := xySeries(ds, res)
	if !ok {
		return AnnotationHTML(title, "not enough numeric data to draw this chart"), nil
	}

	data := make([]opts.ScatterData, len(xs))
	for i := range xs {
		data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}, SymbolSize: 8}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Name: res.X, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: res.Y, Type: "value"}),
	)...)
	sc.SetXAxis(nil).AddSeries(res.Y, data)
	return snippet(sc)
}

func interactiveHistogram(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	values := histogramValues(ds, res)
	if len(values) == 0 {
		return AnnotationHTML(title, "no numeric column available for histogram"), nil
	}

	labels, counts := binValues(values, histogramBins)
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Name: res.histColumn(), Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count", Type: "value"}),
	)...)
	bar.SetXAxis(labels).AddSeries("count", data,
		charts.WithBarChartOpts(opts.BarChart{BarGap: "2%"}),
	)
	return snippet(bar)
}

// interactiveBox renders both box and violin requests as a boxplot. The
// echarts boxplot series wants the five-number summary pre-computed.
func interactiveBox(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	fn, ok := ds.FiveNumber(res.Y)
	if !ok {
		return AnnotationHTML(title, "no numeric column available for box plot"), nil
	}

	data := []opts.BoxPlotData{
		{Value: []interface{}{fn[0], fn[1], fn[2], fn[3], fn[4]}},
	}

	bp := charts.NewBoxPlot()
	bp.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: res.Y, Type: "value"}),
	)...)
	bp.SetXAxis([]string{res.Y}).AddSeries(res.Y, data)
	return snippet(bp)
}

func interactivePie(ds *dataset.Dataset, res Resolved, title string) (string, error) {
	col, ok := ds.Column(res.pieColumn())
	if !ok {
		return AnnotationHTML(title, "no column available for pie chart"), nil
	}
	labels, counts := col.ValueCounts()
	if len(labels) == 0 {
		return AnnotationHTML(title, "no values available for pie chart"), nil
	}
	if len(labels) > maxPieSlices {
		labels, counts = labels[:maxPieSlices], counts[:maxPieSlices]
	}

	data := make([]opts.PieData, len(labels))
	for i := range labels {
		data[i] = opts.PieData{Name: labels[i], Value: counts[i]}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(baseOptions(title)...)
	pie.AddSeries(res.pieColumn(), data)
	return snippet(pie)
}

// interactiveHeatmap ignores the x/y bindings and draws the full numeric
// correlation matrix, mirroring the static backend.
func interactiveHeatmap(ds *dataset.Dataset, title string) (string, error) {
	names, matrix := ds.Correlation()
	if len(names) < 2 {
		return AnnotationHTML(title, "need at least 2 numeric columns for a heatmap"), nil
	}

	var data []opts.HeatMapData
	for i := range names {
		for j := range names {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{j, i, matrix[i][j]},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      names,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      names,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#e0f3f8", "#a50026"},
			},
		}),
	)...)
	hm.SetXAxis(names).AddSeries("correlation", data)
	return snippet(hm)
}
