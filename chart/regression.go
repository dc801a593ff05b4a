// regression.go renders the model-suggested regression pairing as a
// scatter with a fitted trend line, in both backends.
package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"

	"insightagent/dataset"
)

// Line is a fitted least-squares line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// FitLine fits an ordinary least-squares line through the points. It
// needs at least two points and a non-constant x.
func FitLine(xs, ys []float64) (Line, bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return Line{}, false
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}
	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		return Line{}, false
	}
	slope := (float64(n)*sumXY - sumX*sumY) / denom
	return Line{Slope: slope, Intercept: (sumY - slope*sumX) / float64(n)}, true
}

// regressionSeries pulls the aligned pair for the suggested target and
// feature. A non-numeric column is encoded as ordinal category codes so
// the scatter still renders; fit reports whether both columns were
// genuinely numeric and a trend line may be drawn.
func regressionSeries(ds *dataset.Dataset, feature, target string) (xs, ys []float64, fit, ok bool) {
	fcol, fok := ds.Column(feature)
	tcol, tok := ds.Column(target)
	if !fok || !tok {
		return nil, nil, false, false
	}

	if fcol.Kind == dataset.Numeric && tcol.Kind == dataset.Numeric {
		xs, ys = ds.AlignedNumbers(feature, target)
		return xs, ys, true, len(xs) >= 2
	}

	fv, fok2 := ordinalValues(fcol, ds.Rows())
	tv, tok2 := ordinalValues(tcol, ds.Rows())
	for i := 0; i < ds.Rows(); i++ {
		if fok2[i] && tok2[i] {
			xs = append(xs, fv[i])
			ys = append(ys, tv[i])
		}
	}
	return xs, ys, false, len(xs) >= 2
}

// ordinalValues returns one value per row with a validity flag. Numeric
// columns yield their parsed cells; other kinds yield first-appearance
// category codes, with empty cells invalid.
func ordinalValues(col *dataset.Column, rows int) ([]float64, []bool) {
	vals := make([]float64, rows)
	oks := make([]bool, rows)
	if col.Kind == dataset.Numeric {
		for i := 0; i < rows; i++ {
			if v, good := col.NumberAt(i); good {
				vals[i], oks[i] = v, true
			}
		}
		return vals, oks
	}

	codes := map[string]float64{}
	for i := 0; i < rows; i++ {
		cell := col.Cell(i)
		if cell == "" {
			continue
		}
		code, seen := codes[cell]
		if !seen {
			code = float64(len(codes))
			codes[cell] = code
		}
		vals[i], oks[i] = code, true
	}
	return vals, oks
}

// RenderRegressionStatic renders the regression scatter plus trend line
// as a PNG. A non-numeric pairing keeps the scatter and drops the trend
// line; a missing column degrades to a placeholder image.
func RenderRegressionStatic(ds *dataset.Dataset, feature, target string) ([]byte, error) {
	title := fmt.Sprintf("Regression: %s vs %s", target, feature)

	xs, ys, fit, ok := regressionSeries(ds, feature, target)
	if !ok {
		return renderPlaceholder(title, "no data available for regression scatter")
	}
	if !fit {
		title += " (trend line disabled: both columns must be numeric)"
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    chart.ColorBlue,
			},
		},
	}
	if fit {
		if line, fitted := FitLine(xs, ys); fitted {
			lo, hi := xs[0], xs[0]
			for _, v := range xs {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{lo, hi},
				YValues: []float64{line.Slope*lo + line.Intercept, line.Slope*hi + line.Intercept},
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			})
		}
	}

	c := &chart.Chart{
		Title:  title,
		Width:  staticWidth,
		Height: staticHeight,
		XAxis:  chart.XAxis{Name: feature},
		YAxis:  chart.YAxis{Name: target},
		Series: series,
	}
	return renderPNG(c)
}

// RenderRegressionInteractive renders the regression scatter plus trend
// line as an HTML snippet. A non-numeric pairing keeps the scatter and
// prepends a disabled-trend note. The fitted values come from the stats
// package; if that fails the closed-form fit fills in.
func RenderRegressionInteractive(ds *dataset.Dataset, feature, target string) (string, error) {
	title := fmt.Sprintf("Regression: %s vs %s", target, feature)

	xs, ys, fit, ok := regressionSeries(ds, feature, target)
	if !ok {
		return AnnotationHTML(title, "no data available for regression scatter"), nil
	}

	points := make([]opts.ScatterData, len(xs))
	for i := range xs {
		points[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}, SymbolSize: 8}
	}

	var fitted []stats.Coordinate
	if fit {
		fitted = fittedLine(xs, ys)
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(baseOptions(title),
		charts.WithXAxisOpts(opts.XAxis{Name: feature, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: target, Type: "value"}),
	)...)
	sc.SetXAxis(nil).AddSeries(target, points)

	if len(fitted) == 2 {
		line := charts.NewLine()
		line.SetGlobalOptions(append(baseOptions(title),
			charts.WithXAxisOpts(opts.XAxis{Name: feature, Type: "value"}),
			charts.WithYAxisOpts(opts.YAxis{Name: target, Type: "value"}),
		)...)
		lineData := make([]opts.LineData, 2)
		for i, p := range fitted {
			lineData[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
		}
		line.SetXAxis(nil).AddSeries("trend", lineData,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
		sc.Overlap(line)
	}

	snip, err := snippet(sc)
	if err != nil {
		return "", err
	}
	if !fit {
		return AnnotationHTML(title, "trend line disabled: both columns must be numeric") + snip, nil
	}
	return snip, nil
}

// fittedLine returns the trend line endpoints for the scatter overlay,
// or nil when no line can be fitted.
func fittedLine(xs, ys []float64) []stats.Coordinate {
	lo, hi := xs[0], xs[0]
	for _, v := range xs {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return nil
	}

	series := make([]stats.Coordinate, len(xs))
	for i := range xs {
		series[i] = stats.Coordinate{X: xs[i], Y: ys[i]}
	}
	if reg, err := stats.LinearRegression(series); err == nil && len(reg) >= 2 {
		// endpoints at the x extremes, interpolated through the fit
		first, last := reg[0], reg[len(reg)-1]
		if first.X != last.X {
			slope := (last.Y - first.Y) / (last.X - first.X)
			intercept := first.Y - slope*first.X
			return []stats.Coordinate{
				{X: lo, Y: slope*lo + intercept},
				{X: hi, Y: slope*hi + intercept},
			}
		}
	}

	line, fit := FitLine(xs, ys)
	if !fit {
		return nil
	}
	return []stats.Coordinate{
		{X: lo, Y: line.Slope*lo + line.Intercept},
		{X: hi, Y: line.Slope*hi + line.Intercept},
	}
}
