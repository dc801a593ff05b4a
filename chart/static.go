// static.go is the static rendering backend: it re-derives each chart as
// a raster PNG for embedding into the PDF. A PDF cannot carry an
// interactive error overlay, so every path here must end in an image.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"insightagent/dataset"
)

const (
	staticWidth   = 900
	staticHeight  = 450
	histogramBins = 10
	maxBarSlots   = 12
	maxPieSlices  = 8
)

// RenderStatic renders one resolved chart against the dataset as PNG
// bytes. Unrenderable data degrades to a neutral placeholder image; an
// error is only returned when even the placeholder cannot be produced.
func RenderStatic(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	switch res.Kind {
	case KindBar:
		return staticBar(ds, res, title)
	case KindLine:
		return staticXY(ds, res, title, false)
	case KindScatter:
		return staticScatter(ds, res, title)
	case KindHistogram:
		return staticHistogram(ds, res, title)
	case KindBox:
		return staticBox(ds, res, title)
	case KindPie:
		return staticPie(ds, res, title)
	case KindArea:
		return staticXY(ds, res, title, true)
	case KindHeatmap:
		return renderCorrelationHeatmap(ds, title)
	case KindViolin:
		return staticViolin(ds, res, title)
	default:
		return renderPlaceholder(title, "unable to render: unrecognized chart kind")
	}
}

func renderPNG(c *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBarPNG(bc *chart.BarChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("bar chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func staticBar(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	labels, values := barData(ds, res)
	if len(labels) == 0 {
		return renderPlaceholder(title, "no data available for bar chart")
	}

	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{Label: labels[i], Value: values[i]}
	}
	bc := &chart.BarChart{
		Title:    title,
		Width:    staticWidth,
		Height:   staticHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	return renderBarPNG(bc)
}

// barData picks the bar chart contents: categorical x vs mean-aggregated
// y when both are usable, value counts of x otherwise. With a synthetic
// index the raw y values are plotted per row.
func barData(ds *dataset.Dataset, res Resolved) (labels []string, values []float64) {
	if !res.XSynthetic {
		xcol, ok := ds.Column(res.X)
		if !ok {
			return nil, nil
		}
		ycol, yok := ds.Column(res.Y)
		if yok && ycol.Kind == dataset.Numeric && xcol.Kind != dataset.Numeric {
			return aggregateMean(ds, xcol, ycol)
		}
		cl, cc := xcol.ValueCounts()
		if len(cl) > maxBarSlots {
			cl, cc = cl[:maxBarSlots], cc[:maxBarSlots]
		}
		values = make([]float64, len(cc))
		for i, c := range cc {
			values[i] = float64(c)
		}
		return cl, values
	}

	ycol, ok := ds.Column(res.Y)
	if !ok || ycol.Kind != dataset.Numeric {
		return nil, nil
	}
	nums := ycol.Numbers()
	if len(nums) > maxBarSlots {
		nums = nums[:maxBarSlots]
	}
	for i, v := range nums {
		labels = append(labels, fmt.Sprintf("%d", i))
		values = append(values, v)
	}
	return labels, values
}

func aggregateMean(ds *dataset.Dataset, xcol, ycol *dataset.Column) (labels []string, values []float64) {
	sums := map[string]float64{}
	counts := map[string]int{}
	order, _ := xcol.ValueCounts()
	if len(order) > maxBarSlots {
		order = order[:maxBarSlots]
	}
	keep := map[string]bool{}
	for _, l := range order {
		keep[l] = true
	}
	for i := 0; i < ds.Rows(); i++ {
		label := xcol.Cell(i)
		if label == "" || !keep[label] {
			continue
		}
		if v, ok := ycol.NumberAt(i); ok {
			sums[label] += v
			counts[label]++
		}
	}
	for _, l := range order {
		if counts[l] == 0 {
			continue
		}
		labels = append(labels, l)
		values = append(values, sums[l]/float64(counts[l]))
	}
	return labels, values
}

// xySeries extracts aligned x/y series for line, area and scatter
// charts. A numeric x is used directly. A datetime or categorical x
// keeps the row order, plotted at sequential positions with its cells
// returned as axis labels. A synthetic x is the bare position.
func xySeries(ds *dataset.Dataset, res Resolved) (xs, ys []float64, labels []string, ok bool) {
	ycol, found := ds.Column(res.Y)
	if !found || ycol.Kind != dataset.Numeric {
		return nil, nil, nil, false
	}

	var xcol *dataset.Column
	if !res.XSynthetic {
		if c, xok := ds.Column(res.X); xok {
			if c.Kind == dataset.Numeric {
				xs, ys = ds.AlignedNumbers(res.X, res.Y)
				return xs, ys, nil, len(xs) >= 2
			}
			xcol = c
		}
	}

	for i := 0; i < ds.Rows(); i++ {
		if v, good := ycol.NumberAt(i); good {
			xs = append(xs, float64(len(xs)))
			ys = append(ys, v)
			if xcol != nil {
				labels = append(labels, xcol.Cell(i))
			}
		}
	}
	return xs, ys, labels, len(xs) >= 2
}

// axisTicks thins cell labels down to at most a dozen ticks so datetime
// axes stay readable.
func axisTicks(labels []string) []chart.Tick {
	step := (len(labels) + maxBarSlots - 1) / maxBarSlots
	if step < 1 {
		step = 1
	}
	ticks := make([]chart.Tick, 0, maxBarSlots)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: labels[i]})
	}
	return ticks
}

func staticXY(ds *dataset.Dataset, res Resolved, title string, filled bool) ([]byte, error) {
	xs, ys, labels, ok := xySeries(ds, res)
	if !ok {
		return renderPlaceholder(title, "not enough numeric data to draw this chart")
	}

	style := chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2}
	if filled {
		style.FillColor = chart.ColorBlue.WithAlpha(64)
	}
	xaxis := chart.XAxis{Name: res.X}
	if len(labels) > 0 {
		xaxis.Ticks = axisTicks(labels)
	}
	c := &chart.Chart{
		Title:  title,
		Width:  staticWidth,
		Height: staticHeight,
		XAxis:  xaxis,
		YAxis:  chart.YAxis{Name: res.Y},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style},
		},
	}
	return renderPNG(c)
}

func staticScatter(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	xs, ys, labels, ok := xySeries(ds, res)
	if !ok {
		return renderPlaceholder(title, "not enough numeric data to draw this chart")
	}

	xaxis := chart.XAxis{Name: res.X}
	if len(labels) > 0 {
		xaxis.Ticks = axisTicks(labels)
	}
	c := &chart.Chart{
		Title:  title,
		Width:  staticWidth,
		Height: staticHeight,
		XAxis:  xaxis,
		YAxis:  chart.YAxis{Name: res.Y},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    chart.ColorBlue,
				},
			},
		},
	}
	return renderPNG(c)
}

// histogramValues picks the column a histogram bins: the numeric x
// binding when usable, otherwise the numeric y fallback, otherwise the
// first numeric column.
func histogramValues(ds *dataset.Dataset, res Resolved) []float64 {
	candidates := []string{}
	if !res.XSynthetic {
		candidates = append(candidates, res.X)
	}
	candidates = append(candidates, res.Y)
	candidates = append(candidates, ds.NumericColumns()...)

	for _, name := range candidates {
		if col, ok := ds.Column(name); ok && col.Kind == dataset.Numeric {
			if nums := col.Numbers(); len(nums) > 0 {
				return nums
			}
		}
	}
	return nil
}

func binValues(values []float64, bins int) (labels []string, counts []float64) {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return []string{fmt.Sprintf("%.4g", lo)}, []float64{float64(len(values))}
	}

	width := (hi - lo) / float64(bins)
	counts = make([]float64, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	labels = make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.4g", lo+width*float64(i))
	}
	return labels, counts
}

func staticHistogram(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	values := histogramValues(ds, res)
	if len(values) == 0 {
		return renderPlaceholder(title, "no numeric column available for histogram")
	}

	labels, counts := binValues(values, histogramBins)
	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{Label: labels[i], Value: counts[i]}
	}
	bc := &chart.BarChart{
		Title:    title,
		Width:    staticWidth,
		Height:   staticHeight,
		BarWidth: 60,
		Bars:     bars,
	}
	return renderBarPNG(bc)
}

func staticBox(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	fn, ok := ds.FiveNumber(res.Y)
	if !ok {
		return renderPlaceholder(title, "no numeric column available for box plot")
	}

	names := []string{"min", "q1", "median", "q3", "max"}
	bars := make([]chart.Value, 5)
	for i, n := range names {
		bars[i] = chart.Value{Label: n, Value: fn[i]}
	}
	bc := &chart.BarChart{
		Title:    title,
		Width:    staticWidth,
		Height:   staticHeight,
		BarWidth: 60,
		Bars:     bars,
	}
	return renderBarPNG(bc)
}

func staticPie(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	col, ok := ds.Column(res.pieColumn())
	if !ok {
		return renderPlaceholder(title, "no column available for pie chart")
	}
	labels, counts := col.ValueCounts()
	if len(labels) == 0 {
		return renderPlaceholder(title, "no values available for pie chart")
	}
	if len(labels) > maxPieSlices {
		labels, counts = labels[:maxPieSlices], counts[:maxPieSlices]
	}

	values := make([]chart.Value, len(labels))
	for i := range labels {
		values[i] = chart.Value{Label: labels[i], Value: float64(counts[i])}
	}
	pc := &chart.PieChart{
		Title:  title,
		Width:  staticHeight, // pies render square
		Height: staticHeight,
		Values: values,
	}
	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("pie chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// staticViolin approximates the distribution of y as a filled density
// profile (binned counts rendered as an area curve).
func staticViolin(ds *dataset.Dataset, res Resolved, title string) ([]byte, error) {
	col, ok := ds.Column(res.Y)
	if !ok || col.Kind != dataset.Numeric {
		return renderPlaceholder(title, "no numeric column available for violin plot")
	}
	values := col.Numbers()
	if len(values) < 2 {
		return renderPlaceholder(title, "not enough values for violin plot")
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return renderPlaceholder(title, "constant column, nothing to profile")
	}

	_, counts := binValues(values, 16)
	xs := make([]float64, len(counts))
	step := (hi - lo) / float64(len(counts))
	for i := range xs {
		xs[i] = lo + step*(float64(i)+0.5)
	}

	c := &chart.Chart{
		Title:  title,
		Width:  staticWidth,
		Height: staticHeight,
		XAxis:  chart.XAxis{Name: res.Y},
		YAxis:  chart.YAxis{Name: "density"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: counts,
				Style: chart.Style{
					StrokeColor: chart.ColorAlternateGreen,
					StrokeWidth: 2,
					FillColor:   chart.ColorAlternateGreen.WithAlpha(80),
				},
			},
		},
	}
	return renderPNG(c)
}
