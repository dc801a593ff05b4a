package chart

import (
	"math"
	"strings"
	"testing"

	"insightagent/dataset"
)

func TestFitLine(t *testing.T) {
	// y = 2x + 1
	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9}

	line, ok := FitLine(xs, ys)
	if !ok {
		t.Fatalf("fit failed")
	}
	if math.Abs(line.Slope-2) > 1e-9 {
		t.Fatalf("slope: got %v, want 2", line.Slope)
	}
	if math.Abs(line.Intercept-1) > 1e-9 {
		t.Fatalf("intercept: got %v, want 1", line.Intercept)
	}
}

func TestFitLineDegenerate(t *testing.T) {
	if _, ok := FitLine([]float64{1}, []float64{2}); ok {
		t.Fatalf("single point must not fit")
	}
	if _, ok := FitLine([]float64{3, 3, 3}, []float64{1, 2, 3}); ok {
		t.Fatalf("constant x must not fit")
	}
	if _, ok := FitLine([]float64{1, 2}, []float64{1}); ok {
		t.Fatalf("length mismatch must not fit")
	}
}

func TestRenderRegressionStaticNumericPair(t *testing.T) {
	ds := mixedDataset(t)
	data, err := RenderRegressionStatic(ds, "visits", "sales")
	assertPNG(t, data, err)
}

func TestRenderRegressionStaticNonNumericDisablesTrend(t *testing.T) {
	ds := mixedDataset(t)
	// region is categorical, the scatter still renders with the trend dropped
	data, err := RenderRegressionStatic(ds, "region", "sales")
	assertPNG(t, data, err)
}

func TestRenderRegressionInteractiveNonNumeric(t *testing.T) {
	ds := mixedDataset(t)
	html, err := RenderRegressionInteractive(ds, "region", "sales")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "trend line disabled") {
		t.Fatalf("expected disabled-trend annotation, got %q", html)
	}
	if !strings.Contains(html, "echarts") {
		t.Fatalf("expected a scatter snippet alongside the annotation, got %q", html)
	}
}

func TestRegressionSeriesEncodesCategories(t *testing.T) {
	ds := mixedDataset(t)
	xs, ys, fit, ok := regressionSeries(ds, "region", "sales")
	if !ok {
		t.Fatalf("expected a usable series")
	}
	if fit {
		t.Fatalf("categorical feature must not be fittable")
	}
	if len(xs) != len(ys) || len(xs) < 2 {
		t.Fatalf("got %d/%d points", len(xs), len(ys))
	}
	// first-appearance codes start at zero
	if xs[0] != 0 {
		t.Fatalf("first category code: got %v, want 0", xs[0])
	}
}

func TestRenderRegressionInteractiveNumericPair(t *testing.T) {
	ds := mixedDataset(t)
	html, err := RenderRegressionInteractive(ds, "visits", "sales")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "echarts") {
		t.Fatalf("expected an echarts snippet, got %d bytes", len(html))
	}
}

func TestRenderRegressionMissingColumn(t *testing.T) {
	ds := dataset.New([]string{"a"}, [][]string{{"1"}, {"2"}})
	data, err := RenderRegressionStatic(ds, "a", "not_there")
	assertPNG(t, data, err)
}
