package chart

import (
	"bytes"
	"fmt"
	"testing"

	"insightagent/dataset"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("output is not a PNG (got %d bytes)", len(data))
	}
}

func TestRenderStaticAllKinds(t *testing.T) {
	ds := mixedDataset(t)

	for _, kind := range []Kind{
		KindBar, KindLine, KindScatter, KindHistogram,
		KindBox, KindPie, KindArea, KindHeatmap, KindViolin,
	} {
		res := Resolve(Spec{Kind: kind, X: "region", Y: "sales"}, ds)
		data, err := RenderStatic(ds, res, "test chart")
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if !bytes.HasPrefix(data, pngMagic) {
			t.Fatalf("kind %q: output is not a PNG", kind)
		}
	}
}

func TestRenderStaticUnknownKindPlaceholder(t *testing.T) {
	ds := mixedDataset(t)
	data, err := RenderStatic(ds, Resolved{Kind: Kind("nonsense"), Y: "sales"}, "mystery")
	assertPNG(t, data, err)
}

func TestHeatmapWithOneNumericColumn(t *testing.T) {
	ds := dataset.New(
		[]string{"tag", "v"},
		[][]string{{"a", "1"}, {"b", "2"}},
	)
	res := Resolve(Spec{Kind: KindHeatmap}, ds)
	data, err := RenderStatic(ds, res, "heatmap")
	assertPNG(t, data, err)
}

func TestViolinConstantColumn(t *testing.T) {
	ds := dataset.New(
		[]string{"v"},
		[][]string{{"5"}, {"5"}, {"5"}},
	)
	res := Resolve(Spec{Kind: KindViolin, Y: "v"}, ds)
	data, err := RenderStatic(ds, res, "violin")
	assertPNG(t, data, err)
}

func TestStaticBarAggregatesMeanByCategory(t *testing.T) {
	ds := mixedDataset(t)
	res := Resolve(Spec{Kind: KindBar, X: "region", Y: "sales"}, ds)
	labels, values := barData(ds, res)

	if len(labels) != 2 {
		t.Fatalf("expected 2 categories, got %v", labels)
	}
	// north appears twice (100, 150), mean 125; it sorts first by count
	if labels[0] != "north" || values[0] != 125 {
		t.Fatalf("got %q=%v, want north=125", labels[0], values[0])
	}
}

func TestXYSeriesKeepsDatetimeLabels(t *testing.T) {
	ds := dataset.New(
		[]string{"day", "sales"},
		[][]string{{"2024-01-01", "100"}, {"2024-01-02", "150"}, {"2024-01-03", "120"}},
	)
	res := Resolve(Spec{Kind: KindLine, X: "day", Y: "sales"}, ds)

	xs, _, labels, ok := xySeries(ds, res)
	if !ok {
		t.Fatalf("expected a usable series")
	}
	if len(labels) != len(xs) {
		t.Fatalf("got %d labels for %d points", len(labels), len(xs))
	}
	if labels[1] != "2024-01-02" {
		t.Fatalf("label 1: got %q, want the date cell", labels[1])
	}

	data, err := RenderStatic(ds, res, "sales over time")
	assertPNG(t, data, err)
}

func TestAxisTicksThinsLongLabelRuns(t *testing.T) {
	labels := make([]string, 40)
	for i := range labels {
		labels[i] = fmt.Sprintf("d%d", i)
	}
	ticks := axisTicks(labels)
	if len(ticks) > maxBarSlots {
		t.Fatalf("got %d ticks, want at most %d", len(ticks), maxBarSlots)
	}
	if ticks[0].Value != 0 || ticks[0].Label != "d0" {
		t.Fatalf("first tick: got %+v", ticks[0])
	}
}

func TestBinValues(t *testing.T) {
	labels, counts := binValues([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if len(labels) != 5 || len(counts) != 5 {
		t.Fatalf("expected 5 bins, got %d/%d", len(labels), len(counts))
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Fatalf("bin counts sum to %v, want 10", total)
	}
}
