package chart

import (
	"strings"
	"testing"

	"insightagent/dataset"
)

func TestRenderInteractiveAllKinds(t *testing.T) {
	ds := mixedDataset(t)

	for _, kind := range []Kind{
		KindBar, KindLine, KindScatter, KindHistogram,
		KindBox, KindPie, KindArea, KindHeatmap, KindViolin,
	} {
		res := Resolve(Spec{Kind: kind, X: "region", Y: "sales"}, ds)
		html, err := RenderInteractive(ds, res, "test chart")
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if html == "" {
			t.Fatalf("kind %q: empty snippet", kind)
		}
		if strings.Contains(html, "<html") || strings.Contains(html, "<body") {
			t.Fatalf("kind %q: snippet still contains page scaffolding", kind)
		}
	}
}

func TestInteractiveLineUsesDatetimeLabels(t *testing.T) {
	ds := dataset.New(
		[]string{"day", "sales"},
		[][]string{{"2024-01-01", "100"}, {"2024-01-02", "150"}, {"2024-01-03", "120"}},
	)
	res := Resolve(Spec{Kind: KindLine, X: "day", Y: "sales"}, ds)
	html, err := RenderInteractive(ds, res, "sales over time")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "2024-01-02") {
		t.Fatalf("expected date labels on the axis, got %d bytes without them", len(html))
	}
}

func TestRenderInteractiveUnknownKindAnnotates(t *testing.T) {
	ds := mixedDataset(t)
	html, err := RenderInteractive(ds, Resolved{Kind: Kind("nonsense")}, "mystery")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "chart-note") {
		t.Fatalf("expected annotation block, got %q", html)
	}
}

func TestRenderInteractiveHeatmapTooFewNumeric(t *testing.T) {
	ds := dataset.New([]string{"tag", "v"}, [][]string{{"a", "1"}, {"b", "2"}})
	res := Resolve(Spec{Kind: KindHeatmap}, ds)
	html, err := RenderInteractive(ds, res, "heatmap")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "chart-note") {
		t.Fatalf("expected annotation for single numeric column, got %q", html)
	}
}

func TestAnnotationHTMLEscapes(t *testing.T) {
	html := AnnotationHTML("title", `<script>alert("x")</script>`)
	if strings.Contains(html, "<script>") {
		t.Fatalf("annotation did not escape model-controlled text: %q", html)
	}
}
