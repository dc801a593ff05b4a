package chart

import (
	"strings"
	"testing"

	"insightagent/dataset"
)

func mixedDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(
		[]string{"region", "sales", "visits"},
		[][]string{
			{"north", "100", "10"},
			{"south", "200", "20"},
			{"north", "150", "15"},
		},
	)
}

func numericOnlyDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3", "4"}},
	)
}

func TestResolveKeepsValidBindings(t *testing.T) {
	ds := mixedDataset(t)
	res := Resolve(Spec{Kind: KindBox, X: "region", Y: "sales"}, ds)

	if res.X != "region" || res.XFallback {
		t.Fatalf("valid x replaced: %+v", res)
	}
	if res.Y != "sales" || res.YFallback {
		t.Fatalf("valid y replaced: %+v", res)
	}
}

func TestResolveInvalidXFallsBackToCategorical(t *testing.T) {
	ds := mixedDataset(t)
	res := Resolve(Spec{Kind: KindBar, X: "no_such_column", Y: "sales"}, ds)

	if res.X != "region" {
		t.Fatalf("got x %q, want first categorical column region", res.X)
	}
	if !res.XFallback || res.XSynthetic {
		t.Fatalf("fallback flags wrong: %+v", res)
	}
}

func TestResolveSyntheticIndexWithoutCategoricals(t *testing.T) {
	ds := numericOnlyDataset(t)
	res := Resolve(Spec{Kind: KindLine, X: "missing", Y: "b"}, ds)

	if res.X != SyntheticIndex || !res.XSynthetic {
		t.Fatalf("expected synthetic index x, got %+v", res)
	}
}

func TestResolveInvalidYFallsBackToNumeric(t *testing.T) {
	ds := mixedDataset(t)
	res := Resolve(Spec{Kind: KindScatter, X: "region", Y: "bogus"}, ds)

	if res.Y != "sales" {
		t.Fatalf("got y %q, want first numeric column sales", res.Y)
	}
	if !res.YFallback {
		t.Fatalf("fallback flag not set: %+v", res)
	}
}

func TestResolveNoNumericColumns(t *testing.T) {
	ds := dataset.New([]string{"tag"}, [][]string{{"x"}, {"y"}})
	res := Resolve(Spec{Kind: KindHistogram, X: "tag", Y: "missing"}, ds)

	if res.Y != "" {
		t.Fatalf("expected empty y when no numeric column exists, got %q", res.Y)
	}
}

func TestTitles(t *testing.T) {
	ds := mixedDataset(t)

	hist := Resolve(Spec{Kind: KindHistogram, X: "sales"}, ds)
	if got := hist.Title(1); !strings.Contains(got, "Distribution of sales") {
		t.Fatalf("histogram title: got %q", got)
	}

	heat := Resolve(Spec{Kind: KindHeatmap}, ds)
	if got := heat.Title(3); got != "Chart 3: Correlation Heatmap" {
		t.Fatalf("heatmap title: got %q", got)
	}
}
