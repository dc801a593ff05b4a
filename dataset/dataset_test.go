package dataset

import (
	"testing"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	header := []string{"region", "sales", "visits", "signup_date"}
	records := [][]string{
		{"north", "100.5", "10", "2024-01-01"},
		{"south", "200", "20", "2024-01-02"},
		{"north", "150.25", "", "2024-01-03"},
		{"east", "50", "5", "2024-01-04"},
	}
	return New(header, records)
}

func TestTypeInference(t *testing.T) {
	ds := testDataset(t)

	cases := []struct {
		column string
		want   Kind
	}{
		{"region", Categorical},
		{"sales", Numeric},
		{"visits", Numeric},
		{"signup_date", Datetime},
	}
	for _, tc := range cases {
		col, ok := ds.Column(tc.column)
		if !ok {
			t.Fatalf("column %q not found", tc.column)
		}
		if col.Kind != tc.want {
			t.Fatalf("column %q: got kind %v, want %v", tc.column, col.Kind, tc.want)
		}
	}
}

func TestNumericColumnWithNulls(t *testing.T) {
	ds := testDataset(t)
	col, _ := ds.Column("visits")

	if got := col.Nulls(); got != 1 {
		t.Fatalf("expected 1 null, got %d", got)
	}
	if got := len(col.Numbers()); got != 3 {
		t.Fatalf("expected 3 non-null numbers, got %d", got)
	}
	if _, ok := col.NumberAt(2); ok {
		t.Fatalf("expected row 2 of visits to be null")
	}
}

func TestRaggedRowsArePadded(t *testing.T) {
	ds := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	if ds.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Rows())
	}
	col, _ := ds.Column("b")
	if got := col.Cell(1); got != "" {
		t.Fatalf("expected padded empty cell, got %q", got)
	}
}

func TestValueCountsOrder(t *testing.T) {
	ds := testDataset(t)
	col, _ := ds.Column("region")
	labels, counts := col.ValueCounts()

	if labels[0] != "north" || counts[0] != 2 {
		t.Fatalf("expected north first with count 2, got %q count %d", labels[0], counts[0])
	}
	if len(labels) != 3 {
		t.Fatalf("expected 3 distinct values, got %d", len(labels))
	}
}

func TestAlignedNumbersSkipsNulls(t *testing.T) {
	ds := testDataset(t)
	xs, ys := ds.AlignedNumbers("sales", "visits")

	if len(xs) != 3 || len(ys) != 3 {
		t.Fatalf("expected 3 aligned pairs, got %d/%d", len(xs), len(ys))
	}
	// row 2 has a null visit, so sales 150.25 should not appear
	for _, x := range xs {
		if x == 150.25 {
			t.Fatalf("null-paired row leaked into aligned series")
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds := testDataset(t)
	clone := ds.Clone()

	col, _ := clone.Column("region")
	col.Cells()[0] = "mutated"

	orig, _ := ds.Column("region")
	if orig.Cell(0) == "mutated" {
		t.Fatalf("clone shares cell storage with the original")
	}
}

func TestAllNullColumnIsCategorical(t *testing.T) {
	ds := New([]string{"empty"}, [][]string{{""}, {""}})
	col, _ := ds.Column("empty")
	if col.Kind != Categorical {
		t.Fatalf("all-null column: got kind %v, want Categorical", col.Kind)
	}
}
