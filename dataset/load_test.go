package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	csv := "name,score\nalice,90\nbob,85\n"
	ds, err := Load("grades.csv", strings.NewReader(csv), 100)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Rows())
	}
	col, ok := ds.Column("score")
	if !ok || col.Kind != Numeric {
		t.Fatalf("expected numeric score column")
	}
}

func TestLoadRejectsRowCeiling(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("v\n")
	for i := 0; i < 11; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	_, err := Load("big.csv", strings.NewReader(sb.String()), 10)
	if !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("expected ErrTooManyRows, got %v", err)
	}

	// exactly at the ceiling passes
	sb.Reset()
	sb.WriteString("v\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	if _, err := Load("ok.csv", strings.NewReader(sb.String()), 10); err != nil {
		t.Fatalf("ceiling-sized load failed: %v", err)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("data.parquet", strings.NewReader(""), 10); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	if _, err := Load("empty.csv", strings.NewReader(""), 10); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestLoadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"city", "population"},
		{"oslo", 700000},
		{"bergen", 290000},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to build workbook: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}

	ds, err := Load("cities.xlsx", &buf, 100)
	if err != nil {
		t.Fatalf("excel load failed: %v", err)
	}
	if ds.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Rows())
	}
	col, ok := ds.Column("population")
	if !ok || col.Kind != Numeric {
		t.Fatalf("expected numeric population column")
	}
}
