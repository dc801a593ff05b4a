// load.go reads delimited text and spreadsheet files into a Dataset.
//
// The row ceiling is enforced here, once, before any other processing:
// an oversized file is rejected with ErrTooManyRows and nothing
// downstream ever sees it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrTooManyRows marks a dataset exceeding the configured row ceiling.
var ErrTooManyRows = errors.New("dataset exceeds row ceiling")

// ErrEmptyDataset marks a file with no header row.
var ErrEmptyDataset = errors.New("dataset has no header row")

// Load reads a dataset from r, dispatching on the file extension of name
// (".csv" → delimited text, ".xlsx"/".xls" → spreadsheet). maxRows is the
// data-row ceiling.
func Load(name string, r io.Reader, maxRows int) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return LoadCSV(r, maxRows)
	case ".xlsx", ".xls":
		return LoadExcel(r, maxRows)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv, .xls or .xlsx", filepath.Ext(name))
	}
}

// LoadCSV reads a delimited text table. The first record is the header.
func LoadCSV(r io.Reader, maxRows int) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, New pads them

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(records)-1 > maxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrTooManyRows, len(records)-1, maxRows)
	}
	return New(records[0], records[1:]), nil
}

// LoadExcel reads the first sheet of a spreadsheet. The first row is the
// header.
func LoadExcel(r io.Reader, maxRows int) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(rows)-1 > maxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrTooManyRows, len(rows)-1, maxRows)
	}
	return New(rows[0], rows[1:]), nil
}
