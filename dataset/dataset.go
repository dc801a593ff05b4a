// Package dataset holds the in-memory tabular dataset: loading from
// CSV/spreadsheet files, per-column type inference, descriptive
// statistics, and the textual summary sent to the model.
//
// Design decisions:
//   - A Dataset is immutable after load. Chart rendering that needs to
//     coerce columns works on a Clone, never the original.
//   - Cells are kept as raw strings with parsed numeric/time caches per
//     column, so the loader never loses the original text.
//   - Empty cells are nulls. Type inference only looks at non-empty cells.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a column's inferred type.
type Kind int

const (
	Categorical Kind = iota
	Numeric
	Datetime
)

// String returns the dtype name used in summaries.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "number"
	case Datetime:
		return "datetime"
	default:
		return "object"
	}
}

// Column is one named, typed column.
type Column struct {
	Name string
	Kind Kind

	cells []string    // raw text, "" = null
	nums  []float64   // parsed values for Numeric columns, NaN = null
	times []time.Time // parsed values for Datetime columns, zero = null
}

// Dataset is an ordered collection of columns of equal length.
type Dataset struct {
	cols []Column
	rows int
}

// New builds a dataset from a header row and data rows. Short rows are
// padded with nulls; long rows are truncated to the header width.
func New(header []string, records [][]string) *Dataset {
	cols := make([]Column, len(header))
	for i, name := range header {
		cells := make([]string, len(records))
		for r, rec := range records {
			if i < len(rec) {
				cells[r] = strings.TrimSpace(rec[i])
			}
		}
		cols[i] = inferColumn(strings.TrimSpace(name), cells)
	}
	return &Dataset{cols: cols, rows: len(records)}
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.rows }

// ColumnNames returns all column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the ordered column slice.
func (d *Dataset) Columns() []Column { return d.cols }

// Column looks up a column by exact name.
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.cols {
		if d.cols[i].Name == name {
			return &d.cols[i], true
		}
	}
	return nil, false
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.Column(name)
	return ok
}

// NumericColumns returns the names of all numeric columns in order.
func (d *Dataset) NumericColumns() []string { return d.namesOfKind(Numeric) }

// CategoricalColumns returns the names of all categorical columns in order.
func (d *Dataset) CategoricalColumns() []string { return d.namesOfKind(Categorical) }

// DatetimeColumns returns the names of all datetime columns in order.
func (d *Dataset) DatetimeColumns() []string { return d.namesOfKind(Datetime) }

func (d *Dataset) namesOfKind(k Kind) []string {
	var names []string
	for _, c := range d.cols {
		if c.Kind == k {
			names = append(names, c.Name)
		}
	}
	return names
}

// Clone returns a defensive deep copy. Per-chart fallback logic works on
// the copy so concurrent resolutions could never interfere with the
// original dataset.
func (d *Dataset) Clone() *Dataset {
	cols := make([]Column, len(d.cols))
	for i, c := range d.cols {
		cols[i] = Column{
			Name:  c.Name,
			Kind:  c.Kind,
			cells: append([]string(nil), c.cells...),
			nums:  append([]float64(nil), c.nums...),
			times: append([]time.Time(nil), c.times...),
		}
	}
	return &Dataset{cols: cols, rows: d.rows}
}

// Cells returns the raw cell text for the column ("" = null).
func (c *Column) Cells() []string { return c.cells }

// Cell returns the raw text of row i.
func (c *Column) Cell(i int) string { return c.cells[i] }

// Nulls counts empty cells in the column.
func (c *Column) Nulls() int {
	n := 0
	for _, cell := range c.cells {
		if cell == "" {
			n++
		}
	}
	return n
}

// Numbers returns the non-null numeric values of a Numeric column in row
// order. For other kinds it returns nil.
func (c *Column) Numbers() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for _, v := range c.nums {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NumberAt returns the parsed value of row i and whether it is non-null.
func (c *Column) NumberAt(i int) (float64, bool) {
	if c.Kind != Numeric || i >= len(c.nums) {
		return 0, false
	}
	v := c.nums[i]
	return v, !math.IsNaN(v)
}

// AlignedNumbers returns the numeric values of columns x and y restricted
// to rows where both are non-null, preserving row order. Either column
// being non-numeric yields empty slices.
func (d *Dataset) AlignedNumbers(x, y string) (xs, ys []float64) {
	cx, okx := d.Column(x)
	cy, oky := d.Column(y)
	if !okx || !oky || cx.Kind != Numeric || cy.Kind != Numeric {
		return nil, nil
	}
	for i := 0; i < d.rows; i++ {
		vx, ok1 := cx.NumberAt(i)
		vy, ok2 := cy.NumberAt(i)
		if ok1 && ok2 {
			xs = append(xs, vx)
			ys = append(ys, vy)
		}
	}
	return xs, ys
}

// ValueCounts tallies the non-null values of a column, returned as
// parallel label/count slices sorted by descending count (ties broken by
// first appearance).
func (c *Column) ValueCounts() (labels []string, counts []int) {
	idx := make(map[string]int)
	for _, cell := range c.cells {
		if cell == "" {
			continue
		}
		if i, ok := idx[cell]; ok {
			counts[i]++
			continue
		}
		idx[cell] = len(labels)
		labels = append(labels, cell)
		counts = append(counts, 1)
	}
	// insertion-stable selection sort; cardinality is small in practice
	for i := 0; i < len(counts); i++ {
		best := i
		for j := i + 1; j < len(counts); j++ {
			if counts[j] > counts[best] {
				best = j
			}
		}
		if best != i {
			labels[i], labels[best] = labels[best], labels[i]
			counts[i], counts[best] = counts[best], counts[i]
		}
	}
	return labels, counts
}

// dateLayouts are the accepted datetime cell formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
}

func inferColumn(name string, cells []string) Column {
	col := Column{Name: name, cells: cells}

	numeric := true
	datetime := true
	nonEmpty := 0
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if numeric {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
		}
		if datetime {
			if _, ok := parseTime(cell); !ok {
				datetime = false
			}
		}
	}
	if nonEmpty == 0 {
		return col // all-null column stays categorical
	}

	switch {
	case numeric:
		col.Kind = Numeric
		col.nums = make([]float64, len(cells))
		for i, cell := range cells {
			if cell == "" {
				col.nums[i] = math.NaN()
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			col.nums[i] = v
		}
	case datetime:
		col.Kind = Datetime
		col.times = make([]time.Time, len(cells))
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			t, _ := parseTime(cell)
			col.times[i] = t
		}
	}
	return col
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
