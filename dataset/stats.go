// stats.go derives descriptive statistics used by the summary and by
// chart rendering: per-column five-number summaries, null and duplicate
// counts, and the pairwise Pearson correlation matrix.
package dataset

import (
	"strings"

	"github.com/montanaflynn/stats"
)

// Describe holds the descriptive statistics of one numeric column.
type Describe struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// DescribeNumeric computes descriptive statistics for every numeric
// column, in column order. Columns with no non-null values are reported
// with Count 0 and zeroed statistics.
func (d *Dataset) DescribeNumeric() []Describe {
	var out []Describe
	for i := range d.cols {
		c := &d.cols[i]
		if c.Kind != Numeric {
			continue
		}
		desc := Describe{Name: c.Name}
		values := c.Numbers()
		desc.Count = len(values)
		if len(values) > 0 {
			desc.Mean, _ = stats.Mean(values)
			desc.Std, _ = stats.StandardDeviation(values)
			desc.Min, _ = stats.Min(values)
			desc.Max, _ = stats.Max(values)
			desc.Median, _ = stats.Median(values)
			if q, err := stats.Quartile(values); err == nil {
				desc.Q1 = q.Q1
				desc.Q3 = q.Q3
			}
		}
		out = append(out, desc)
	}
	return out
}

// FiveNumber returns min, q1, median, q3, max of a numeric column.
// ok is false when the column has no usable values.
func (d *Dataset) FiveNumber(name string) (fn [5]float64, ok bool) {
	c, found := d.Column(name)
	if !found || c.Kind != Numeric {
		return fn, false
	}
	values := c.Numbers()
	if len(values) == 0 {
		return fn, false
	}
	fn[0], _ = stats.Min(values)
	fn[2], _ = stats.Median(values)
	fn[4], _ = stats.Max(values)
	if q, err := stats.Quartile(values); err == nil {
		fn[1] = q.Q1
		fn[3] = q.Q3
	} else {
		fn[1], fn[3] = fn[0], fn[4]
	}
	return fn, true
}

// DuplicateRows counts rows that are exact duplicates of an earlier row.
func (d *Dataset) DuplicateRows() int {
	if len(d.cols) == 0 {
		return 0
	}
	seen := make(map[string]bool, d.rows)
	dups := 0
	var sb strings.Builder
	for r := 0; r < d.rows; r++ {
		sb.Reset()
		for i := range d.cols {
			sb.WriteString(d.cols[i].cells[r])
			sb.WriteByte('\x1f') // unit separator, avoids cell-boundary collisions
		}
		key := sb.String()
		if seen[key] {
			dups++
		} else {
			seen[key] = true
		}
	}
	return dups
}

// Correlation computes the pairwise Pearson correlation matrix over the
// numeric columns, each pair restricted to rows where both values are
// non-null. Pairs with fewer than two shared rows (or zero variance)
// report 0. With no numeric columns both return values are empty.
func (d *Dataset) Correlation() (names []string, matrix [][]float64) {
	names = d.NumericColumns()
	matrix = make([][]float64, len(names))
	for i := range names {
		matrix[i] = make([]float64, len(names))
		for j := range names {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			xs, ys := d.AlignedNumbers(names[i], names[j])
			if len(xs) < 2 {
				continue
			}
			if r, err := stats.Pearson(xs, ys); err == nil {
				matrix[i][j] = r
			}
		}
	}
	return names, matrix
}
