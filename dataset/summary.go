// summary.go renders the "smart summary": the compact textual
// fingerprint of a dataset sent to the model as analysis context.
//
// The output is deterministic for a given dataset. All literal braces
// are doubled at the very end because the prompt builder substitutes
// named placeholders into a template.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary produces the textual fingerprint of the dataset: shape, dtypes,
// descriptive statistics, head/tail rows, null and duplicate counts,
// column lists by kind, and the numeric correlation matrix. A dataset
// with zero numeric columns simply gets an empty correlation section.
func Summary(d *Dataset) string {
	var sb strings.Builder

	sb.WriteString("This is the Smart Summary of the dataset:\n")
	fmt.Fprintf(&sb, "shape: (%d, %d)\n\n", d.Rows(), len(d.cols))

	sb.WriteString("columns:\n")
	for _, c := range d.cols {
		fmt.Fprintf(&sb, "  %s: %s\n", c.Name, c.Kind)
	}
	sb.WriteString("\n")

	sb.WriteString("describe:\n")
	for _, desc := range d.DescribeNumeric() {
		fmt.Fprintf(&sb, "  %s: count=%d mean=%s std=%s min=%s 25%%=%s 50%%=%s 75%%=%s max=%s\n",
			desc.Name, desc.Count,
			num(desc.Mean), num(desc.Std), num(desc.Min),
			num(desc.Q1), num(desc.Median), num(desc.Q3), num(desc.Max))
	}
	sb.WriteString("\n")

	sb.WriteString("head:\n")
	writeRows(&sb, d, 0, min(5, d.Rows()))
	sb.WriteString("\ntail:\n")
	writeRows(&sb, d, max(0, d.Rows()-5), d.Rows())
	sb.WriteString("\n")

	sb.WriteString("null values sum:\n")
	for _, c := range d.cols {
		fmt.Fprintf(&sb, "  %s: %d\n", c.Name, c.Nulls())
	}
	fmt.Fprintf(&sb, "\nduplicated sum: %d\n\n", d.DuplicateRows())

	fmt.Fprintf(&sb, "numerical columns: [%s]\n", strings.Join(d.NumericColumns(), ", "))
	fmt.Fprintf(&sb, "categorical columns: [%s]\n", strings.Join(d.CategoricalColumns(), ", "))
	fmt.Fprintf(&sb, "date time columns: [%s]\n\n", strings.Join(d.DatetimeColumns(), ", "))

	sb.WriteString("correlation:\n")
	names, matrix := d.Correlation()
	if len(names) > 0 {
		fmt.Fprintf(&sb, "  %s\n", strings.Join(names, "  "))
		for i, name := range names {
			cells := make([]string, len(matrix[i]))
			for j, v := range matrix[i] {
				cells[j] = num(v)
			}
			fmt.Fprintf(&sb, "  %s: %s\n", name, strings.Join(cells, "  "))
		}
	}

	// Double braces so the text survives named-placeholder substitution
	// in the prompt template.
	out := sb.String()
	out = strings.ReplaceAll(out, "{", "{{")
	out = strings.ReplaceAll(out, "}", "}}")
	return out
}

func writeRows(sb *strings.Builder, d *Dataset, from, to int) {
	fmt.Fprintf(sb, "  | %s |\n", strings.Join(d.ColumnNames(), " | "))
	for r := from; r < to; r++ {
		cells := make([]string, len(d.cols))
		for i := range d.cols {
			cells[i] = d.cols[i].cells[r]
		}
		fmt.Fprintf(sb, "  | %s |\n", strings.Join(cells, " | "))
	}
}

// num formats a float compactly and deterministically.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
