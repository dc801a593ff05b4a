// resolve.go binds a parsed specification to columns that actually exist
// in the dataset. Both rendering backends consume the same resolution so
// the fallback heuristics can never diverge between screen and PDF.
package chart

import (
	"fmt"

	"insightagent/dataset"
)

// SyntheticIndex is the x-axis label used when no categorical column
// exists to substitute for an invalid x binding.
const SyntheticIndex = "index"

// Resolved is a specification bound to schema-valid column names.
type Resolved struct {
	Kind Kind

	// X and Y are existing column names after fallback. X may equal
	// SyntheticIndex (with XSynthetic set) when the dataset offers no
	// usable column.
	X string
	Y string

	// XSynthetic marks the synthetic row-index x column.
	XSynthetic bool

	// XFallback/YFallback record that the declared binding was missing
	// or invalid and got substituted.
	XFallback bool
	YFallback bool
}

// Resolve validates the spec's column bindings against the dataset and
// substitutes fallbacks: an invalid x prefers the first categorical
// column, then the synthetic row index; an invalid y takes the first
// numeric column (empty when the dataset has none).
func Resolve(spec Spec, ds *dataset.Dataset) Resolved {
	res := Resolved{Kind: spec.Kind}

	if spec.X != "" && ds.HasColumn(spec.X) {
		res.X = spec.X
	} else {
		res.XFallback = true
		if cats := ds.CategoricalColumns(); len(cats) > 0 {
			res.X = cats[0]
		} else {
			res.X = SyntheticIndex
			res.XSynthetic = true
		}
	}

	if spec.Y != "" && ds.HasColumn(spec.Y) {
		res.Y = spec.Y
	} else {
		res.YFallback = true
		if nums := ds.NumericColumns(); len(nums) > 0 {
			res.Y = nums[0]
		}
	}

	return res
}

// Title generates the per-chart display title from the resolved bindings.
func (r Resolved) Title(seq int) string {
	switch r.Kind {
	case KindHistogram:
		return fmt.Sprintf("Chart %d: Distribution of %s", seq, r.histColumn())
	case KindHeatmap:
		return fmt.Sprintf("Chart %d: Correlation Heatmap", seq)
	case KindBox, KindViolin:
		return fmt.Sprintf("Chart %d: %s of %s", seq, titleName(r.Kind), r.Y)
	case KindPie:
		return fmt.Sprintf("Chart %d: Share of %s", seq, r.pieColumn())
	default:
		return fmt.Sprintf("Chart %d: %s of %s by %s", seq, titleName(r.Kind), r.Y, r.X)
	}
}

// histColumn is the column a histogram actually bins: the x binding when
// present, otherwise the y fallback.
func (r Resolved) histColumn() string {
	if r.X != "" && !r.XSynthetic {
		return r.X
	}
	return r.Y
}

// pieColumn is the column a pie chart tallies: the y binding when
// present, otherwise x.
func (r Resolved) pieColumn() string {
	if r.Y != "" {
		return r.Y
	}
	return r.X
}

func titleName(k Kind) string {
	switch k {
	case KindBar:
		return "Bar chart"
	case KindLine:
		return "Line chart"
	case KindScatter:
		return "Scatter plot"
	case KindBox:
		return "Box plot"
	case KindArea:
		return "Area chart"
	case KindViolin:
		return "Violin plot"
	default:
		return string(k)
	}
}
