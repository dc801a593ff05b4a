// Package chart is the chart resolution and rendering engine: it turns
// model-authored plot specifications (untrusted, free-form strings) into
// rendered figures for the interactive view and the PDF.
//
// Design decisions:
//   - Specifications are never executed. A constrained structural parser
//     extracts a chart kind and column bindings; only a fixed, closed set
//     of kinds is dispatched, each with its own safe rendering routine.
//   - Column resolution (finding valid x/y for a dataset schema) lives in
//     one shared pure function used by both the interactive and the
//     static backend.
//   - Every static render path ends in an image: bad specs degrade to
//     fallback columns or to a neutral placeholder, never to a panic or
//     a skipped slot.
package chart

import (
	"regexp"
	"strings"
)

// Kind is the closed set of chart families the engine can dispatch.
type Kind string

const (
	KindBar       Kind = "bar"
	KindLine      Kind = "line"
	KindScatter   Kind = "scatter"
	KindHistogram Kind = "histogram"
	KindBox       Kind = "box"
	KindPie       Kind = "pie"
	KindArea      Kind = "area"
	KindHeatmap   Kind = "heatmap"
	KindViolin    Kind = "violin"
)

// Spec is one parsed chart specification: the declared kind plus the
// column bindings extracted from the instruction text. Raw keeps the
// original string for error messages.
type Spec struct {
	Kind Kind
	X    string
	Y    string
	Raw  string
}

var (
	funcRe = regexp.MustCompile(`px\s*\.\s*([A-Za-z_]+)\s*\(`)
	xRe    = regexp.MustCompile(`\bx\s*=\s*['"]([^'"]+)['"]`)
	yRe    = regexp.MustCompile(`\by\s*=\s*['"]([^'"]+)['"]`)
)

// funcKinds maps plotting-function names to chart kinds.
var funcKinds = map[string]Kind{
	"bar":             KindBar,
	"line":            KindLine,
	"scatter":         KindScatter,
	"histogram":       KindHistogram,
	"box":             KindBox,
	"pie":             KindPie,
	"area":            KindArea,
	"imshow":          KindHeatmap,
	"density_heatmap": KindHeatmap,
	"violin":          KindViolin,
}

// kindTokens is the fallback scan order when no function call is found.
// Longer, more specific tokens come first so e.g. "histogram" wins over
// any shorter token it might contain.
var kindTokens = []Kind{
	KindHistogram, KindHeatmap, KindScatter, KindViolin,
	KindArea, KindLine, KindBar, KindBox, KindPie,
}

// ParseSpec classifies one raw chart instruction by structural pattern.
// The declared kind is taken from the plotting function name (or the
// first known kind token); if nothing matches, scatter is the default.
// Column bindings are pulled from x=/y= arguments, never by execution.
func ParseSpec(raw string) Spec {
	spec := Spec{Kind: KindScatter, Raw: raw}
	lower := strings.ToLower(raw)

	if m := funcRe.FindStringSubmatch(lower); m != nil {
		if k, ok := funcKinds[m[1]]; ok {
			spec.Kind = k
		}
	} else {
		for _, k := range kindTokens {
			if strings.Contains(lower, string(k)) {
				spec.Kind = k
				break
			}
		}
	}

	if m := xRe.FindStringSubmatch(raw); m != nil {
		spec.X = m[1]
	}
	if m := yRe.FindStringSubmatch(raw); m != nil {
		spec.Y = m[1]
	}
	return spec
}

// ParseSpecs parses a list of raw chart instructions in order.
func ParseSpecs(raws []string) []Spec {
	specs := make([]Spec, len(raws))
	for i, raw := range raws {
		specs[i] = ParseSpec(raw)
	}
	return specs
}
