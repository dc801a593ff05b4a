// Package report composes the analysis deliverables: the interactive
// HTML page, the PDF document and the spoken summary. The section order
// is fixed here so the HTML and PDF views can never drift apart.
package report

import "insightagent/ai"

// ChartView is one rendered chart in both backends. HTML carries the
// interactive snippet (or an inline annotation), PNG the static raster
// for the PDF. Err notes a static render failure; the PDF prints it in
// place of the image.
type ChartView struct {
	Title string
	HTML  string
	PNG   []byte
	Err   string
}

// Document is everything the composer needs to produce one report in
// all output forms.
type Document struct {
	DatasetName string
	Role        string
	Tone        string
	Report      *ai.Report
	Charts      []ChartView

	// Regression is nil when the model's suggestion could not be used.
	Regression *ChartView
}

// Section is one narrative block. Exactly one of Paragraph or Bullets
// is set.
type Section struct {
	Title     string
	Paragraph string
	Bullets   []string
}

// Sections returns the narrative blocks in presentation order.
func (d *Document) Sections() []Section {
	return []Section{
		{Title: "Executive Summary", Paragraph: d.Report.ExecutiveSummary},
		{Title: "Key Insights", Bullets: d.Report.KeyInsights},
		{Title: "Data Quality Issues", Bullets: d.Report.DataQualityIssues},
		{Title: "Recommendations", Bullets: d.Report.Recommendations},
	}
}
