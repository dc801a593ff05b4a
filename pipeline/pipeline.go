// Package pipeline runs one full analysis: dataset summary, model call,
// report parsing, chart rendering in both backends, PDF and speech.
package pipeline

import (
	"context"
	"fmt"

	"insightagent/ai"
	"insightagent/applog"
	"insightagent/chart"
	"insightagent/config"
	"insightagent/dataset"
	"insightagent/report"
)

// Result is everything one analysis produced. PDF and AudioMP3 may be
// empty; their warnings explain why.
type Result struct {
	Report     *ai.Report
	Document   *report.Document
	PDF        []byte
	PDFWarning string
	AudioMP3   []byte
	AudioNote  string
}

// Run executes the pipeline. Ingestion already happened, ds is loaded
// and under the row ceiling. A model or report-contract failure is
// fatal; individual chart failures are not.
func Run(ctx context.Context, cfg config.Config, provider ai.Provider, ds *dataset.Dataset, name, role, tone string) (*Result, error) {
	summary := dataset.Summary(ds)
	prompt := ai.BuildPrompt(tone, role, summary)

	ai.LogAnalysisRequest(provider.Name(), role, tone, prompt)
	raw, err := ai.AnalyzeWithRetry(ctx, provider, prompt, cfg.AnalyzeTimeout, cfg.AnalyzeRetries)
	if err != nil {
		ai.LogAnalysisResponse(raw, nil, err)
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	rep, err := ai.ParseReport(raw)
	ai.LogAnalysisResponse(raw, rep, err)
	if err != nil {
		return nil, fmt.Errorf("model response rejected: %w", err)
	}

	doc := &report.Document{
		DatasetName: name,
		Role:        role,
		Tone:        tone,
		Report:      rep,
		Charts:      renderCharts(ds, rep.PlotCodes),
		Regression:  renderRegression(ds, rep.RegressionSuggestion),
	}

	res := &Result{Report: rep, Document: doc}

	res.PDF, res.PDFWarning, err = report.BuildPDF(doc, cfg.FontRegular, cfg.FontBold)
	if err != nil {
		// the report is still usable without its PDF
		applog.Error("pdf build failed: %v", err)
		res.PDFWarning = fmt.Sprintf("pdf generation failed: %v", err)
	}

	res.AudioMP3, err = report.Speech(rep.ExecutiveSummary, cfg.SpeechLanguage)
	if err != nil {
		applog.Error("speech synthesis failed: %v", err)
		res.AudioNote = fmt.Sprintf("audio unavailable: %v", err)
	}

	return res, nil
}

// renderCharts resolves and renders every model-authored chart spec in
// order. One bad spec never suppresses its siblings.
func renderCharts(ds *dataset.Dataset, plotCodes []string) []report.ChartView {
	specs := chart.ParseSpecs(plotCodes)
	views := make([]report.ChartView, len(specs))
	for i, spec := range specs {
		res := chart.Resolve(spec, ds)
		title := res.Title(i + 1)
		view := report.ChartView{Title: title}

		html, err := chart.RenderInteractive(ds, res, title)
		if err != nil {
			applog.Warn("interactive chart %d failed: %v", i+1, err)
			html = chart.AnnotationHTML(title, err.Error())
		}
		view.HTML = html

		png, err := chart.RenderStatic(ds, res, title)
		if err != nil {
			applog.Warn("static chart %d failed: %v", i+1, err)
			view.Err = err.Error()
		}
		view.PNG = png

		views[i] = view
	}
	return views
}

// renderRegression applies the model's regression suggestion. A missing
// suggestion yields nil; an unusable one still yields a view, the
// renderers annotate it themselves.
func renderRegression(ds *dataset.Dataset, sug ai.RegressionSuggestion) *report.ChartView {
	if sug.TargetVariable == "" || sug.FeatureVariable == "" {
		return nil
	}

	title := fmt.Sprintf("Regression: %s vs %s", sug.TargetVariable, sug.FeatureVariable)
	view := &report.ChartView{Title: title}

	html, err := chart.RenderRegressionInteractive(ds, sug.FeatureVariable, sug.TargetVariable)
	if err != nil {
		applog.Warn("interactive regression failed: %v", err)
		html = chart.AnnotationHTML(title, err.Error())
	}
	view.HTML = html

	png, err := chart.RenderRegressionStatic(ds, sug.FeatureVariable, sug.TargetVariable)
	if err != nil {
		applog.Warn("static regression failed: %v", err)
		view.Err = err.Error()
	}
	view.PNG = png

	return view
}
