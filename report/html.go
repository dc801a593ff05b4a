package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

// echartsAssetURL matches the runtime script go-echarts references in
// its generated pages. Loaded once here instead of per snippet.
const echartsAssetURL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

type chartBlock struct {
	Title   string
	Snippet template.HTML
}

type reportPage struct {
	DatasetName string
	Role        string
	Tone        string
	Sections    []Section
	Charts      []chartBlock
	Regression  *chartBlock
	PDFHref     template.URL
	PDFWarning  string
	AudioSrc    template.URL
}

// RenderHTMLPage produces the full report page. The PDF and audio are
// embedded as data URIs so nothing persists on the server between
// requests; either may be empty and its block is then omitted.
func RenderHTMLPage(doc *Document, pdf []byte, pdfWarning string, audio []byte) ([]byte, error) {
	page := reportPage{
		DatasetName: doc.DatasetName,
		Role:        doc.Role,
		Tone:        doc.Tone,
		Sections:    doc.Sections(),
		PDFWarning:  pdfWarning,
	}
	for _, cv := range doc.Charts {
		page.Charts = append(page.Charts, chartBlock{Title: cv.Title, Snippet: template.HTML(cv.HTML)})
	}
	if doc.Regression != nil {
		page.Regression = &chartBlock{Title: doc.Regression.Title, Snippet: template.HTML(doc.Regression.HTML)}
	}
	if len(pdf) > 0 {
		page.PDFHref = template.URL("data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf))
	}
	if len(audio) > 0 {
		page.AudioSrc = template.URL("data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio))
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("report page render failed: %w", err)
	}
	return buf.Bytes(), nil
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Analysis Report: {{.DatasetName}}</title>
<script src="` + echartsAssetURL + `"></script>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; max-width: 960px; margin: 0 auto; padding: 24px; color: #1a1a2e; }
  header { border-bottom: 2px solid #16213e; margin-bottom: 16px; padding-bottom: 8px; }
  header h1 { margin: 0 0 4px 0; font-size: 24px; }
  header .meta { color: #666; font-size: 13px; }
  nav.tabs { display: flex; gap: 8px; margin: 16px 0; }
  nav.tabs button { padding: 8px 18px; border: 1px solid #16213e; background: #fff; cursor: pointer; font-size: 14px; }
  nav.tabs button.active { background: #16213e; color: #fff; }
  .tab { display: none; }
  .tab.active { display: block; }
  section.block { margin-bottom: 20px; }
  section.block h2 { font-size: 18px; border-left: 4px solid #0f3460; padding-left: 8px; }
  ul { margin: 4px 0; }
  .chart-wrap { margin-bottom: 28px; }
  .chart-wrap h3 { font-size: 15px; margin-bottom: 4px; }
  .chart-note { border: 1px dashed #c0392b; color: #c0392b; padding: 12px; margin: 8px 0; }
  .warning { background: #fdf2e3; border: 1px solid #e6a23c; padding: 10px; margin: 12px 0; }
  .downloads { margin-top: 24px; padding-top: 12px; border-top: 1px solid #ddd; }
  .downloads a { display: inline-block; padding: 8px 16px; background: #0f3460; color: #fff; text-decoration: none; }
</style>
</head>
<body>
<header>
  <h1>Analysis Report: {{.DatasetName}}</h1>
  <div class="meta">Audience: {{.Role}} &middot; Tone: {{.Tone}}</div>
</header>

{{if .AudioSrc}}<audio controls autoplay src="{{.AudioSrc}}"></audio>{{end}}
{{if .PDFWarning}}<div class="warning">{{.PDFWarning}}</div>{{end}}

<nav class="tabs">
  <button class="active" data-tab="narrative">Narrative</button>
  <button data-tab="charts">Charts</button>
  {{if .Regression}}<button data-tab="regression">Regression</button>{{end}}
</nav>

<div id="narrative" class="tab active">
{{range .Sections}}
  <section class="block">
    <h2>{{.Title}}</h2>
    {{if .Paragraph}}<p>{{.Paragraph}}</p>{{end}}
    {{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </section>
{{end}}
</div>

<div id="charts" class="tab">
{{range .Charts}}
  <div class="chart-wrap">
    <h3>{{.Title}}</h3>
    {{.Snippet}}
  </div>
{{end}}
</div>

{{if .Regression}}
<div id="regression" class="tab">
  <div class="chart-wrap">
    <h3>{{.Regression.Title}}</h3>
    {{.Regression.Snippet}}
  </div>
</div>
{{end}}

<div class="downloads">
  {{if .PDFHref}}<a href="{{.PDFHref}}" download="analysis_report.pdf">Download PDF</a>{{end}}
</div>

<script>
document.querySelectorAll('nav.tabs button').forEach(function (btn) {
  btn.addEventListener('click', function () {
    document.querySelectorAll('nav.tabs button').forEach(function (b) { b.classList.remove('active'); });
    document.querySelectorAll('.tab').forEach(function (t) { t.classList.remove('active'); });
    btn.classList.add('active');
    document.getElementById(btn.dataset.tab).classList.add('active');
    window.dispatchEvent(new Event('resize'));
  });
});
</script>
</body>
</html>
`))
