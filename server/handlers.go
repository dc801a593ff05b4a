package server

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"insightagent/ai"
	"insightagent/applog"
	"insightagent/dataset"
	"insightagent/pipeline"
	"insightagent/report"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 32 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "provider": s.provider.Name()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, map[string]interface{}{
		"Roles": ai.Roles,
		"Tones": ai.Tones,
	})
	if err != nil {
		applog.Error("index template render failed: %v", err)
	}
}

// handleAnalyze runs the full pipeline on an uploaded table. Ingestion
// and validation problems are client errors; a model that breaks the
// output contract is a bad gateway.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid upload: %v", err))
		return
	}

	role := strings.TrimSpace(r.FormValue("role"))
	tone := strings.TrimSpace(r.FormValue("tone"))
	if !ai.ValidRole(role) {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown role %q", role))
		return
	}
	if !ai.ValidTone(tone) {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown tone %q", tone))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing uploaded file")
		return
	}
	defer file.Close()

	ds, err := dataset.Load(header.Filename, file, s.cfg.MaxRows)
	if err != nil {
		if errors.Is(err, dataset.ErrTooManyRows) {
			respondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("dataset exceeds the %d row limit", s.cfg.MaxRows))
			return
		}
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("could not read dataset: %v", err))
		return
	}

	applog.Event("analyze", "file=%s rows=%d role=%s tone=%s", header.Filename, ds.Rows(), role, tone)

	result, err := pipeline.Run(r.Context(), s.cfg, s.provider, ds, header.Filename, role, tone)
	if err != nil {
		applog.Error("analysis failed: %v", err)
		respondWithError(w, http.StatusBadGateway, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	page, err := report.RenderHTMLPage(result.Document, result.PDF, result.PDFWarning, result.AudioMP3)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("report rendering failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Insight Agent</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; max-width: 560px; margin: 48px auto; color: #1a1a2e; }
  h1 { font-size: 26px; }
  form { border: 1px solid #ddd; padding: 24px; }
  label { display: block; margin: 12px 0 4px; font-weight: bold; }
  select, input[type=file] { width: 100%; padding: 6px; }
  button { margin-top: 18px; padding: 10px 24px; background: #0f3460; color: #fff; border: none; cursor: pointer; font-size: 15px; }
</style>
</head>
<body>
<h1>Insight Agent</h1>
<p>Upload a CSV or Excel table, pick who the report is for and how it
should sound, and get back a narrative analysis with charts, a PDF and
a spoken summary.</p>
<form action="/api/analyze" method="post" enctype="multipart/form-data">
  <label for="file">Data file (.csv, .xlsx, .xls)</label>
  <input id="file" type="file" name="file" accept=".csv,.xlsx,.xls" required>
  <label for="role">Audience</label>
  <select id="role" name="role">{{range .Roles}}<option>{{.}}</option>{{end}}</select>
  <label for="tone">Tone</label>
  <select id="tone" name="tone">{{range .Tones}}<option>{{.}}</option>{{end}}</select>
  <button type="submit">Analyze</button>
</form>
</body>
</html>
`))
