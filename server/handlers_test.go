package server

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insightagent/ai"
	"insightagent/config"
)

func testServer() *Server {
	cfg := config.Config{
		ServerPort:     8080,
		MaxRows:        100,
		FontRegular:    "/nonexistent/regular.ttf",
		FontBold:       "/nonexistent/bold.ttf",
		SpeechLanguage: "en",
		AnalyzeTimeout: 5 * time.Second,
		AnalyzeRetries: 0,
	}
	return New(cfg, ai.NewPlaceholder())
}

func multipartUpload(t *testing.T, filename, content, role, tone string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form build failed: %v", err)
	}
	part.Write([]byte(content))
	w.WriteField("role", role)
	w.WriteField("tone", tone)
	w.Close()
	return &body, w.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "placeholder") {
		t.Fatalf("health should name the provider, got %s", rec.Body.String())
	}
}

func TestIndexServesUploadForm(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handleIndex(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `action="/api/analyze"`) {
		t.Fatalf("upload form missing analyze action")
	}
	if !strings.Contains(body, "CEO") || !strings.Contains(body, "Formal") {
		t.Fatalf("role/tone pick lists missing")
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	s := testServer()
	csv := "region,sales,visits\nnorth,100,10\nsouth,200,20\nnorth,150,15\n"
	body, contentType := multipartUpload(t, "sales.csv", csv, "CEO", "Formal")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Analysis Report: sales.csv") {
		t.Fatalf("report page header missing")
	}
	if !strings.Contains(page, "Executive Summary") {
		t.Fatalf("narrative sections missing")
	}
}

func TestAnalyzeRejectsUnknownRole(t *testing.T) {
	s := testServer()
	body, contentType := multipartUpload(t, "x.csv", "a\n1\n", "Astronaut", "Formal")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown role") {
		t.Fatalf("error should explain the rejection: %s", rec.Body.String())
	}
}

func TestAnalyzeRejectsOversizedDataset(t *testing.T) {
	s := testServer()
	var sb strings.Builder
	sb.WriteString("v\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	body, contentType := multipartUpload(t, "big.csv", sb.String(), "CEO", "Formal")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "row limit") {
		t.Fatalf("error should name the row limit: %s", rec.Body.String())
	}
}

func TestAnalyzeRejectsMissingFile(t *testing.T) {
	s := testServer()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.WriteField("role", "CEO")
	w.WriteField("tone", "Formal")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestAnalyzeRejectsGet(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got status %d, want 405", rec.Code)
	}
}
