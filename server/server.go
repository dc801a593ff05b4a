// Package server is the web dashboard surface: an upload form, a health
// probe and the analyze endpoint that returns the full report page.
// Nothing is persisted between requests; the PDF and audio travel
// inside the response as data URIs.
package server

import (
	"fmt"
	"log"
	"net/http"

	"insightagent/ai"
	"insightagent/config"
)

type Server struct {
	cfg      config.Config
	provider ai.Provider
}

func New(cfg config.Config, provider ai.Provider) *Server {
	return &Server{cfg: cfg, provider: provider}
}

// Routes registers all handlers on the mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	s.Routes(mux)
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	log.Printf("dashboard listening on %s (provider: %s)", addr, s.provider.Name())
	return http.ListenAndServe(addr, mux)
}
