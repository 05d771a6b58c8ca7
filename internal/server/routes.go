package server

import (
	"net/http"
	"strings"

	"github.com/mverhoef/folio/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Portfolios
	mux.HandleFunc("/api/portfolio/", s.routePortfolio)
	mux.HandleFunc("/api/positions/", s.routePositions)

	// Analyzer
	mux.HandleFunc("/api/analyzer/tokens", s.handleAnalyzerTokens)
	mux.HandleFunc("/api/analyzer/mood", s.handleAnalyzerMood)

	// Net worth
	mux.HandleFunc("/api/networth", s.handleNetWorthCollection)
	mux.HandleFunc("/api/networth/timeline", s.handleNetWorthTimeline)
	mux.HandleFunc("/api/networth/chart", s.handleNetWorthChart)
	mux.HandleFunc("/api/networth/", s.routeNetWorthRecord)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config

	fmpKey := cfg.Clients.FMP.APIKey
	if fmpKey != "" {
		fmpKey = maskSecret(fmpKey)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       cfg.Environment,
		"storage_address":   cfg.Storage.Address,
		"storage_namespace": cfg.Storage.Namespace,
		"storage_database":  cfg.Storage.Database,
		"storage_data_path": cfg.Storage.DataPath,
		"refresh_enabled":   cfg.Refresh.Enabled,
		"refresh_interval":  cfg.Refresh.Interval,
		"fmp_api_key":       fmpKey,
	})
}
