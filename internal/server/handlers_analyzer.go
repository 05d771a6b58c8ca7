package server

import (
	"net/http"
)

// handleAnalyzerTokens handles GET /api/analyzer/tokens.
func (s *Server) handleAnalyzerTokens(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tokens, err := s.app.AnalyzerService.AnalyzeTokens(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Token analysis failed")
		WriteError(w, http.StatusInternalServerError, "Failed to analyze tokens")
		return
	}

	WriteJSON(w, http.StatusOK, tokens)
}

// handleAnalyzerMood handles GET /api/analyzer/mood.
func (s *Server) handleAnalyzerMood(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	mood, err := s.app.AnalyzerService.MarketMood(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Market mood fetch failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch market mood")
		return
	}

	WriteJSON(w, http.StatusOK, mood)
}
