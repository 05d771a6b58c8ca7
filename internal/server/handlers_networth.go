package server

import (
	"errors"
	"net/http"

	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/storage/surrealdb"
	"github.com/mverhoef/folio/internal/valuation"
)

// handleNetWorthCollection handles /api/networth:
//
//	GET  - list all stored snapshots
//	POST - add a new snapshot
func (s *Server) handleNetWorthCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records, err := s.app.NetWorthService.ListRecords(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("Net worth list failed")
			WriteError(w, http.StatusInternalServerError, "Failed to list net worth records")
			return
		}
		WriteJSON(w, http.StatusOK, records)

	case http.MethodPost:
		var record models.NetWorthRecord
		if !DecodeJSON(w, r, &record) {
			return
		}
		saved, err := s.app.NetWorthService.AddRecord(r.Context(), &record)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, saved)

	default:
		w.Header().Set("Allow", "GET, POST")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// routeNetWorthRecord handles /api/networth/{id} (PUT, DELETE). The
// timeline and chart paths are registered as exact matches and never
// reach here.
func (s *Server) routeNetWorthRecord(w http.ResponseWriter, r *http.Request) {
	id := PathParam(r, "/api/networth/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Record ID required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var record models.NetWorthRecord
		if !DecodeJSON(w, r, &record) {
			return
		}
		updated, err := s.app.NetWorthService.UpdateRecord(r.Context(), id, &record)
		if err != nil {
			if errors.Is(err, surrealdb.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Record not found")
				return
			}
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.app.NetWorthService.RemoveRecord(r.Context(), id); err != nil {
			if errors.Is(err, surrealdb.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Record not found")
				return
			}
			s.logger.Error().Err(err).Str("id", id).Msg("Net worth delete failed")
			WriteError(w, http.StatusInternalServerError, "Failed to delete record")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})

	default:
		w.Header().Set("Allow", "PUT, DELETE")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// timelineRecord is a processed snapshot with the change percentage
// pre-formatted for display.
type timelineRecord struct {
	models.ProcessedNetWorthRecord
	ChangePctDisplay string `json:"change_pct_display"`
}

type timelineResponse struct {
	Records []timelineRecord       `json:"records"`
	Summary models.NetWorthSummary `json:"summary"`
}

// handleNetWorthTimeline handles GET /api/networth/timeline.
func (s *Server) handleNetWorthTimeline(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	timeline, err := s.app.NetWorthService.Timeline(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Net worth timeline failed")
		WriteError(w, http.StatusInternalServerError, "Failed to build timeline")
		return
	}

	resp := timelineResponse{
		Records: make([]timelineRecord, 0, len(timeline.Records)),
		Summary: timeline.Summary,
	}
	for _, rec := range timeline.Records {
		resp.Records = append(resp.Records, timelineRecord{
			ProcessedNetWorthRecord: rec,
			ChangePctDisplay:        valuation.FormatChangePct(rec.ChangePct),
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}

// handleNetWorthChart handles GET /api/networth/chart, returning the
// rendered timeline chart as a PNG.
func (s *Server) handleNetWorthChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.NetWorthService.RenderChart(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Net worth chart render failed")
		WriteError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write chart response")
	}
}
