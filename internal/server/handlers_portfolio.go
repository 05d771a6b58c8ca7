package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/storage/surrealdb"
)

// routePortfolio dispatches /api/portfolio/{kind} and
// /api/portfolio/{kind}/positions.
func (s *Server) routePortfolio(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/portfolio/")

	if strings.HasSuffix(rest, "/positions") {
		s.handlePositionCreate(w, r, strings.TrimSuffix(rest, "/positions"))
		return
	}
	if strings.Contains(rest, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handlePortfolioGet(w, r, rest)
}

// handlePortfolioGet handles GET /api/portfolio/{kind}.
func (s *Server) handlePortfolioGet(w http.ResponseWriter, r *http.Request, kindStr string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	kind, err := models.ParseAssetKind(kindStr)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.app.TrackerService.GetPortfolio(r.Context(), kind)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(kind)).Msg("Portfolio fetch failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// handlePositionCreate handles POST /api/portfolio/{kind}/positions.
func (s *Server) handlePositionCreate(w http.ResponseWriter, r *http.Request, kindStr string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	kind, err := models.ParseAssetKind(kindStr)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var position models.Position
	if !DecodeJSON(w, r, &position) {
		return
	}
	position.Kind = kind

	added, err := s.app.TrackerService.AddPosition(r.Context(), &position)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, added)
}

// routePositions dispatches PUT/DELETE /api/positions/{id}.
func (s *Server) routePositions(w http.ResponseWriter, r *http.Request) {
	id := PathParam(r, "/api/positions/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Position ID is required")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.handlePositionUpdate(w, r, id)
	case http.MethodDelete:
		s.handlePositionDelete(w, r, id)
	default:
		RequireMethod(w, r, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handlePositionUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var position models.Position
	if !DecodeJSON(w, r, &position) {
		return
	}

	updated, err := s.app.TrackerService.UpdatePosition(r.Context(), id, &position)
	if err != nil {
		if errors.Is(err, surrealdb.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Position not found")
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePositionDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.app.TrackerService.RemovePosition(r.Context(), id); err != nil {
		if errors.Is(err, surrealdb.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Position not found")
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Position delete failed")
		WriteError(w, http.StatusInternalServerError, "Failed to delete position")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
