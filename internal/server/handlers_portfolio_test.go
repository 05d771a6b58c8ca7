package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mverhoef/folio/internal/app"
	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/storage/surrealdb"
)

// mockTrackerService implements interfaces.TrackerService for testing.
type mockTrackerService struct {
	getPortfolio   func(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error)
	addPosition    func(ctx context.Context, position *models.Position) (*models.Position, error)
	updatePosition func(ctx context.Context, id string, position *models.Position) (*models.Position, error)
	removePosition func(ctx context.Context, id string) error
}

func (m *mockTrackerService) GetPortfolio(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error) {
	if m.getPortfolio != nil {
		return m.getPortfolio(ctx, kind)
	}
	return &models.PortfolioView{Kind: kind}, nil
}

func (m *mockTrackerService) AddPosition(ctx context.Context, position *models.Position) (*models.Position, error) {
	if m.addPosition != nil {
		return m.addPosition(ctx, position)
	}
	return position, nil
}

func (m *mockTrackerService) UpdatePosition(ctx context.Context, id string, position *models.Position) (*models.Position, error) {
	if m.updatePosition != nil {
		return m.updatePosition(ctx, id, position)
	}
	return position, nil
}

func (m *mockTrackerService) RemovePosition(ctx context.Context, id string) error {
	if m.removePosition != nil {
		return m.removePosition(ctx, id)
	}
	return nil
}

func (m *mockTrackerService) RefreshPrices(ctx context.Context) error {
	return nil
}

func newTestServer(tracker interfaces.TrackerService) *Server {
	logger := common.NewSilentLogger()
	a := &app.App{
		Config:         common.NewDefaultConfig(),
		TrackerService: tracker,
		Logger:         logger,
	}
	return &Server{app: a, logger: logger}
}

func TestHandlePortfolioGet_ReturnsView(t *testing.T) {
	view := &models.PortfolioView{
		Kind: models.AssetKindCrypto,
		Positions: []models.Position{
			{ID: "p1", Symbol: "bitcoin", CurrentValue: 300},
		},
		Totals: models.PortfolioTotals{TotalCurrentValue: 300},
		AsOf:   time.Now(),
	}

	svc := &mockTrackerService{
		getPortfolio: func(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error) {
			if kind != models.AssetKindCrypto {
				t.Errorf("expected crypto kind, got %q", kind)
			}
			return view, nil
		},
	}

	srv := newTestServer(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/crypto", nil)
	rec := httptest.NewRecorder()

	srv.routePortfolio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var got models.PortfolioView
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Positions) != 1 || got.Positions[0].ID != "p1" {
		t.Errorf("unexpected positions: %+v", got.Positions)
	}
	if got.Totals.TotalCurrentValue != 300 {
		t.Errorf("expected total current value 300, got %f", got.Totals.TotalCurrentValue)
	}
}

func TestHandlePortfolioGet_UnknownKind(t *testing.T) {
	srv := newTestServer(&mockTrackerService{})
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/bonds", nil)
	rec := httptest.NewRecorder()

	srv.routePortfolio(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandlePortfolioGet_ServiceError(t *testing.T) {
	svc := &mockTrackerService{
		getPortfolio: func(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error) {
			return nil, errors.New("storage offline")
		},
	}

	srv := newTestServer(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/etf", nil)
	rec := httptest.NewRecorder()

	srv.routePortfolio(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestHandlePositionCreate_ForcesKindFromPath(t *testing.T) {
	var saved *models.Position
	svc := &mockTrackerService{
		addPosition: func(ctx context.Context, position *models.Position) (*models.Position, error) {
			saved = position
			position.ID = "new-id"
			return position, nil
		},
	}

	srv := newTestServer(svc)
	body := strings.NewReader(`{"kind":"etf","name":"Bitcoin","symbol":"BITCOIN","quantity":1,"purchase_price":100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/crypto/positions", body)
	rec := httptest.NewRecorder()

	srv.routePortfolio(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if saved == nil {
		t.Fatal("expected position to reach the service")
	}
	if saved.Kind != models.AssetKindCrypto {
		t.Errorf("expected path kind to override body kind, got %q", saved.Kind)
	}

	var got models.Position
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "new-id" {
		t.Errorf("expected assigned ID in response, got %q", got.ID)
	}
}

func TestHandlePositionCreate_InvalidRejected(t *testing.T) {
	svc := &mockTrackerService{
		addPosition: func(ctx context.Context, position *models.Position) (*models.Position, error) {
			return nil, errors.New("position name is required")
		},
	}

	srv := newTestServer(svc)
	body := strings.NewReader(`{"symbol":"bitcoin"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/crypto/positions", body)
	rec := httptest.NewRecorder()

	srv.routePortfolio(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandlePositionUpdate_NotFound(t *testing.T) {
	svc := &mockTrackerService{
		updatePosition: func(ctx context.Context, id string, position *models.Position) (*models.Position, error) {
			return nil, fmt.Errorf("position %s: %w", id, surrealdb.ErrNotFound)
		},
	}

	srv := newTestServer(svc)
	body := strings.NewReader(`{"name":"Bitcoin","symbol":"bitcoin","quantity":1,"purchase_price":100}`)
	req := httptest.NewRequest(http.MethodPut, "/api/positions/missing", body)
	rec := httptest.NewRecorder()

	srv.routePositions(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandlePositionDelete_RespondsWithID(t *testing.T) {
	var deletedID string
	svc := &mockTrackerService{
		removePosition: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	srv := newTestServer(svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/positions/p1", nil)
	rec := httptest.NewRecorder()

	srv.routePositions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if deletedID != "p1" {
		t.Errorf("expected delete of p1, got %q", deletedID)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "deleted" || resp["id"] != "p1" {
		t.Errorf("unexpected delete response: %v", resp)
	}
}

func TestRoutePositions_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(&mockTrackerService{})
	req := httptest.NewRequest(http.MethodGet, "/api/positions/p1", nil)
	rec := httptest.NewRecorder()

	srv.routePositions(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
