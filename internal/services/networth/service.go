// Package networth manages net worth snapshots and their timeline
package networth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/valuation"
)

// Service implements NetWorthService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new net worth service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// validateRecord checks a snapshot before persisting. Amounts may be zero
// (an asset class can be empty) but never negative, and the date must parse
// in one of the two accepted formats.
func validateRecord(record *models.NetWorthRecord) error {
	if record == nil {
		return fmt.Errorf("record is required")
	}
	if strings.TrimSpace(record.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := valuation.ParseFlexibleDate(record.Date); err != nil {
		return err
	}
	if record.Fiat < 0 || record.Bonds < 0 || record.ETFs < 0 || record.Crypto < 0 {
		return fmt.Errorf("asset amounts must not be negative")
	}
	return nil
}

// ListRecords retrieves all stored snapshots, unprocessed
func (s *Service) ListRecords(ctx context.Context) ([]*models.NetWorthRecord, error) {
	records, err := s.storage.NetWorth().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth records: %w", err)
	}
	return records, nil
}

// AddRecord validates and stores a new snapshot
func (s *Service) AddRecord(ctx context.Context, record *models.NetWorthRecord) (*models.NetWorthRecord, error) {
	if err := validateRecord(record); err != nil {
		return nil, fmt.Errorf("invalid net worth record: %w", err)
	}

	r := *record
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if err := s.storage.NetWorth().Save(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to save net worth record: %w", err)
	}

	s.logger.Info().Str("id", r.ID).Str("date", r.Date).Msg("Net worth record added")

	return &r, nil
}

// UpdateRecord replaces a stored snapshot by ID
func (s *Service) UpdateRecord(ctx context.Context, id string, record *models.NetWorthRecord) (*models.NetWorthRecord, error) {
	existing, err := s.storage.NetWorth().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateRecord(record); err != nil {
		return nil, fmt.Errorf("invalid net worth record: %w", err)
	}

	r := *record
	r.ID = existing.ID

	if err := s.storage.NetWorth().Save(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to update net worth record: %w", err)
	}

	s.logger.Info().Str("id", r.ID).Str("date", r.Date).Msg("Net worth record updated")

	return &r, nil
}

// RemoveRecord deletes a snapshot by ID
func (s *Service) RemoveRecord(ctx context.Context, id string) error {
	if _, err := s.storage.NetWorth().Get(ctx, id); err != nil {
		return err
	}
	if err := s.storage.NetWorth().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete net worth record: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("Net worth record removed")

	return nil
}

// Timeline processes all snapshots chronologically with deltas and a
// summary of recent and total growth
func (s *Service) Timeline(ctx context.Context) (*models.NetWorthTimeline, error) {
	stored, err := s.storage.NetWorth().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth records: %w", err)
	}

	records := make([]models.NetWorthRecord, 0, len(stored))
	for _, r := range stored {
		records = append(records, *r)
	}

	processed, err := valuation.ProcessNetWorth(records)
	if err != nil {
		return nil, fmt.Errorf("failed to process net worth timeline: %w", err)
	}

	return &models.NetWorthTimeline{
		Records: processed,
		Summary: valuation.SummarizeNetWorth(processed),
	}, nil
}

// RenderChart produces a PNG chart of the net worth timeline and stores a
// copy under the data path for later retrieval.
func (s *Service) RenderChart(ctx context.Context) ([]byte, error) {
	timeline, err := s.Timeline(ctx)
	if err != nil {
		return nil, err
	}

	png, err := RenderTimelineChart(timeline.Records)
	if err != nil {
		return nil, err
	}

	if err := s.storage.WriteRaw("charts", "networth.png", png); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist net worth chart")
	}

	return png, nil
}

// Ensure Service implements NetWorthService
var _ interfaces.NetWorthService = (*Service)(nil)
