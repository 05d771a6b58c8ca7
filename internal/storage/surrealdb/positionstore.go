package surrealdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type PositionStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewPositionStore(db *surrealdb.DB, logger *common.Logger) *PositionStore {
	return &PositionStore{
		db:     db,
		logger: logger,
	}
}

func (s *PositionStore) Get(ctx context.Context, id string) (*models.Position, error) {
	position, err := surrealdb.Select[models.Position](ctx, s.db, surrealmodels.NewRecordID("position", id))
	if err != nil {
		return nil, fmt.Errorf("failed to select position: %w", err)
	}
	if position == nil || position.ID == "" {
		return nil, fmt.Errorf("position %s: %w", id, ErrNotFound)
	}
	return position, nil
}

func (s *PositionStore) List(ctx context.Context, kind models.AssetKind) ([]*models.Position, error) {
	// No ORDER BY here: date_added holds mixed DD.MM.YY and YYYY-MM-DD
	// text, so ordering is done by the caller after parsing.
	sql := "SELECT * FROM position WHERE kind = $kind"
	vars := map[string]any{"kind": string(kind)}

	results, err := surrealdb.Query[[]models.Position](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	var positions []*models.Position
	if results != nil && len(*results) > 0 {
		for i := range (*results)[0].Result {
			positions = append(positions, &(*results)[0].Result[i])
		}
	}
	return positions, nil
}

func (s *PositionStore) ListAll(ctx context.Context) ([]*models.Position, error) {
	list, err := surrealdb.Select[[]models.Position](ctx, s.db, surrealmodels.Table("position"))
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	var positions []*models.Position
	if list != nil {
		for i := range *list {
			positions = append(positions, &(*list)[i])
		}
	}
	return positions, nil
}

func (s *PositionStore) Save(ctx context.Context, position *models.Position) error {
	if position.ID == "" {
		return errors.New("position ID is required")
	}

	sql := "UPSERT type::record('position', $id) CONTENT $position"
	vars := map[string]any{"id": position.ID, "position": position}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.Position](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to save position after retries: %w", err)
		}
	}
	return nil
}

func (s *PositionStore) Delete(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[models.Position](ctx, s.db, surrealmodels.NewRecordID("position", id))
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// Compile-time check
var _ interfaces.PositionStore = (*PositionStore)(nil)
