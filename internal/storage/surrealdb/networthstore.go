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

type NetWorthStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewNetWorthStore(db *surrealdb.DB, logger *common.Logger) *NetWorthStore {
	return &NetWorthStore{
		db:     db,
		logger: logger,
	}
}

func (s *NetWorthStore) Get(ctx context.Context, id string) (*models.NetWorthRecord, error) {
	record, err := surrealdb.Select[models.NetWorthRecord](ctx, s.db, surrealmodels.NewRecordID("networth", id))
	if err != nil {
		return nil, fmt.Errorf("failed to select net worth record: %w", err)
	}
	if record == nil || record.ID == "" {
		return nil, fmt.Errorf("net worth record %s: %w", id, ErrNotFound)
	}
	return record, nil
}

func (s *NetWorthStore) List(ctx context.Context) ([]*models.NetWorthRecord, error) {
	list, err := surrealdb.Select[[]models.NetWorthRecord](ctx, s.db, surrealmodels.Table("networth"))
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth records: %w", err)
	}

	var records []*models.NetWorthRecord
	if list != nil {
		for i := range *list {
			records = append(records, &(*list)[i])
		}
	}
	return records, nil
}

func (s *NetWorthStore) Save(ctx context.Context, record *models.NetWorthRecord) error {
	if record.ID == "" {
		return errors.New("net worth record ID is required")
	}

	sql := "UPSERT type::record('networth', $id) CONTENT $record"
	vars := map[string]any{"id": record.ID, "record": record}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]models.NetWorthRecord](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to save net worth record after retries: %w", err)
		}
	}
	return nil
}

func (s *NetWorthStore) Delete(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[models.NetWorthRecord](ctx, s.db, surrealmodels.NewRecordID("networth", id))
	if err != nil {
		return fmt.Errorf("failed to delete net worth record: %w", err)
	}
	return nil
}

// Compile-time check
var _ interfaces.NetWorthStore = (*NetWorthStore)(nil)
