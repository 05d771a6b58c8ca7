// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"

	"github.com/mverhoef/folio/internal/models"
)

// StorageManager coordinates all storage backends
type StorageManager interface {
	// Storage accessors
	Positions() PositionStore
	NetWorth() NetWorthStore
	Internal() InternalStore

	// DataPath returns the base data directory path (e.g. /app/data/folio).
	DataPath() string

	// WriteRaw writes arbitrary binary data to a subdirectory atomically.
	// Key is sanitized for safe filenames (e.g. "networth.png").
	WriteRaw(subdir, key string, data []byte) error

	// Lifecycle
	Close() error
}

// PositionStore manages persisted portfolio positions
type PositionStore interface {
	// Get retrieves a position by ID
	Get(ctx context.Context, id string) (*models.Position, error)

	// List retrieves all positions of the given asset kind
	List(ctx context.Context, kind models.AssetKind) ([]*models.Position, error)

	// ListAll retrieves every stored position regardless of kind
	ListAll(ctx context.Context) ([]*models.Position, error)

	// Save upserts a position by ID
	Save(ctx context.Context, position *models.Position) error

	// Delete removes a position by ID
	Delete(ctx context.Context, id string) error
}

// NetWorthStore manages persisted net worth snapshots
type NetWorthStore interface {
	Get(ctx context.Context, id string) (*models.NetWorthRecord, error)
	List(ctx context.Context) ([]*models.NetWorthRecord, error)
	Save(ctx context.Context, record *models.NetWorthRecord) error
	Delete(ctx context.Context, id string) error
}

// SystemKVStore provides system-level key-value access (API keys etc).
type SystemKVStore interface {
	GetSystemKV(ctx context.Context, key string) (string, error)
	SetSystemKV(ctx context.Context, key, value string) error
}

// InternalStore manages system-level KV and cached market state.
type InternalStore interface {
	SystemKVStore

	Close() error
}
