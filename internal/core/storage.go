package core

import (
	"context"
	"time"
)

type MenuRepository interface {
	// FindByName matches case-insensitively against the exact item name.
	FindByName(ctx context.Context, name string) (MenuItem, error)
	// ListAvailable returns available items in stable name order.
	ListAvailable(ctx context.Context) ([]MenuItem, error)
	Upsert(ctx context.Context, item MenuItem) error
}

type OrdersRepository interface {
	Insert(ctx context.Context, order Order) error
	FindByID(ctx context.Context, id string) (Order, error)
}

// ProcessedRepository persists the idempotency ledger markers.
type ProcessedRepository interface {
	Exists(ctx context.Context, messageID string) (bool, error)
	// Insert is idempotent: inserting an already-present message id is not
	// an error. The unique constraint is advisory, not lock-style exclusivity.
	Insert(ctx context.Context, messageID string, processedAt time.Time) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
