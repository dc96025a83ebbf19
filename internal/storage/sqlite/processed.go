package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
)

type ProcessedRepo struct {
	db *sql.DB
}

func NewProcessedRepo(db *sql.DB) *ProcessedRepo {
	return &ProcessedRepo{db: db}
}

func (r *ProcessedRepo) Exists(ctx context.Context, messageID string) (bool, error) {
	query := `SELECT 1 FROM processed_messages WHERE message_id = ? LIMIT 1`

	var one int
	err := r.db.QueryRowContext(ctx, query, messageID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: check processed message: %v", core.ErrStore, err)
	}
	return true, nil
}

// Insert is idempotent: re-inserting a known message id is a no-op, not an
// error. Messages are single-threaded through the poller and cannot race
// with themselves.
func (r *ProcessedRepo) Insert(ctx context.Context, messageID string, processedAt time.Time) error {
	query := `INSERT OR IGNORE INTO processed_messages (message_id, processed_at) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, messageID, processedAt); err != nil {
		return fmt.Errorf("%w: mark message processed: %v", core.ErrStore, err)
	}
	return nil
}

func (r *ProcessedRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM processed_messages WHERE processed_at <= ?`

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: sweep processed messages: %v", core.ErrStore, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: sweep processed messages: %v", core.ErrStore, err)
	}
	return n, nil
}
