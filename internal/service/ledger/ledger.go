package ledger

import (
	"context"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/log"
)

// Horizon is the retention window for processed-message markers. A reply
// attempted more than this long ago is assumed delivered and forgotten.
const Horizon = 24 * time.Hour

// Ledger enforces at-most-once command execution per inbound message. The
// gateway has no durable "mark as read" semantic, so idempotency is local.
type Ledger struct {
	repo    core.ProcessedRepository
	horizon time.Duration
}

func New(repo core.ProcessedRepository) *Ledger {
	return &Ledger{repo: repo, horizon: Horizon}
}

// IsProcessed reports whether a message id has already been acted upon.
// On a store read failure it returns false: re-processing beats silent loss.
func (l *Ledger) IsProcessed(ctx context.Context, messageID string) bool {
	processed, err := l.repo.Exists(ctx, messageID)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("message_id", messageID).Msg("ledger read failed, treating message as unprocessed")
		return false
	}
	return processed
}

// MarkProcessed records a marker for the message. Duplicate marks are not
// errors.
func (l *Ledger) MarkProcessed(ctx context.Context, messageID string, now time.Time) error {
	return l.repo.Insert(ctx, messageID, now.UTC())
}

// Sweep forgets markers older than the horizon and returns the count removed.
func (l *Ledger) Sweep(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UTC().Add(-l.horizon)
	n, err := l.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.FromCtx(ctx).Debug().Int64("removed", n).Time("cutoff", cutoff).Msg("swept processed message markers")
	}
	return n, nil
}
