package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
)

type fakeProcessedRepo struct {
	records map[string]time.Time

	existsErr error
	insertErr error
	deleteErr error

	lastCutoff time.Time
}

func newFakeRepo() *fakeProcessedRepo {
	return &fakeProcessedRepo{records: make(map[string]time.Time)}
}

func (f *fakeProcessedRepo) Exists(ctx context.Context, messageID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.records[messageID]
	return ok, nil
}

func (f *fakeProcessedRepo) Insert(ctx context.Context, messageID string, processedAt time.Time) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.records[messageID]; ok {
		return nil // idempotent, like INSERT OR IGNORE
	}
	f.records[messageID] = processedAt
	return nil
}

func (f *fakeProcessedRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.lastCutoff = cutoff
	var n int64
	for id, at := range f.records {
		if !at.After(cutoff) {
			delete(f.records, id)
			n++
		}
	}
	return n, nil
}

func TestLedger_MarkThenIsProcessed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	l := New(repo)

	if l.IsProcessed(ctx, "m1") {
		t.Fatal("fresh message must not be processed")
	}
	if err := l.MarkProcessed(ctx, "m1", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.IsProcessed(ctx, "m1") {
		t.Fatal("marked message must be processed")
	}
}

func TestLedger_MarkProcessedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	l := New(repo)

	now := time.Now()
	if err := l.MarkProcessed(ctx, "m1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.MarkProcessed(ctx, "m1", now.Add(time.Minute)); err != nil {
		t.Fatalf("duplicate mark must not be an error: %v", err)
	}
}

func TestLedger_ReadFailureBiasesTowardReprocessing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.records["m1"] = time.Now()
	repo.existsErr = core.ErrStore
	l := New(repo)

	if l.IsProcessed(ctx, "m1") {
		t.Fatal("on a store read failure IsProcessed must return false")
	}
}

func TestLedger_SweepUsesHorizonCutoff(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	l := New(repo)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.records["old"] = now.Add(-25 * time.Hour)
	repo.records["young"] = now.Add(-23 * time.Hour)

	n, err := l.Sweep(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d records, want 1", n)
	}
	if !repo.lastCutoff.Equal(now.Add(-Horizon)) {
		t.Errorf("cutoff = %v, want %v", repo.lastCutoff, now.Add(-Horizon))
	}
	if _, ok := repo.records["young"]; !ok {
		t.Error("record younger than the horizon must survive the sweep")
	}
	if _, ok := repo.records["old"]; ok {
		t.Error("record older than the horizon must be swept")
	}
}

func TestLedger_SweepPropagatesStoreError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.deleteErr = core.ErrStore
	l := New(repo)

	if _, err := l.Sweep(ctx, time.Now()); !errors.Is(err, core.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}
