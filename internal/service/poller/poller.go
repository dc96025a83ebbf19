package poller

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/log"
)

// Conn is the session manager surface the poller drives.
type Conn interface {
	EnsureConnected(ctx context.Context) error
	ListThreads(ctx context.Context) ([]core.Thread, error)
	ListItems(ctx context.Context, threadID string) ([]core.InboxItem, error)
	SendText(ctx context.Context, threadID, text string) error
}

// Dedup is the idempotency ledger surface.
type Dedup interface {
	IsProcessed(ctx context.Context, messageID string) bool
	MarkProcessed(ctx context.Context, messageID string, now time.Time) error
	Sweep(ctx context.Context, now time.Time) (int64, error)
}

// Interpreter turns inbound text into exactly one reply.
type Interpreter interface {
	Dispatch(ctx context.Context, text string) string
}

// Poller is the single sequential worker that drains the inbox. It owns the
// session exclusively; nothing else touches the gateway.
type Poller struct {
	conn        Conn
	ledger      Dedup
	interpreter Interpreter

	interval    time.Duration
	callTimeout time.Duration
	now         func() time.Time
}

func New(conn Conn, ledger Dedup, interpreter Interpreter, interval, callTimeout time.Duration) *Poller {
	return &Poller{
		conn:        conn,
		ledger:      ledger,
		interpreter: interpreter,
		interval:    interval,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

// Start runs polling cycles until ctx is cancelled. Connection errors that
// survive the session retry policy are fatal: the bot cannot function
// without a session.
func (p *Poller) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := p.conn.EnsureConnected(ctx); err != nil {
		return err
	}
	logger.Info().Dur("interval", p.interval).Msg("poller started")

	for {
		if err := p.Cycle(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			logger.Info().Msg("poller stopping")
			return nil
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) Shutdown(ctx context.Context) error {
	return nil
}

// Cycle drains one pass over the inbox. Failures on a single thread or item
// are contained; terminal errors propagate. A challenge_required from ANY
// gateway call is terminal: continuing to poll a challenged account only
// worsens its rate-limit standing.
func (p *Poller) Cycle(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := p.conn.EnsureConnected(ctx); err != nil {
		if errors.Is(err, core.ErrChallengeRequired) || errors.Is(err, core.ErrConnectionExhausted) {
			return err
		}
		logger.Error().Err(err).Msg("connection not ready, skipping cycle")
		return nil
	}

	threads, err := p.listThreads(ctx)
	if err != nil {
		if errors.Is(err, core.ErrChallengeRequired) {
			return err
		}
		logger.Error().Err(err).Msg("failed to list inbox threads")
		return nil
	}

	for _, thread := range threads {
		items, err := p.listItems(ctx, thread.ID)
		if err != nil {
			if errors.Is(err, core.ErrChallengeRequired) {
				return err
			}
			logger.Error().Err(err).Str("thread_id", thread.ID).Msg("failed to list thread items")
			continue
		}

		for _, item := range items {
			// Finish the in-flight item even on shutdown, but do not start
			// another one.
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if err := p.handleItem(context.WithoutCancel(ctx), item); err != nil {
				return err
			}
		}
	}

	if _, err := p.ledger.Sweep(ctx, p.now()); err != nil {
		logger.Error().Err(err).Msg("ledger sweep failed")
	}
	return nil
}

// handleItem runs the interpret → reply → mark sequence for one inbox item.
// A reply delivery failure does not block marking: re-sending a reply for a
// command that already ran would be worse than dropping one reply. The only
// error returned is a challenge, after marking, so the caller can exit.
func (p *Poller) handleItem(ctx context.Context, item core.InboxItem) error {
	logger := log.FromCtx(ctx)

	if item.Kind != core.ItemKindText || item.Text == "" {
		return nil
	}
	if p.ledger.IsProcessed(ctx, item.ID) {
		return nil
	}

	reply := p.interpreter.Dispatch(ctx, item.Text)

	var challenge error
	if reply != "" {
		if err := p.sendText(ctx, item.ThreadID, reply); err != nil {
			if errors.Is(err, core.ErrChallengeRequired) {
				challenge = err
			}
			logger.Error().Err(err).Str("message_id", item.ID).Str("thread_id", item.ThreadID).Msg("reply delivery failed")
		}
	}

	if err := p.ledger.MarkProcessed(ctx, item.ID, p.now()); err != nil {
		// The message may be reprocessed on a later cycle; a rare, safe duplicate.
		logger.Error().Err(err).Str("message_id", item.ID).Msg("failed to mark message processed")
	}
	return challenge
}

func (p *Poller) listThreads(ctx context.Context) ([]core.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.conn.ListThreads(ctx)
}

func (p *Poller) listItems(ctx context.Context, threadID string) ([]core.InboxItem, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.conn.ListItems(ctx, threadID)
}

func (p *Poller) sendText(ctx context.Context, threadID, text string) error {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.conn.SendText(ctx, threadID, text)
}
