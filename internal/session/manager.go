package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/grubbot/internal/config"
	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/internal/gateway/instagram"
	"github.com/sandevgo/grubbot/pkg/log"
	"github.com/sandevgo/grubbot/pkg/retry"
)

type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Failed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	default:
		return "disconnected"
	}
}

const (
	maxConnectAttempts = 3
	connectDelay       = 5 * time.Second

	probeURL     = "https://www.google.com"
	probeTimeout = 5 * time.Second
)

// Manager owns the gateway authentication lifecycle. The poller is its only
// caller; no internal locking is needed.
type Manager struct {
	gw       core.Gateway
	identity core.Identity
	retrier  *retry.Retrier
	probe    func(ctx context.Context) error

	state    State
	username string
}

func NewManager(gw core.Gateway, cfg *config.InstagramConfig) *Manager {
	return &Manager{
		gw: gw,
		identity: core.Identity{
			Username: cfg.Username,
			Password: cfg.Password,
			// Device identity pair is stable for the process lifetime
			DeviceID:   uuid.NewString(),
			ClientUUID: uuid.NewString(),
			UserAgent:  instagram.UserAgent,
		},
		retrier: retry.NewRetrier(retry.NewFixedConfig(maxConnectAttempts, connectDelay)),
		probe:   probeInternet,
	}
}

func (m *Manager) State() State { return m.state }

// Username reports the identity verified at connect time.
func (m *Manager) Username() string { return m.username }

// Connect establishes and verifies a gateway session. A challenge_required
// login failure is terminal and is surfaced without further attempts.
func (m *Manager) Connect(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := m.probe(ctx); err != nil {
		m.state = Failed
		return fmt.Errorf("connectivity pre-check: %w", err)
	}

	m.state = Connecting
	attempt := 0
	err := m.retrier.Do(ctx, func() error {
		attempt++
		logger.Info().Int("attempt", attempt).Int("max", maxConnectAttempts).Msg("connecting to instagram")

		if err := m.connectOnce(ctx); err != nil {
			if errors.Is(err, core.ErrChallengeRequired) {
				logger.Error().Int("attempt", attempt).Msg("instagram requires verification, log in through the website first")
				return retry.Permanent(err)
			}
			logger.Warn().Err(err).Int("attempt", attempt).Msg("connection attempt failed")
			return err
		}

		logger.Info().Int("attempt", attempt).Str("username", m.username).Msg("connected to instagram")
		return nil
	})

	if err != nil {
		m.state = Failed
		if errors.Is(err, core.ErrChallengeRequired) || errors.Is(err, ctx.Err()) {
			return err
		}
		return fmt.Errorf("%w: %d attempts: %v", core.ErrConnectionExhausted, attempt, err)
	}

	m.state = Connected
	return nil
}

// connectOnce performs login plus the identity check; a transport-level login
// success is not trusted until CurrentUser answers.
func (m *Manager) connectOnce(ctx context.Context) error {
	if err := m.gw.Login(ctx, m.identity); err != nil {
		return err
	}

	username, err := m.gw.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("identity check: %w", err)
	}
	m.username = username
	return nil
}

// EnsureConnected reconnects if the session is not currently usable.
func (m *Manager) EnsureConnected(ctx context.Context) error {
	if m.state == Connected {
		return nil
	}
	return m.Connect(ctx)
}

// ListThreads proxies the gateway, demoting the session on auth or challenge
// failures so the caller reconnects or exits.
func (m *Manager) ListThreads(ctx context.Context) ([]core.Thread, error) {
	threads, err := m.gw.ListThreads(ctx)
	if err != nil {
		m.demoteOnSessionError(err)
		return nil, err
	}
	return threads, nil
}

func (m *Manager) ListItems(ctx context.Context, threadID string) ([]core.InboxItem, error) {
	items, err := m.gw.ListItems(ctx, threadID)
	if err != nil {
		m.demoteOnSessionError(err)
		return nil, err
	}
	return items, nil
}

func (m *Manager) SendText(ctx context.Context, threadID, text string) error {
	if err := m.gw.SendText(ctx, threadID, text); err != nil {
		m.demoteOnSessionError(err)
		return err
	}
	return nil
}

// demoteOnSessionError downgrades the session state on errors that invalidate
// it. A challenge is terminal: the account needs out-of-band verification, so
// the session fails instead of reconnecting.
func (m *Manager) demoteOnSessionError(err error) {
	switch {
	case errors.Is(err, core.ErrChallengeRequired):
		m.state = Failed
	case errors.Is(err, core.ErrAuth):
		m.state = Disconnected
	}
}

// probeInternet fails fast with ErrNetwork before any authentication is
// attempted, so rate-limit standing is not spent on a dead link.
func probeInternet(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	resp.Body.Close()
	return nil
}
