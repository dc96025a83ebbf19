package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/grubbot/internal/config"
	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/retry"
)

type fakeGateway struct {
	loginErrs  []error
	loginCalls int

	username       string
	currentUserErr error

	threads    []core.Thread
	threadsErr error
}

func (f *fakeGateway) Login(ctx context.Context, identity core.Identity) error {
	call := f.loginCalls
	f.loginCalls++
	if call < len(f.loginErrs) {
		return f.loginErrs[call]
	}
	return nil
}

func (f *fakeGateway) CurrentUser(ctx context.Context) (string, error) {
	if f.currentUserErr != nil {
		return "", f.currentUserErr
	}
	return f.username, nil
}

func (f *fakeGateway) ListThreads(ctx context.Context) ([]core.Thread, error) {
	return f.threads, f.threadsErr
}

func (f *fakeGateway) ListItems(ctx context.Context, threadID string) ([]core.InboxItem, error) {
	return nil, nil
}

func (f *fakeGateway) SendText(ctx context.Context, threadID, text string) error {
	return nil
}

func newTestManager(gw core.Gateway) *Manager {
	m := NewManager(gw, &config.InstagramConfig{Username: "bot", Password: "secret"})
	m.retrier = retry.NewRetrier(retry.NewFixedConfig(maxConnectAttempts, time.Millisecond))
	m.probe = func(ctx context.Context) error { return nil }
	return m
}

func TestConnect_Success(t *testing.T) {
	gw := &fakeGateway{username: "bot"}
	m := newTestManager(gw)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != Connected {
		t.Errorf("state = %v, want Connected", m.State())
	}
	if m.Username() != "bot" {
		t.Errorf("username = %q, want %q", m.Username(), "bot")
	}
	if gw.loginCalls != 1 {
		t.Errorf("login calls = %d, want 1", gw.loginCalls)
	}
}

func TestConnect_ChallengeStopsRetrying(t *testing.T) {
	gw := &fakeGateway{loginErrs: []error{core.ErrChallengeRequired}}
	m := newTestManager(gw)

	err := m.Connect(context.Background())
	if !errors.Is(err, core.ErrChallengeRequired) {
		t.Fatalf("expected ErrChallengeRequired, got %v", err)
	}
	if gw.loginCalls != 1 {
		t.Errorf("login calls = %d, want 1 (challenge must not be retried)", gw.loginCalls)
	}
	if m.State() != Failed {
		t.Errorf("state = %v, want Failed", m.State())
	}
}

func TestConnect_RetriesTransientErrors(t *testing.T) {
	gw := &fakeGateway{
		loginErrs: []error{core.ErrNetwork, core.ErrAuth},
		username:  "bot",
	}
	m := newTestManager(gw)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.loginCalls != 3 {
		t.Errorf("login calls = %d, want 3", gw.loginCalls)
	}
	if m.State() != Connected {
		t.Errorf("state = %v, want Connected", m.State())
	}
}

func TestConnect_ExhaustsAttempts(t *testing.T) {
	gw := &fakeGateway{
		loginErrs: []error{core.ErrNetwork, core.ErrNetwork, core.ErrNetwork},
	}
	m := newTestManager(gw)

	err := m.Connect(context.Background())
	if !errors.Is(err, core.ErrConnectionExhausted) {
		t.Fatalf("expected ErrConnectionExhausted, got %v", err)
	}
	if gw.loginCalls != maxConnectAttempts {
		t.Errorf("login calls = %d, want %d", gw.loginCalls, maxConnectAttempts)
	}
}

func TestConnect_ProbeFailureSkipsLogin(t *testing.T) {
	gw := &fakeGateway{username: "bot"}
	m := newTestManager(gw)
	m.probe = func(ctx context.Context) error { return core.ErrNetwork }

	err := m.Connect(context.Background())
	if !errors.Is(err, core.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if gw.loginCalls != 0 {
		t.Errorf("login calls = %d, want 0 (probe must fail fast)", gw.loginCalls)
	}
}

func TestConnect_LoginNotTrustedWithoutIdentityCheck(t *testing.T) {
	gw := &fakeGateway{currentUserErr: core.ErrAuth}
	m := newTestManager(gw)

	err := m.Connect(context.Background())
	if !errors.Is(err, core.ErrConnectionExhausted) {
		t.Fatalf("expected ErrConnectionExhausted, got %v", err)
	}
	if m.State() != Failed {
		t.Errorf("state = %v, want Failed", m.State())
	}
}

func TestEnsureConnected_NoopWhenConnected(t *testing.T) {
	gw := &fakeGateway{username: "bot"}
	m := newTestManager(gw)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.EnsureConnected(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.loginCalls != 1 {
		t.Errorf("login calls = %d, want 1 (no reconnect while connected)", gw.loginCalls)
	}
}

func TestListThreads_AuthErrorDemotesSession(t *testing.T) {
	gw := &fakeGateway{username: "bot", threadsErr: core.ErrAuth}
	m := newTestManager(gw)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.ListThreads(context.Background()); !errors.Is(err, core.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if m.State() != Disconnected {
		t.Errorf("state = %v, want Disconnected after auth failure", m.State())
	}
}

func TestListThreads_ChallengeFailsSession(t *testing.T) {
	gw := &fakeGateway{username: "bot", threadsErr: core.ErrChallengeRequired}
	m := newTestManager(gw)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.ListThreads(context.Background()); !errors.Is(err, core.ErrChallengeRequired) {
		t.Fatalf("expected ErrChallengeRequired, got %v", err)
	}
	if m.State() != Failed {
		t.Errorf("state = %v, want Failed (a challenged session must not reconnect)", m.State())
	}
}

func TestNewManager_GeneratesDeviceIdentity(t *testing.T) {
	m := NewManager(&fakeGateway{}, &config.InstagramConfig{Username: "bot", Password: "secret"})

	if m.identity.DeviceID == "" || m.identity.ClientUUID == "" {
		t.Error("device identity pair must be generated at construction")
	}
	if m.identity.DeviceID == m.identity.ClientUUID {
		t.Error("device id and client uuid should be distinct")
	}
}
