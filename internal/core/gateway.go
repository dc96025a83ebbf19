package core

import "context"

// Identity is the credential plus device fingerprint pair presented to the
// gateway on login. DeviceID and ClientUUID are generated once per process.
type Identity struct {
	Username   string
	Password   string
	DeviceID   string
	ClientUUID string
	UserAgent  string
}

// Gateway is the opaque send/receive capability of the messaging platform.
// All calls may fail with ErrNetwork, ErrAuth, ErrChallengeRequired or
// ErrRateLimited.
type Gateway interface {
	Login(ctx context.Context, identity Identity) error
	// CurrentUser verifies session validity; a login is not trusted until
	// this identity check succeeds.
	CurrentUser(ctx context.Context) (string, error)
	ListThreads(ctx context.Context) ([]Thread, error)
	ListItems(ctx context.Context, threadID string) ([]InboxItem, error)
	SendText(ctx context.Context, threadID, text string) error
}
