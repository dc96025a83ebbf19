package core

import "errors"

// Error taxonomy for the gateway and the record store. Callers discriminate
// with errors.Is; wrapping sites add detail with fmt.Errorf("...: %w", err).
var (
	// ErrNetwork is transient and retryable.
	ErrNetwork = errors.New("network unavailable")

	// ErrAuth is retryable up to the session policy limit.
	ErrAuth = errors.New("authentication failed")

	// ErrChallengeRequired is terminal: the platform demands out-of-band
	// human verification and automated retry only worsens rate-limit standing.
	ErrChallengeRequired = errors.New("challenge required")

	// ErrRateLimited is treated like ErrNetwork by the retry policy.
	ErrRateLimited = errors.New("rate limited")

	// ErrConnectionExhausted is returned once the connect retry budget is spent.
	ErrConnectionExhausted = errors.New("connection attempts exhausted")

	// ErrNotFound is returned by repositories for missing records.
	ErrNotFound = errors.New("not found")

	// ErrStore marks record store failures; the ledger treats these as
	// "not processed" and the interpreter degrades to an apology reply.
	ErrStore = errors.New("store failure")
)
