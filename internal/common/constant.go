// Package common contains shared constants used across adminctl components.
package common

const (
	// ClientTimeHeaderName carries the client's current Unix time in
	// milliseconds on authenticated requests.
	ClientTimeHeaderName = "X-Client-Ts"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"

	// CSRFHintHeaderName / CSRFHintValue mark requests as originating from
	// the admin client rather than a plain browser form.
	CSRFHintHeaderName = "X-Requested-With"
	CSRFHintValue      = "XMLHttpRequest"

	// TokenStorageKey is the fixed key the persisted session token is
	// stored under. Present only when the admin opted into "remember".
	TokenStorageKey = "admin_session_token"
)
