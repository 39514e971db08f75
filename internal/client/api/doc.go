// Package api contains the client-side transport for the admin backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the whole admin surface: auth exchange, profile, dashboard overview,
//     users, tasks, withdrawals, settings, and best-effort logout.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches a bearer
//     token and a client-timestamp header whenever a token is available,
//     tags every request with a correlation id, applies a fixed 12s request
//     timeout, and maps response statuses to typed errors.
//
// # Error Handling
//
// Common conditions are exposed as values callers can match without
// string-matching:
//
//   - ErrUnavailable: the request produced no response at all
//     (network failure or timeout). Matched with errors.Is.
//   - ErrUnauthorized: the backend answered 401; callers must tear the
//     session down. Matched with errors.Is.
//   - *StatusError: any other non-2xx answer, carrying the HTTP status and
//     the backend's error payload when present. Matched with errors.As.
//
// Transient reports whether an error is worth retrying (no response or 5xx).
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
