// Package tokens persists the opt-in session token between runs. It is the
// CLI analog of short-lived browser storage: a single value under a fixed
// key, written only when the admin asked to be remembered.
package tokens

import "context"

type Repository interface {
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	// Save replaces any previously persisted token with the given one.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
