// Package tokens persists the session token across process restarts, so a
// restart does not force re-authentication.
package tokens

import "context"

type Repository interface {
	// Get returns the persisted token, or "" when none is stored.
	Get(ctx context.Context) (string, error)
	// Set stores the token, replacing any previous one.
	Set(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
