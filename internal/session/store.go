// Package session provides the server-side store that maps opaque session
// identifiers to authenticated account identities.  The signed cookie only
// proves the token was issued by this server; the store decides whether the
// session is still alive, which is what makes logout take effect immediately.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Lookup when the session id is unknown or has
// expired.  Callers treat the request as unauthenticated.
var ErrNotFound = errors.New("session not found")

// Identity is the authenticated account bound to a session.
type Identity struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

// Store persists sessions for their lifetime.  Save overwrites any existing
// entry for the same id; Delete is idempotent and succeeds for unknown ids.
type Store interface {
	Save(ctx context.Context, sid string, id Identity, ttl time.Duration) error
	Lookup(ctx context.Context, sid string) (Identity, error)
	Delete(ctx context.Context, sid string) error
}
