package model

import "time"

// Note models the single free-text blob owned by one account.  At most one
// row exists per user (`notes.user_id` is UNIQUE); the row is created lazily
// on first save and only ever updated in place afterwards.
//
// Fields:
//
//	ID          – primary key identifier.
//	UserID      – owning account.
//	Content     – the note text, defaults to empty.
//	LastUpdated – refreshed on every save.
type Note struct {
	ID          uint64    // notes.id
	UserID      uint64    // notes.user_id
	Content     string    // notes.content
	LastUpdated time.Time // notes.last_updated
}
