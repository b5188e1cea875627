// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// GameResultEvent is published when a player reports a finished game.  It
// contains enough information for downstream consumers to log or feed
// analytics without querying the primary database.
type GameResultEvent struct {
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	Result     string `json:"result"` // win | loss | tie
	ReportedAt string `json:"reported_at"`
}
