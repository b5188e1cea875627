package model

// GameStats holds the per-account win/loss/tie counters.  One row per user
// (`game_stats.user_id` is UNIQUE), created lazily on the first reported
// result.  Counters only ever increase.
type GameStats struct {
	ID     uint64 // game_stats.id
	UserID uint64 // game_stats.user_id
	Wins   uint32 // game_stats.wins
	Losses uint32 // game_stats.losses
	Ties   uint32 // game_stats.ties
}

// LeaderboardEntry is one row of the ranked wins view rendered on the game
// page: accounts with at least one win, ordered by wins descending and
// username ascending as the tie-break.
type LeaderboardEntry struct {
	Username string
	Wins     uint32
}
