package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-lounge/internal/model"
)

// Game results accepted by ReportResult.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
	ResultTie  = "tie"
)

// StatsRepo owns all access to the 'game_stats' table.  One row per account,
// created lazily on the first reported result; counters only ever increase.
type StatsRepo struct{ DB *sql.DB }

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{DB: db} }

// ReportResult increments exactly the counter matching result.  The first
// report for an account creates its row with that one counter at 1.  Any
// value outside win/loss/tie is rejected with ErrInvalidResult before the
// database is touched.
func (r *StatsRepo) ReportResult(ctx context.Context, userID uint64, result string) error {
	var column string
	switch result {
	case ResultWin:
		column = "wins"
	case ResultLoss:
		column = "losses"
	case ResultTie:
		column = "ties"
	default:
		return ErrInvalidResult
	}
	// column is one of three fixed identifiers, never user input.
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO game_stats (user_id, "+column+") VALUES (?,1)"+
			" ON CONFLICT(user_id) DO UPDATE SET "+column+"="+column+"+1",
		userID)
	return err
}

// Get returns the account's counters.  The second return value is false
// when no result has been reported yet.
func (r *StatsRepo) Get(ctx context.Context, userID uint64) (model.GameStats, bool, error) {
	var s model.GameStats
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,wins,losses,ties FROM game_stats WHERE user_id=? LIMIT 1",
		userID).Scan(&s.ID, &s.UserID, &s.Wins, &s.Losses, &s.Ties)
	if err == sql.ErrNoRows {
		return model.GameStats{}, false, nil
	}
	if err != nil {
		return model.GameStats{}, false, err
	}
	return s, true, nil
}

// Leaderboard returns up to limit accounts with at least one win, ordered by
// wins descending.  Ties in win count are broken by username ascending so
// the ordering is deterministic rather than storage-dependent.
func (r *StatsRepo) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT u.username, g.wins
		 FROM users u
		 JOIN game_stats g ON u.id = g.user_id
		 WHERE g.wins > 0
		 ORDER BY g.wins DESC, u.username ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Wins); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
