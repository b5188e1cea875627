package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-lounge/internal/model"
)

// NoteRepo owns all access to the 'notes' table.  Each account has at most
// one note row, created lazily on first save.
type NoteRepo struct{ DB *sql.DB }

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{DB: db} }

// Get returns the account's note.  The second return value is false when no
// note has been saved yet; callers render empty content and no timestamp.
func (r *NoteRepo) Get(ctx context.Context, userID uint64) (model.Note, bool, error) {
	var n model.Note
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,content,last_updated FROM notes WHERE user_id=? LIMIT 1",
		userID).Scan(&n.ID, &n.UserID, &n.Content, &n.LastUpdated)
	if err == sql.ErrNoRows {
		return model.Note{}, false, nil
	}
	if err != nil {
		return model.Note{}, false, err
	}
	return n, true, nil
}

// Save upserts the account's note: insert on first save, in-place overwrite
// afterwards, refreshing last_updated either way.  Overlapping saves from
// the same account are last-write-wins; the row is only reachable by its
// owning session, so the race is accepted rather than versioned.
func (r *NoteRepo) Save(ctx context.Context, userID uint64, content string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO notes (user_id, content) VALUES (?,?)
		 ON CONFLICT(user_id) DO UPDATE SET content=excluded.content, last_updated=CURRENT_TIMESTAMP`,
		userID, content)
	return err
}
