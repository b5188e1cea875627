package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/game-lounge/internal/model"
	"github.com/iliyamo/game-lounge/internal/utils"
)

// UserRepo owns all access to the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a new account, returning its ID.
// Uniqueness of username and email is enforced by the database; relying on
// the UNIQUE constraints instead of a prior existence check closes the race
// between two concurrent registrations of the same name.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, email, hash)
	if err != nil {
		// sqlite reports constraint violations as
		// "UNIQUE constraint failed: users.<column>"
		msg := err.Error()
		if strings.Contains(msg, "users.username") {
			return 0, ErrUsernameExists
		}
		if strings.Contains(msg, "users.email") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Authenticate looks an account up by username and verifies the password.
// A missing account and a wrong password both return ErrInvalidCredentials.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByUsername fetches an account by its login name.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByID fetches an account by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
