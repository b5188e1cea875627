package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/game-lounge/internal/database"
	"github.com/iliyamo/game-lounge/internal/repository"
)

func TestUserRepo_CreateAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	id, err := users.Create(ctx, "alice", "alice@example.com", "s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotZero(t, id)

	u, err := users.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "alice@example.com", u.Email)
	require.False(t, u.CreatedAt.IsZero())
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "bob", "bob@example.com", "pw", bcrypt.MinCost)
	require.NoError(t, err)

	_, err = users.Create(ctx, "bob", "other@example.com", "pw", bcrypt.MinCost)
	require.ErrorIs(t, err, repository.ErrUsernameExists)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "carol", "carol@example.com", "pw", bcrypt.MinCost)
	require.NoError(t, err)

	_, err = users.Create(ctx, "carol2", "carol@example.com", "pw", bcrypt.MinCost)
	require.ErrorIs(t, err, repository.ErrEmailExists)
}

// Both a wrong password and an unknown username must collapse to the same
// error so responses cannot be used to enumerate usernames.
func TestUserRepo_AuthenticateFailsClosed(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "dave", "dave@example.com", "right", bcrypt.MinCost)
	require.NoError(t, err)

	_, err = users.Authenticate(ctx, "dave", "wrong")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "nobody", "whatever")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestUserRepo_DemoAccountSeeded(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	u, err := users.Authenticate(ctx, database.DemoUsername, database.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, database.DemoEmail, u.Email)

	// Re-running Init must not duplicate or reset the demo account.
	require.NoError(t, database.Init(ctx, db, bcrypt.MinCost))
	again, err := users.GetByUsername(ctx, database.DemoUsername)
	require.NoError(t, err)
	require.Equal(t, u.ID, again.ID)
}
