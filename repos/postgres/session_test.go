package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juho05/wavedial/repos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	db := thSetupDatabase(t)

	ctx := context.Background()

	repo := db.Session()

	t.Run("Create", func(t *testing.T) {
		t.Run("creates session", func(t *testing.T) {
			thDeleteAll(t, db, "users")
			user := thCreateUser(t, db)

			err := repo.Create(ctx, "token-1", user.ID, farFuture())
			require.NoErrorf(t, err, "create session: %v", err)

			assert.True(t, thExists(t, db, "sessions", map[string]any{
				"token":   "token-1",
				"user_id": user.ID,
			}), "session should exist in db")
		})

		t.Run("unknown user should return ErrNotFound", func(t *testing.T) {
			err := repo.Create(ctx, "token-orphan", "us_doesnotexist", farFuture())
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})
	})

	t.Run("FindUserByToken", func(t *testing.T) {
		thDeleteAll(t, db, "users")
		user := thCreateUser(t, db)
		require.NoError(t, repo.Create(ctx, "token-live", user.ID, farFuture()))
		require.NoError(t, repo.Create(ctx, "token-expired", user.ID, time.Now().Add(-time.Hour)))

		t.Run("returns session joined with owner", func(t *testing.T) {
			session, err := repo.FindUserByToken(ctx, "token-live")
			require.NoErrorf(t, err, "find user by token: %v", err)
			assert.Equal(t, "token-live", session.Token)
			assert.Equal(t, user.ID, session.UserID)
			assert.Equal(t, user.Username, session.Username)
			assert.Equal(t, user.Email, session.Email)
		})

		t.Run("expired session is treated as absent", func(t *testing.T) {
			_, err := repo.FindUserByToken(ctx, "token-expired")
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})

		t.Run("unknown token should return ErrNotFound", func(t *testing.T) {
			_, err := repo.FindUserByToken(ctx, "token-doesnotexist")
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})
	})

	t.Run("Delete", func(t *testing.T) {
		thDeleteAll(t, db, "users")
		user := thCreateUser(t, db)
		require.NoError(t, repo.Create(ctx, "token-delete", user.ID, farFuture()))
		require.NoError(t, repo.Create(ctx, "token-keep", user.ID, farFuture()))

		err := repo.Delete(ctx, "token-delete")
		require.NoErrorf(t, err, "delete session: %v", err)

		assert.False(t, thExists(t, db, "sessions", map[string]any{"token": "token-delete"}),
			"deleted session should not exist anymore")
		assert.True(t, thExists(t, db, "sessions", map[string]any{"token": "token-keep"}),
			"only the session with matching token should be deleted")

		err = repo.Delete(ctx, "token-delete")
		assert.NoErrorf(t, err, "deleting an unknown token should not fail: %v", err)
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		thDeleteAll(t, db, "users")
		user := thCreateUser(t, db)
		require.NoError(t, repo.Create(ctx, "token-live", user.ID, farFuture()))
		require.NoError(t, repo.Create(ctx, "token-expired-1", user.ID, time.Now().Add(-time.Hour)))
		require.NoError(t, repo.Create(ctx, "token-expired-2", user.ID, time.Now().Add(-time.Minute)))

		count, err := repo.DeleteExpired(ctx)
		require.NoErrorf(t, err, "delete expired sessions: %v", err)
		assert.Equal(t, 2, count)

		assert.Equal(t, 1, thCount(t, db, "sessions"))
		assert.True(t, thExists(t, db, "sessions", map[string]any{"token": "token-live"}),
			"live sessions must survive the purge")

		count, err = repo.DeleteExpired(ctx)
		require.NoErrorf(t, err, "delete expired sessions: %v", err)
		assert.Equal(t, 0, count, "purging twice should find nothing left to delete")
	})
}
