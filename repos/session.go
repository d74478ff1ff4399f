package repos

import (
	"context"
	"time"
)

type Session struct {
	Token   string    `db:"token"`
	UserID  string    `db:"user_id"`
	Created time.Time `db:"created"`
	Expires time.Time `db:"expires"`
}

// SessionUser is a session joined with its owning user,
// returned by token lookups.
type SessionUser struct {
	Token    string    `db:"token"`
	Expires  time.Time `db:"expires"`
	UserID   string    `db:"user_id"`
	Username string    `db:"username"`
	Email    string    `db:"email"`
}

type SessionRepository interface {
	// Create inserts a new session binding token to the user until expires.
	// Returns ErrNotFound if the user does not exist.
	Create(ctx context.Context, token, userID string, expires time.Time) error
	// FindUserByToken returns the session with the provided token joined with
	// its owner. Expired sessions are treated as absent.
	// Returns ErrNotFound if no live session matches.
	FindUserByToken(ctx context.Context, token string) (*SessionUser, error)
	// Delete removes the session with the provided token. Deleting an unknown
	// token is not an error.
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes all expired sessions and reports how many were removed.
	DeleteExpired(ctx context.Context) (int, error)
}
