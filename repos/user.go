package repos

import (
	"context"
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	Created      time.Time `db:"created"`
}

type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash []byte
}

// UserRepository is an interface to manipulate user data in a database.
type UserRepository interface {
	// Create creates a new user in the database. The password hash is stored
	// as an opaque byte slice; hashing is the caller's responsibility.
	// Returns ErrExists if a user with the email already exists.
	Create(ctx context.Context, params CreateUserParams) (*User, error)

	// FindAll returns all users.
	FindAll(ctx context.Context) ([]*User, error)

	// FindByID returns the user with the provided id.
	// Returns ErrNotFound if no user was found.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the user with the provided email.
	// Returns ErrNotFound if no user was found.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// DeleteByID deletes the user with the provided id.
	// Returns ErrNotFound if no user was found.
	DeleteByID(ctx context.Context, id string) error
}
