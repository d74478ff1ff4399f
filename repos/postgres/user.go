package postgres

import (
	"context"

	"github.com/juho05/wavedial"
	"github.com/juho05/wavedial/repos"
	"github.com/nullism/bqb"
)

type userRepository struct {
	db executer
}

func (u userRepository) Create(ctx context.Context, params repos.CreateUserParams) (*repos.User, error) {
	q := bqb.New(`INSERT INTO users (id,username,email,password_hash,created) VALUES (?,?,?,?,NOW()) RETURNING *`,
		wavedial.GenIDUser(), params.Username, params.Email, params.PasswordHash)
	return getQuery[*repos.User](ctx, u.db, q)
}

func (u userRepository) FindAll(ctx context.Context) ([]*repos.User, error) {
	return selectQuery[*repos.User](ctx, u.db, bqb.New("SELECT users.* FROM users"))
}

func (u userRepository) FindByID(ctx context.Context, id string) (*repos.User, error) {
	return getQuery[*repos.User](ctx, u.db, bqb.New("SELECT users.* FROM users WHERE id = ?", id))
}

func (u userRepository) FindByEmail(ctx context.Context, email string) (*repos.User, error) {
	return getQuery[*repos.User](ctx, u.db, bqb.New("SELECT users.* FROM users WHERE email = ?", email))
}

func (u userRepository) DeleteByID(ctx context.Context, id string) error {
	return executeQueryExpectAffectedRows(ctx, u.db, bqb.New("DELETE FROM users WHERE id = ?", id))
}
