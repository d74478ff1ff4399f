package postgres

import (
	"context"
	"time"

	"github.com/juho05/wavedial/repos"
	"github.com/nullism/bqb"
)

type sessionRepository struct {
	db executer
}

func (s sessionRepository) Create(ctx context.Context, token, userID string, expires time.Time) error {
	q := bqb.New("INSERT INTO sessions (token,user_id,created,expires) VALUES (?,?,NOW(),?)", token, userID, expires)
	return executeQuery(ctx, s.db, q)
}

func (s sessionRepository) FindUserByToken(ctx context.Context, token string) (*repos.SessionUser, error) {
	q := bqb.New(`SELECT sessions.token, sessions.expires, users.id AS user_id, users.username, users.email
	FROM sessions INNER JOIN users ON users.id = sessions.user_id
	WHERE sessions.token = ? AND sessions.expires > NOW()`, token)
	return getQuery[*repos.SessionUser](ctx, s.db, q)
}

func (s sessionRepository) Delete(ctx context.Context, token string) error {
	// intentionally tolerates unknown tokens, logout is idempotent
	return executeQuery(ctx, s.db, bqb.New("DELETE FROM sessions WHERE token = ?", token))
}

func (s sessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	return executeQueryCountAffectedRows(ctx, s.db, bqb.New("DELETE FROM sessions WHERE expires <= NOW()"))
}
