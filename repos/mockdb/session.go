package mockdb

import (
	"context"
	"time"

	"github.com/juho05/wavedial/repos"
)

type SessionRepository struct {
	CreateMock          func(ctx context.Context, token, userID string, expires time.Time) error
	FindUserByTokenMock func(ctx context.Context, token string) (*repos.SessionUser, error)
	DeleteMock          func(ctx context.Context, token string) error
	DeleteExpiredMock   func(ctx context.Context) (int, error)
}

func (s SessionRepository) Create(ctx context.Context, token, userID string, expires time.Time) error {
	if s.CreateMock != nil {
		return s.CreateMock(ctx, token, userID, expires)
	}
	panic("not implemented")
}

func (s SessionRepository) FindUserByToken(ctx context.Context, token string) (*repos.SessionUser, error) {
	if s.FindUserByTokenMock != nil {
		return s.FindUserByTokenMock(ctx, token)
	}
	panic("not implemented")
}

func (s SessionRepository) Delete(ctx context.Context, token string) error {
	if s.DeleteMock != nil {
		return s.DeleteMock(ctx, token)
	}
	panic("not implemented")
}

func (s SessionRepository) DeleteExpired(ctx context.Context) (int, error) {
	if s.DeleteExpiredMock != nil {
		return s.DeleteExpiredMock(ctx)
	}
	panic("not implemented")
}
