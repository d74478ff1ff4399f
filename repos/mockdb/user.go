package mockdb

import (
	"context"

	"github.com/juho05/wavedial/repos"
)

type UserRepository struct {
	CreateMock      func(ctx context.Context, params repos.CreateUserParams) (*repos.User, error)
	FindAllMock     func(ctx context.Context) ([]*repos.User, error)
	FindByIDMock    func(ctx context.Context, id string) (*repos.User, error)
	FindByEmailMock func(ctx context.Context, email string) (*repos.User, error)
	DeleteByIDMock  func(ctx context.Context, id string) error
}

func (u UserRepository) Create(ctx context.Context, params repos.CreateUserParams) (*repos.User, error) {
	if u.CreateMock != nil {
		return u.CreateMock(ctx, params)
	}
	panic("not implemented")
}

func (u UserRepository) FindAll(ctx context.Context) ([]*repos.User, error) {
	if u.FindAllMock != nil {
		return u.FindAllMock(ctx)
	}
	panic("not implemented")
}

func (u UserRepository) FindByID(ctx context.Context, id string) (*repos.User, error) {
	if u.FindByIDMock != nil {
		return u.FindByIDMock(ctx, id)
	}
	panic("not implemented")
}

func (u UserRepository) FindByEmail(ctx context.Context, email string) (*repos.User, error) {
	if u.FindByEmailMock != nil {
		return u.FindByEmailMock(ctx, email)
	}
	panic("not implemented")
}

func (u UserRepository) DeleteByID(ctx context.Context, id string) error {
	if u.DeleteByIDMock != nil {
		return u.DeleteByIDMock(ctx, id)
	}
	panic("not implemented")
}
