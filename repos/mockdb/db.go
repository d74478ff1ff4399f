package mockdb

import (
	"context"

	"github.com/juho05/wavedial/repos"
)

type DB struct {
	UserRepository     UserRepository
	StationRepository  StationRepository
	FavoriteRepository FavoriteRepository
	SessionRepository  SessionRepository

	TransactionMock    func(ctx context.Context, fn func(tx repos.Tx) error) error
	NewTransactionMock func(ctx context.Context) (repos.Transaction, error)
	CommitMock         func() error
	RollbackMock       func() error
	CloseMock          func() error
}

func (d *DB) User() repos.UserRepository {
	return d.UserRepository
}

func (d *DB) Station() repos.StationRepository {
	return d.StationRepository
}

func (d *DB) Favorite() repos.FavoriteRepository {
	return d.FavoriteRepository
}

func (d *DB) Session() repos.SessionRepository {
	return d.SessionRepository
}

func (d *DB) Transaction(ctx context.Context, fn func(tx repos.Tx) error) error {
	if d.TransactionMock != nil {
		return d.TransactionMock(ctx, fn)
	}
	return fn(d)
}

func (d *DB) NewTransaction(ctx context.Context) (repos.Transaction, error) {
	if d.NewTransactionMock != nil {
		return d.NewTransactionMock(ctx)
	}
	return d, nil
}

func (d *DB) Commit() error {
	if d.CommitMock != nil {
		return d.CommitMock()
	}
	return nil
}

func (d *DB) Rollback() error {
	if d.RollbackMock != nil {
		return d.RollbackMock()
	}
	return nil
}

func (d *DB) Close() error {
	if d.CloseMock != nil {
		return d.CloseMock()
	}
	return nil
}
