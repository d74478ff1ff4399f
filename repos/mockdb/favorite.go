package mockdb

import (
	"context"

	"github.com/juho05/wavedial/repos"
)

type FavoriteRepository struct {
	AddMock                func(ctx context.Context, userID, stationID string) error
	FindStationsByUserMock func(ctx context.Context, userID string) ([]*repos.Station, error)
}

func (f FavoriteRepository) Add(ctx context.Context, userID, stationID string) error {
	if f.AddMock != nil {
		return f.AddMock(ctx, userID, stationID)
	}
	panic("not implemented")
}

func (f FavoriteRepository) FindStationsByUser(ctx context.Context, userID string) ([]*repos.Station, error) {
	if f.FindStationsByUserMock != nil {
		return f.FindStationsByUserMock(ctx, userID)
	}
	panic("not implemented")
}
