package mockdb

import (
	"context"

	"github.com/juho05/wavedial/repos"
)

type StationRepository struct {
	CreateMock   func(ctx context.Context, params repos.CreateStationParams) (*repos.Station, error)
	FindByIDMock func(ctx context.Context, id string) (*repos.Station, error)
	FindAllMock  func(ctx context.Context) ([]*repos.Station, error)
	SearchMock   func(ctx context.Context, query string) ([]*repos.Station, error)
	UpdateMock   func(ctx context.Context, id string, params repos.UpdateStationParams) error
	DeleteMock   func(ctx context.Context, id string) error
}

func (s StationRepository) Create(ctx context.Context, params repos.CreateStationParams) (*repos.Station, error) {
	if s.CreateMock != nil {
		return s.CreateMock(ctx, params)
	}
	panic("not implemented")
}

func (s StationRepository) FindByID(ctx context.Context, id string) (*repos.Station, error) {
	if s.FindByIDMock != nil {
		return s.FindByIDMock(ctx, id)
	}
	panic("not implemented")
}

func (s StationRepository) FindAll(ctx context.Context) ([]*repos.Station, error) {
	if s.FindAllMock != nil {
		return s.FindAllMock(ctx)
	}
	panic("not implemented")
}

func (s StationRepository) Search(ctx context.Context, query string) ([]*repos.Station, error) {
	if s.SearchMock != nil {
		return s.SearchMock(ctx, query)
	}
	panic("not implemented")
}

func (s StationRepository) Update(ctx context.Context, id string, params repos.UpdateStationParams) error {
	if s.UpdateMock != nil {
		return s.UpdateMock(ctx, id, params)
	}
	panic("not implemented")
}

func (s StationRepository) Delete(ctx context.Context, id string) error {
	if s.DeleteMock != nil {
		return s.DeleteMock(ctx, id)
	}
	panic("not implemented")
}
