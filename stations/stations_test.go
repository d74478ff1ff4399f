package stations

import (
	"context"
	"testing"

	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/repos/mockdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("passes params through", func(t *testing.T) {
		var created repos.CreateStationParams
		db := &mockdb.DB{
			StationRepository: mockdb.StationRepository{
				CreateMock: func(ctx context.Context, params repos.CreateStationParams) (*repos.Station, error) {
					created = params
					return &repos.Station{
						ID:        "st_teststation1",
						Name:      params.Name,
						StreamURL: params.StreamURL,
						Image:     params.Image,
					}, nil
				},
			},
		}
		service := NewService(db)

		station, err := service.Create(ctx, CreateParams{
			Name:        "Jazz FM",
			Language:    "English",
			Description: "smooth jazz",
			StreamURL:   "https://radio.example.com/jazz",
			Image:       "/images/image-1234.png",
		})
		require.NoErrorf(t, err, "create: %v", err)
		assert.Equal(t, "st_teststation1", station.ID)
		assert.Equal(t, "Jazz FM", created.Name)
		assert.Equal(t, "English", created.Language)
		assert.Equal(t, "smooth jazz", created.Description)
		assert.Equal(t, "https://radio.example.com/jazz", created.StreamURL)
		assert.Equal(t, "/images/image-1234.png", created.Image)
	})

	t.Run("rejects missing name or stream url", func(t *testing.T) {
		service := NewService(&mockdb.DB{})

		_, err := service.Create(ctx, CreateParams{StreamURL: "https://radio.example.com/jazz"})
		assert.ErrorIs(t, err, repos.ErrInvalidParams)
		_, err = service.Create(ctx, CreateParams{Name: "Jazz FM"})
		assert.ErrorIs(t, err, repos.ErrInvalidParams)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards image choice untouched", func(t *testing.T) {
		var updated repos.UpdateStationParams
		db := &mockdb.DB{
			StationRepository: mockdb.StationRepository{
				UpdateMock: func(ctx context.Context, id string, params repos.UpdateStationParams) error {
					updated = params
					return nil
				},
			},
		}
		service := NewService(db)

		err := service.Update(ctx, "st_teststation1", UpdateParams{
			Name:      "Jazz FM",
			StreamURL: "https://radio.example.com/jazz",
		})
		require.NoErrorf(t, err, "update: %v", err)
		assert.False(t, updated.Image.HasValue(), "no upload must mean no image change")

		err = service.Update(ctx, "st_teststation1", UpdateParams{
			Name:      "Jazz FM",
			StreamURL: "https://radio.example.com/jazz",
			Image:     repos.NewOptionalFull("/images/image-5678.png"),
		})
		require.NoErrorf(t, err, "update: %v", err)
		assert.True(t, updated.Image.HasValue())
		assert.Equal(t, "/images/image-5678.png", updated.Image.Get())
	})

	t.Run("rejects missing name or stream url", func(t *testing.T) {
		service := NewService(&mockdb.DB{})

		err := service.Update(ctx, "st_teststation1", UpdateParams{StreamURL: "https://radio.example.com/jazz"})
		assert.ErrorIs(t, err, repos.ErrInvalidParams)
		err = service.Update(ctx, "st_teststation1", UpdateParams{Name: "Jazz FM"})
		assert.ErrorIs(t, err, repos.ErrInvalidParams)
	})

	t.Run("propagates unknown id", func(t *testing.T) {
		db := &mockdb.DB{
			StationRepository: mockdb.StationRepository{
				UpdateMock: func(ctx context.Context, id string, params repos.UpdateStationParams) error {
					return repos.NewError("update station", repos.ErrNotFound, nil)
				},
			},
		}
		service := NewService(db)

		err := service.Update(ctx, "st_doesnotexist", UpdateParams{
			Name:      "Jazz FM",
			StreamURL: "https://radio.example.com/jazz",
		})
		assert.ErrorIs(t, err, repos.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	var deleted string
	db := &mockdb.DB{
		StationRepository: mockdb.StationRepository{
			DeleteMock: func(ctx context.Context, id string) error {
				if id != "st_teststation1" {
					return repos.NewError("delete station", repos.ErrNotFound, nil)
				}
				deleted = id
				return nil
			},
		},
	}
	service := NewService(db)

	err := service.Delete(ctx, "st_teststation1")
	require.NoErrorf(t, err, "delete: %v", err)
	assert.Equal(t, "st_teststation1", deleted)

	err = service.Delete(ctx, "st_doesnotexist")
	assert.ErrorIs(t, err, repos.ErrNotFound)
}
