package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository(t *testing.T) {
	db := thSetupDatabase(t)

	ctx := context.Background()

	repo := db.Favorite()

	t.Run("Add", func(t *testing.T) {
		t.Run("records the favourite", func(t *testing.T) {
			thDeleteAll(t, db, "users")
			thDeleteAll(t, db, "stations")
			user := thCreateUser(t, db)
			station := thCreateStation(t, db, "Test Station")

			err := repo.Add(ctx, user.ID, station.ID)
			require.NoErrorf(t, err, "add favourite: %v", err)

			assert.True(t, thExists(t, db, "favourites", map[string]any{
				"user_id":    user.ID,
				"station_id": station.ID,
			}), "favourite row should exist in db")
		})

		t.Run("adding twice is a no-op", func(t *testing.T) {
			thDeleteAll(t, db, "users")
			thDeleteAll(t, db, "stations")
			user := thCreateUser(t, db)
			station := thCreateStation(t, db, "Test Station")

			err := repo.Add(ctx, user.ID, station.ID)
			require.NoErrorf(t, err, "add favourite: %v", err)
			err = repo.Add(ctx, user.ID, station.ID)
			require.NoErrorf(t, err, "re-adding a favourite should not fail: %v", err)

			assert.Equal(t, 1, thCount(t, db, "favourites"),
				"re-adding must not create a second row")
		})

		t.Run("unknown station should return ErrNotFound", func(t *testing.T) {
			thDeleteAll(t, db, "users")
			user := thCreateUser(t, db)

			err := repo.Add(ctx, user.ID, "st_doesnotexist")
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})

		t.Run("unknown user should return ErrNotFound", func(t *testing.T) {
			thDeleteAll(t, db, "stations")
			station := thCreateStation(t, db, "Test Station")

			err := repo.Add(ctx, "us_doesnotexist", station.ID)
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})
	})

	t.Run("FindStationsByUser", func(t *testing.T) {
		thDeleteAll(t, db, "users")
		thDeleteAll(t, db, "stations")
		user := thCreateUser(t, db)
		other := thCreateUser(t, db)
		station1 := thCreateStation(t, db, "Station One")
		station2 := thCreateStation(t, db, "Station Two")
		station3 := thCreateStation(t, db, "Station Three")

		require.NoError(t, repo.Add(ctx, user.ID, station1.ID))
		require.NoError(t, repo.Add(ctx, user.ID, station2.ID))
		require.NoError(t, repo.Add(ctx, other.ID, station3.ID))

		stations, err := repo.FindStationsByUser(ctx, user.ID)
		require.NoErrorf(t, err, "find stations by user: %v", err)
		require.Len(t, stations, 2, "only the user's own favourites should be returned")
		ids := util.Map(stations, func(s *repos.Station) string {
			return s.ID
		})
		assert.Contains(t, ids, station1.ID)
		assert.Contains(t, ids, station2.ID)

		stations, err = repo.FindStationsByUser(ctx, "us_doesnotexist")
		require.NoErrorf(t, err, "find stations by unknown user: %v", err)
		assert.Empty(t, stations, "unknown user should simply have no favourites")
	})
}
