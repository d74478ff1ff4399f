package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/juho05/wavedial"
	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationRepository(t *testing.T) {
	db := thSetupDatabase(t)

	ctx := context.Background()

	repo := db.Station()

	assert.Equal(t, 0, thCount(t, db, "stations"),
		"there should be no stations at beginning of test")

	stationIDs := func(stations []*repos.Station) []string {
		return util.Map(stations, func(s *repos.Station) string {
			return s.ID
		})
	}

	t.Run("Create", func(t *testing.T) {
		t.Run("create with image", func(t *testing.T) {
			thDeleteAll(t, db, "stations")
			station, err := repo.Create(ctx, repos.CreateStationParams{
				Name:        "Jazz FM",
				Language:    "EN",
				Description: "smooth jazz",
				StreamURL:   "https://radio.example.com/jazz",
				Image:       "/images/image-1234.png",
			})
			require.NoErrorf(t, err, "create test station: %v", err)
			require.NotNil(t, station)
			assert.Truef(t, wavedial.IsIDType(station.ID, wavedial.IDTypeStation),
				"expected valid station ID, got: %s", station.ID)
			assert.Equal(t, "Jazz FM", station.Name)
			assert.Equal(t, "EN", station.Language)
			assert.Equal(t, "smooth jazz", station.Description)
			assert.Equal(t, "https://radio.example.com/jazz", station.StreamURL)
			assert.Equal(t, "/images/image-1234.png", station.Image)

			assert.True(t, thExists(t, db, "stations", map[string]any{
				"id":         station.ID,
				"name":       "Jazz FM",
				"language":   "EN",
				"stream_url": "https://radio.example.com/jazz",
				"image":      "/images/image-1234.png",
			}), "created station should exist in db")
		})

		t.Run("create without image stores empty string", func(t *testing.T) {
			thDeleteAll(t, db, "stations")
			station, err := repo.Create(ctx, repos.CreateStationParams{
				Name:        "Jazz FM",
				Language:    "EN",
				Description: "smooth jazz",
				StreamURL:   "https://radio.example.com/jazz",
			})
			require.NoErrorf(t, err, "create test station: %v", err)
			assert.Equal(t, "", station.Image)

			assert.True(t, thExists(t, db, "stations", map[string]any{
				"id":    station.ID,
				"image": "",
			}), "created station should exist with empty image")
		})
	})

	t.Run("FindByID", func(t *testing.T) {
		thDeleteAll(t, db, "stations")
		station := thCreateStation(t, db, "Test Station")

		found, err := repo.FindByID(ctx, station.ID)
		require.NoErrorf(t, err, "find station by id: %v", err)
		assert.Equal(t, station.Name, found.Name)
		assert.Equal(t, station.StreamURL, found.StreamURL)

		_, err = repo.FindByID(ctx, "st_doesnotexist")
		assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
	})

	t.Run("FindAll", func(t *testing.T) {
		thDeleteAll(t, db, "stations")

		stations, err := repo.FindAll(ctx)
		require.NoErrorf(t, err, "find all stations: %v", err)
		assert.Empty(t, stations)

		station1 := thCreateStation(t, db, "Station One")
		station2 := thCreateStation(t, db, "Station Two")

		stations, err = repo.FindAll(ctx)
		require.NoErrorf(t, err, "find all stations: %v", err)
		assert.Len(t, stations, 2)
		assert.Contains(t, stationIDs(stations), station1.ID)
		assert.Contains(t, stationIDs(stations), station2.ID)
	})

	t.Run("Search", func(t *testing.T) {
		thDeleteAll(t, db, "stations")

		jazz, err := repo.Create(ctx, repos.CreateStationParams{
			Name:        "Jazz FM",
			Language:    "English",
			Description: "smooth jazz around the clock",
			StreamURL:   "https://radio.example.com/jazz",
		})
		require.NoError(t, err)
		klassik, err := repo.Create(ctx, repos.CreateStationParams{
			Name:        "Klassik Radio",
			Language:    "German",
			Description: "classical music",
			StreamURL:   "https://radio.example.com/klassik",
		})
		require.NoError(t, err)

		t.Run("matches name ignoring case", func(t *testing.T) {
			stations, err := repo.Search(ctx, "jAzZ")
			require.NoErrorf(t, err, "search stations: %v", err)
			require.Len(t, stations, 1)
			assert.Equal(t, jazz.ID, stations[0].ID)
		})

		t.Run("matches description substring", func(t *testing.T) {
			stations, err := repo.Search(ctx, "around the")
			require.NoErrorf(t, err, "search stations: %v", err)
			require.Len(t, stations, 1)
			assert.Equal(t, jazz.ID, stations[0].ID)
		})

		t.Run("matches language", func(t *testing.T) {
			stations, err := repo.Search(ctx, "german")
			require.NoErrorf(t, err, "search stations: %v", err)
			require.Len(t, stations, 1)
			assert.Equal(t, klassik.ID, stations[0].ID)
		})

		t.Run("empty query matches every station", func(t *testing.T) {
			stations, err := repo.Search(ctx, "")
			require.NoErrorf(t, err, "search stations: %v", err)
			assert.Len(t, stations, 2)
		})

		t.Run("no match returns empty result", func(t *testing.T) {
			stations, err := repo.Search(ctx, "does not exist anywhere")
			require.NoErrorf(t, err, "search stations: %v", err)
			assert.Empty(t, stations)
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("replaces scalar fields", func(t *testing.T) {
			thDeleteAll(t, db, "stations")
			station := thCreateStation(t, db, "Old Name")

			err := repo.Update(ctx, station.ID, repos.UpdateStationParams{
				Name:        "New Name",
				Language:    "FR",
				Description: "new description",
				StreamURL:   "https://radio.example.com/new",
				Image:       repos.NewOptionalFull("/images/image-5678.png"),
			})
			require.NoErrorf(t, err, "update station: %v", err)

			updated, err := repo.FindByID(ctx, station.ID)
			require.NoError(t, err)
			assert.Equal(t, "New Name", updated.Name)
			assert.Equal(t, "FR", updated.Language)
			assert.Equal(t, "new description", updated.Description)
			assert.Equal(t, "https://radio.example.com/new", updated.StreamURL)
			assert.Equal(t, "/images/image-5678.png", updated.Image)
		})

		t.Run("preserves image without new upload", func(t *testing.T) {
			thDeleteAll(t, db, "stations")
			station, err := repo.Create(ctx, repos.CreateStationParams{
				Name:      "Test Station",
				Language:  "EN",
				StreamURL: "https://radio.example.com/stream",
				Image:     "/images/image-1111.png",
			})
			require.NoError(t, err)

			err = repo.Update(ctx, station.ID, repos.UpdateStationParams{
				Name:      "Renamed Station",
				Language:  "EN",
				StreamURL: "https://radio.example.com/stream",
			})
			require.NoErrorf(t, err, "update station: %v", err)

			updated, err := repo.FindByID(ctx, station.ID)
			require.NoError(t, err)
			assert.Equal(t, "Renamed Station", updated.Name)
			assert.Equal(t, "/images/image-1111.png", updated.Image,
				"image reference should survive an update without a new upload")
		})

		t.Run("unknown id should return ErrNotFound", func(t *testing.T) {
			err := repo.Update(ctx, "st_doesnotexist", repos.UpdateStationParams{
				Name:      "Nope",
				StreamURL: "https://radio.example.com/nope",
			})
			assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
		})
	})

	t.Run("Delete", func(t *testing.T) {
		thDeleteAll(t, db, "stations")
		station := thCreateStation(t, db, "Doomed Station")
		other := thCreateStation(t, db, "Surviving Station")

		err := repo.Delete(ctx, station.ID)
		require.NoErrorf(t, err, "delete station: %v", err)

		_, err = repo.FindByID(ctx, station.ID)
		assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound after delete, got: %v", err)
		assert.True(t, thExists(t, db, "stations", map[string]any{"id": other.ID}),
			"only the station with matching id should be deleted")

		err = repo.Delete(ctx, station.ID)
		assert.Truef(t, errors.Is(err, repos.ErrNotFound), "expected ErrNotFound, got: %v", err)
	})

	t.Run("deleting a station removes its favourite rows", func(t *testing.T) {
		thDeleteAll(t, db, "stations")
		thDeleteAll(t, db, "users")
		user := thCreateUser(t, db)
		station := thCreateStation(t, db, "Cascade FM")

		err := db.Favorite().Add(ctx, user.ID, station.ID)
		require.NoErrorf(t, err, "add favourite: %v", err)
		require.Equal(t, 1, thCount(t, db, "favourites"))

		err = repo.Delete(ctx, station.ID)
		require.NoErrorf(t, err, "delete station: %v", err)

		assert.Equal(t, 0, thCount(t, db, "favourites"),
			"favourites of a deleted station must not be orphaned")
		assert.True(t, thExists(t, db, "users", map[string]any{"id": user.ID}),
			"users must survive deleting a station")
	})
}
