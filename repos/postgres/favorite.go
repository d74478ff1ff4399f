package postgres

import (
	"context"

	"github.com/juho05/wavedial/repos"
	"github.com/nullism/bqb"
)

type favoriteRepository struct {
	db executer
}

func (f favoriteRepository) Add(ctx context.Context, userID, stationID string) error {
	q := bqb.New(`INSERT INTO favourites (user_id,station_id,created) VALUES (?,?,NOW())
	ON CONFLICT (user_id,station_id) DO NOTHING`, userID, stationID)
	return executeQuery(ctx, f.db, q)
}

func (f favoriteRepository) FindStationsByUser(ctx context.Context, userID string) ([]*repos.Station, error) {
	q := bqb.New(`SELECT stations.* FROM stations
	INNER JOIN favourites ON stations.id = favourites.station_id
	WHERE favourites.user_id = ?`, userID)
	return selectQuery[*repos.Station](ctx, f.db, q)
}
