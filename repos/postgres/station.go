package postgres

import (
	"context"

	"github.com/juho05/wavedial"
	"github.com/juho05/wavedial/repos"
	"github.com/nullism/bqb"
)

type stationRepository struct {
	db executer
}

func (s stationRepository) Create(ctx context.Context, params repos.CreateStationParams) (*repos.Station, error) {
	q := bqb.New(`INSERT INTO stations (id,name,language,description,stream_url,image,created,updated)
	VALUES (?,?,?,?,?,?,NOW(),NOW()) RETURNING *`, wavedial.GenIDStation(), params.Name, params.Language,
		params.Description, params.StreamURL, params.Image)
	return getQuery[*repos.Station](ctx, s.db, q)
}

func (s stationRepository) FindByID(ctx context.Context, id string) (*repos.Station, error) {
	return getQuery[*repos.Station](ctx, s.db, bqb.New("SELECT * FROM stations WHERE id = ?", id))
}

func (s stationRepository) FindAll(ctx context.Context) ([]*repos.Station, error) {
	return selectQuery[*repos.Station](ctx, s.db, bqb.New("SELECT * FROM stations"))
}

func (s stationRepository) Search(ctx context.Context, query string) ([]*repos.Station, error) {
	pattern := "%" + query + "%"
	q := bqb.New("SELECT * FROM stations WHERE name ILIKE ? OR description ILIKE ? OR language ILIKE ?",
		pattern, pattern, pattern)
	return selectQuery[*repos.Station](ctx, s.db, q)
}

func (s stationRepository) Update(ctx context.Context, id string, params repos.UpdateStationParams) error {
	// the image column is only part of the statement when a new upload
	// replaced the reference, keeping retention a single atomic update
	updateList, _ := genUpdateList(map[string]repos.OptionalGetter{
		"name":        repos.NewOptionalFull(params.Name),
		"language":    repos.NewOptionalFull(params.Language),
		"description": repos.NewOptionalFull(params.Description),
		"stream_url":  repos.NewOptionalFull(params.StreamURL),
		"image":       params.Image,
	}, true)
	q := bqb.New("UPDATE stations SET ? WHERE id = ?", updateList, id)
	return executeQueryExpectAffectedRows(ctx, s.db, q)
}

func (s stationRepository) Delete(ctx context.Context, id string) error {
	return executeQueryExpectAffectedRows(ctx, s.db, bqb.New("DELETE FROM stations WHERE id = ?", id))
}
