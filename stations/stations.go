package stations

import (
	"context"
	"errors"
	"fmt"

	"github.com/juho05/wavedial/repos"
)

// Service manages the station directory: create, read, update, delete and
// search of station records together with their image references.
type Service struct {
	db repos.DB
}

func NewService(db repos.DB) *Service {
	return &Service{
		db: db,
	}
}

type CreateParams struct {
	Name        string
	Language    string
	Description string
	StreamURL   string
	// Image is the public path of an uploaded image, empty when the create
	// came without an upload.
	Image string
}

type UpdateParams struct {
	Name        string
	Language    string
	Description string
	StreamURL   string
	// Image replaces the stored reference only when set; otherwise the
	// stored reference survives the edit unchanged.
	Image repos.Optional[string]
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*repos.Station, error) {
	if params.Name == "" || params.StreamURL == "" {
		return nil, repos.NewError("create station", repos.ErrInvalidParams, errors.New("name and stream url must not be empty"))
	}
	station, err := s.db.Station().Create(ctx, repos.CreateStationParams{
		Name:        params.Name,
		Language:    params.Language,
		Description: params.Description,
		StreamURL:   params.StreamURL,
		Image:       params.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("create station: %w", err)
	}
	return station, nil
}

func (s *Service) Get(ctx context.Context, id string) (*repos.Station, error) {
	return s.db.Station().FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*repos.Station, error) {
	return s.db.Station().FindAll(ctx)
}

// Search matches query against name, description and language, ignoring
// case. An empty query returns the whole directory.
func (s *Service) Search(ctx context.Context, query string) ([]*repos.Station, error) {
	return s.db.Station().Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) error {
	if params.Name == "" || params.StreamURL == "" {
		return repos.NewError("update station", repos.ErrInvalidParams, errors.New("name and stream url must not be empty"))
	}
	err := s.db.Station().Update(ctx, id, repos.UpdateStationParams{
		Name:        params.Name,
		Language:    params.Language,
		Description: params.Description,
		StreamURL:   params.StreamURL,
		Image:       params.Image,
	})
	if err != nil {
		return fmt.Errorf("update station: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.Station().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete station: %w", err)
	}
	return nil
}
