package favorites

import (
	"context"
	"fmt"

	"github.com/juho05/wavedial/repos"
)

// Service manages the favourite relation between users and stations.
type Service struct {
	db repos.DB
}

func NewService(db repos.DB) *Service {
	return &Service{
		db: db,
	}
}

// Add marks the station as a favourite of the user. Adding the same station
// twice is a no-op. Returns repos.ErrNotFound when the station does not exist.
func (s *Service) Add(ctx context.Context, userID, stationID string) error {
	err := s.db.Favorite().Add(ctx, userID, stationID)
	if err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}
	return nil
}

// ListFor returns every station the user favourited.
func (s *Service) ListFor(ctx context.Context, userID string) ([]*repos.Station, error) {
	stations, err := s.db.Favorite().FindStationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	return stations, nil
}
