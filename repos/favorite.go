package repos

import "context"

type FavoriteRepository interface {
	// Add records that the user favourited the station. Adding an already
	// favourited station is a no-op.
	// Returns ErrNotFound if the station or the user does not exist.
	Add(ctx context.Context, userID, stationID string) error
	// FindStationsByUser returns all stations the user favourited, in store order.
	FindStationsByUser(ctx context.Context, userID string) ([]*Station, error)
}
