package repos

import (
	"context"
	"time"
)

// models

type Station struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Language    string    `db:"language"`
	Description string    `db:"description"`
	StreamURL   string    `db:"stream_url"`
	Image       string    `db:"image"`
	Created     time.Time `db:"created"`
	Updated     time.Time `db:"updated"`
}

// params

type CreateStationParams struct {
	Name        string
	Language    string
	Description string
	StreamURL   string
	// Image is the public path of the uploaded station image.
	// Empty when no upload accompanied the create.
	Image string
}

type UpdateStationParams struct {
	Name        string
	Language    string
	Description string
	StreamURL   string
	// Image replaces the stored image reference only when it has a value.
	// Without a value the stored reference is kept verbatim.
	Image Optional[string]
}

type StationRepository interface {
	// Create creates a new station.
	Create(ctx context.Context, params CreateStationParams) (*Station, error)
	// FindByID returns the station with the provided id.
	// Returns ErrNotFound if no station was found.
	FindByID(ctx context.Context, id string) (*Station, error)
	// FindAll returns all stations in store order.
	FindAll(ctx context.Context) ([]*Station, error)
	// Search returns all stations whose name, description or language
	// contains query, ignoring case. An empty query matches every station.
	Search(ctx context.Context, query string) ([]*Station, error)
	// Update replaces the scalar fields of an existing station.
	// If no station with the provided id is found, ErrNotFound will be returned.
	Update(ctx context.Context, id string, params UpdateStationParams) error
	// Delete removes an existing station.
	// If no station with the provided id is found, ErrNotFound will be returned.
	Delete(ctx context.Context, id string) error
}
