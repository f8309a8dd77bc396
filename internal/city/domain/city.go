package domain

import "context"

// StorageKey is the fixed key the manually or automatically accepted
// city is persisted under, as a plain string.
const StorageKey = "user_selected_city"

// Coordinates is a device geolocation fix supplied by the client
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Source identifies how the active city was resolved
type Source string

const (
	SourcePersisted   Source = "persisted"
	SourceGeolocation Source = "geolocation"
	SourceManual      Source = "manual"
	SourceNone        Source = "none"
)

// Resolution is the outcome of a city resolution attempt. When
// ManualRequired is set, no city was accepted and the caller must
// present the available cities for manual selection; Message carries
// the user-facing reason.
type Resolution struct {
	City            string   `json:"city,omitempty"`
	Source          Source   `json:"source"`
	ManualRequired  bool     `json:"manualRequired"`
	Message         string   `json:"message,omitempty"`
	AvailableCities []string `json:"availableCities,omitempty"`
}

// PreferenceRepository defines the contract for active city persistence
type PreferenceRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, city string) error
	Clear(ctx context.Context) error
}

// ReverseGeocoder resolves coordinates to a city-like name
type ReverseGeocoder interface {
	CityAt(ctx context.Context, coords Coordinates) (string, error)
}
