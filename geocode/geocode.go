// Package geocode resolves the location-search box through the Google Maps
// Geocoding API when credentials are configured.
package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"

	"panpath-guardian/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	initErr    error
)

// initClient initializes and returns a singleton Google Maps client.
func initClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			initErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, initErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, initErr
}

// Configured reports whether the Maps integration can be used.
func Configured() bool {
	return os.Getenv("MAPS_CREDENTIALS") != ""
}

// Service adapts the Maps client to the gateway's Geocoder interface.
type Service struct{}

// NewService returns a geocoding service, or nil when unconfigured so the
// gateway degrades to its webhook path.
func NewService() *Service {
	if !Configured() {
		log.Println("Warning: MAPS_CREDENTIALS not set, location search will use the webhook fallback")
		return nil
	}
	return &Service{}
}

// Search geocodes a free-text query into candidate locations.
func (s *Service) Search(ctx context.Context, query string) ([]types.Location, error) {
	client, err := initClient()
	if err != nil {
		return nil, err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", query, err)
	}

	locations := make([]types.Location, 0, len(results))
	for _, r := range results {
		locations = append(locations, types.Location{
			Name: r.FormattedAddress,
			Lat:  r.Geometry.Location.Lat,
			Long: r.Geometry.Location.Lng,
		})
	}
	return locations, nil
}
