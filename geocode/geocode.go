package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"
	"saferoute/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
// A missing key is a configuration absence, not a startup failure:
// callers get an error and fall back to coordinate-less behavior.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
		if clientErr != nil {
			log.Printf("Failed to create maps client: %v", clientErr)
		}
	})
	return mapsClient, clientErr
}

// LocatePlace forward-geocodes a place name or address into coordinates.
// Used when an incident report names a place but carries no lat/lng.
func LocatePlace(ctx context.Context, place string) (types.GeoPoint, error) {
	client, err := InitMapsClient()
	if err != nil {
		return types.GeoPoint{}, err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return types.GeoPoint{}, err
	}
	if len(results) == 0 {
		return types.GeoPoint{}, fmt.Errorf("no geocode results for %q", place)
	}

	loc := results[0].Geometry.Location
	return types.GeoPoint{
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Address: results[0].FormattedAddress,
	}, nil
}
