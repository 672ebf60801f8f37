// Package geocode resolves free-text locations to coordinates and writes them back to
// the records that lack them.
package geocode

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyLocation = errors.New("please enter a location first")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder reports found=false when the service answered but knows no such place.
type Geocoder interface {
	Lookup(ctx context.Context, location, county string) (coords Coordinates, found bool, err error)
}

func Prompt(location, county string) string {
	return fmt.Sprintf(
		`Find the exact latitude and longitude coordinates for this location: "%s, %s, UK". `+
			`This should be a specific place like a town hall, church, park, or street address. `+
			`Return only a JSON object with "latitude" and "longitude" as decimal numbers. `+
			`If the location cannot be found, return null for both values.`,
		location, county,
	)
}
