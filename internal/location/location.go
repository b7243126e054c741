// Package location resolves place names to coordinates and wall-clock
// timestamps to UTC offsets.
package location

import (
	"context"
	"fmt"
	"math"
	"time"

	"bodygraph/internal/ephemeris"
	pkgerrors "bodygraph/pkg/errors"
)

//go:generate mockgen -source=location.go -destination=mocks/mocks.go -package=mocks

// Location is one resolved place.
type Location struct {
	Place     string  `json:"place"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Resolver turns free-form place names into coordinates.
type Resolver interface {
	Geocode(ctx context.Context, place string) (Location, error)
}

// UTCOffsetHours computes the DST-aware offset of a wall-clock timestamp in
// the named IANA zone, in decimal hours (e.g. 5.75 for +05:45).
func UTCOffsetHours(wall ephemeris.Timestamp, zone string) (float64, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, "unknown timezone "+zone, err)
	}
	local := time.Date(wall.Year, time.Month(wall.Month), wall.Day, wall.Hour, wall.Minute, wall.Second, 0, loc)
	_, offsetSeconds := local.Zone()
	return float64(offsetSeconds) / 3600.0, nil
}

// TimezoneFor estimates the IANA zone of a coordinate. Without a boundary
// dataset this is the nautical estimate: one Etc/GMT zone per 15° of
// longitude. Etc zone signs are inverted per POSIX, so east of Greenwich
// maps to Etc/GMT-N. Callers with a known civil zone should pass it to
// UTCOffsetHours directly.
func TimezoneFor(_, lon float64) string {
	if lon < -180 || lon > 180 {
		return "Etc/UTC"
	}
	offset := int(math.Round(lon / 15))
	switch {
	case offset == 0:
		return "Etc/UTC"
	case offset > 0:
		return fmt.Sprintf("Etc/GMT-%d", offset)
	default:
		return fmt.Sprintf("Etc/GMT+%d", -offset)
	}
}

// Static is a fixed in-memory resolver for tests and air-gapped setups.
type Static struct {
	places map[string]Location
}

// NewStatic builds a resolver over a fixed place table.
func NewStatic(places map[string]Location) *Static {
	return &Static{places: places}
}

func (s *Static) Geocode(_ context.Context, place string) (Location, error) {
	if loc, ok := s.places[place]; ok {
		return loc, nil
	}
	return Location{}, pkgerrors.New(pkgerrors.CodeNotFound, "place not found: "+place)
}
