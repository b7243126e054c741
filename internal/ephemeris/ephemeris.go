// Package ephemeris defines the port to the planetary ephemeris. The real
// binding lives outside this module; everything here computes against the
// Provider interface.
package ephemeris

//go:generate mockgen -source=ephemeris.go -destination=mocks/mocks.go -package=mocks Provider

import (
	"context"

	"bodygraph/internal/domain"
	pkgerrors "bodygraph/pkg/errors"
)

// Epoch is a moment in time expressed as a Julian day in universal time.
type Epoch float64

// Timestamp is a wall-clock birth time with its UTC offset in hours.
type Timestamp struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Day      int     `json:"day"`
	Hour     int     `json:"hour"`
	Minute   int     `json:"minute"`
	Second   int     `json:"second"`
	TZOffset float64 `json:"tz_offset"`
}

// Validate rejects obviously malformed timestamps before any ephemeris call
// is made. Bounds follow the calendar fields only; the UTC offset may be
// negative.
func (t Timestamp) Validate() error {
	switch {
	case t.Month < 0 || t.Day < 0 || t.Hour < 0 || t.Minute < 0 || t.Second < 0:
		return pkgerrors.Validation("timestamp", "calendar fields must not be negative")
	case t.Month > 12:
		return pkgerrors.Validation("month", "month exceeds 12")
	case t.Day > 31:
		return pkgerrors.Validation("day", "day exceeds 31")
	case t.Hour > 24:
		return pkgerrors.Validation("hour", "hour exceeds 24")
	case t.Minute > 60:
		return pkgerrors.Validation("minute", "minute exceeds 60")
	case t.Second > 60:
		return pkgerrors.Validation("second", "second exceeds 60")
	}
	return nil
}

// Provider is the ephemeris port. Longitudes are tropical ecliptic degrees
// in [0, 360). Implementations must be safe for concurrent use.
type Provider interface {
	// JulianDay converts a wall-clock timestamp to an epoch, applying the
	// timestamp's UTC offset.
	JulianDay(ctx context.Context, wall Timestamp) (Epoch, error)

	// Longitude returns the ecliptic longitude of a body at an epoch. Only
	// bodies with real ephemeris entries are queried; Earth and the South
	// Node are derived by the caller.
	Longitude(ctx context.Context, at Epoch, body domain.Body) (float64, error)

	// SolarCrossing returns the first epoch after start at which the Sun
	// crosses the target longitude.
	SolarCrossing(ctx context.Context, targetLongitude float64, start Epoch) (Epoch, error)

	// Components converts an epoch back to UTC calendar components. The
	// returned timestamp carries a zero UTC offset.
	Components(ctx context.Context, at Epoch) (Timestamp, error)
}
