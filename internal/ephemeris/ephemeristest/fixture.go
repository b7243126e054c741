// Package ephemeristest provides a deterministic in-memory Provider for
// tests. Positions are declared per epoch and body; solar crossings are
// canned.
package ephemeristest

import (
	"context"
	"math"

	"bodygraph/internal/domain"
	"bodygraph/internal/ephemeris"
	pkgerrors "bodygraph/pkg/errors"
)

// Crossing cans one solar crossing result. Target longitudes are matched
// with a small tolerance.
type Crossing struct {
	Target float64
	Result ephemeris.Epoch
}

// Fixture is a Provider backed by literal data. The zero value is usable;
// missing entries surface as upstream errors, which keeps tests honest about
// what they declared.
type Fixture struct {
	JulianDays map[ephemeris.Timestamp]ephemeris.Epoch
	Positions  map[ephemeris.Epoch]map[domain.Body]float64
	Crossings  []Crossing
	Calendar   map[ephemeris.Epoch]ephemeris.Timestamp
}

var _ ephemeris.Provider = (*Fixture)(nil)

// New returns an empty fixture ready to be populated.
func New() *Fixture {
	return &Fixture{
		JulianDays: make(map[ephemeris.Timestamp]ephemeris.Epoch),
		Positions:  make(map[ephemeris.Epoch]map[domain.Body]float64),
		Calendar:   make(map[ephemeris.Epoch]ephemeris.Timestamp),
	}
}

// SetPosition declares a body's longitude at an epoch.
func (f *Fixture) SetPosition(at ephemeris.Epoch, body domain.Body, longitude float64) *Fixture {
	if f.Positions == nil {
		f.Positions = make(map[ephemeris.Epoch]map[domain.Body]float64)
	}
	if f.Positions[at] == nil {
		f.Positions[at] = make(map[domain.Body]float64)
	}
	f.Positions[at][body] = longitude
	return f
}

// SetEpoch declares the epoch a wall timestamp converts to.
func (f *Fixture) SetEpoch(wall ephemeris.Timestamp, at ephemeris.Epoch) *Fixture {
	if f.JulianDays == nil {
		f.JulianDays = make(map[ephemeris.Timestamp]ephemeris.Epoch)
	}
	f.JulianDays[wall] = at
	if f.Calendar == nil {
		f.Calendar = make(map[ephemeris.Epoch]ephemeris.Timestamp)
	}
	f.Calendar[at] = wall
	return f
}

// AddCrossing cans a solar crossing result for a target longitude.
func (f *Fixture) AddCrossing(target float64, result ephemeris.Epoch) *Fixture {
	f.Crossings = append(f.Crossings, Crossing{Target: target, Result: result})
	return f
}

func (f *Fixture) JulianDay(_ context.Context, wall ephemeris.Timestamp) (ephemeris.Epoch, error) {
	at, ok := f.JulianDays[wall]
	if !ok {
		return 0, pkgerrors.Newf(pkgerrors.CodeUpstream, "fixture has no epoch for %+v", wall)
	}
	return at, nil
}

func (f *Fixture) Longitude(_ context.Context, at ephemeris.Epoch, body domain.Body) (float64, error) {
	lon, ok := f.Positions[at][body]
	if !ok {
		return 0, pkgerrors.Newf(pkgerrors.CodeUpstream, "fixture has no %s position at epoch %v", body, at)
	}
	return lon, nil
}

func (f *Fixture) SolarCrossing(_ context.Context, targetLongitude float64, start ephemeris.Epoch) (ephemeris.Epoch, error) {
	for _, c := range f.Crossings {
		if math.Abs(c.Target-targetLongitude) < 1e-6 && c.Result >= start {
			return c.Result, nil
		}
	}
	return 0, pkgerrors.Newf(pkgerrors.CodeUpstream, "fixture has no crossing for longitude %v after %v", targetLongitude, start)
}

func (f *Fixture) Components(_ context.Context, at ephemeris.Epoch) (ephemeris.Timestamp, error) {
	wall, ok := f.Calendar[at]
	if !ok {
		return ephemeris.Timestamp{}, pkgerrors.Newf(pkgerrors.CodeUpstream, "fixture has no calendar entry for epoch %v", at)
	}
	wall.TZOffset = 0
	return wall, nil
}
