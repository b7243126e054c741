package ephemeris

import (
	"context"
	"time"

	"bodygraph/internal/domain"
)

// instrumented wraps a Provider and reports every call's latency.
type instrumented struct {
	inner   Provider
	observe func(time.Duration)
}

// Instrument decorates a provider with a latency callback. A nil callback
// returns the provider unchanged.
func Instrument(p Provider, observe func(time.Duration)) Provider {
	if observe == nil {
		return p
	}
	return &instrumented{inner: p, observe: observe}
}

func (i *instrumented) JulianDay(ctx context.Context, wall Timestamp) (Epoch, error) {
	start := time.Now()
	defer func() { i.observe(time.Since(start)) }()
	return i.inner.JulianDay(ctx, wall)
}

func (i *instrumented) Longitude(ctx context.Context, at Epoch, body domain.Body) (float64, error) {
	start := time.Now()
	defer func() { i.observe(time.Since(start)) }()
	return i.inner.Longitude(ctx, at, body)
}

func (i *instrumented) SolarCrossing(ctx context.Context, targetLongitude float64, start Epoch) (Epoch, error) {
	t := time.Now()
	defer func() { i.observe(time.Since(t)) }()
	return i.inner.SolarCrossing(ctx, targetLongitude, start)
}

func (i *instrumented) Components(ctx context.Context, at Epoch) (Timestamp, error) {
	start := time.Now()
	defer func() { i.observe(time.Since(start)) }()
	return i.inner.Components(ctx, at)
}
