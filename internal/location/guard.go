package location

import (
	"context"
	"io"
	"log/slog"
	"sync"

	pkgerrors "bodygraph/pkg/errors"
	"bodygraph/pkg/platform/circuit"
)

// defaultProbeEvery lets one request per this many through an open circuit
// so the breaker can observe recovery.
const defaultProbeEvery = 10

// Guarded wraps a resolver with a circuit breaker. Upstream failures trip
// the breaker; while it is open most lookups fail fast without touching the
// geocoder.
type Guarded struct {
	inner      Resolver
	breaker    *circuit.Breaker
	logger     *slog.Logger
	probeEvery int

	mu      sync.Mutex
	skipped int
}

// GuardedOption configures a Guarded resolver.
type GuardedOption func(*Guarded)

// WithGuardLogger attaches a structured logger.
func WithGuardLogger(l *slog.Logger) GuardedOption {
	return func(g *Guarded) { g.logger = l }
}

// WithProbeEvery sets how many fast failures pass between probes.
func WithProbeEvery(n int) GuardedOption {
	return func(g *Guarded) {
		if n > 0 {
			g.probeEvery = n
		}
	}
}

// NewGuarded wraps a resolver with the given breaker.
func NewGuarded(inner Resolver, breaker *circuit.Breaker, opts ...GuardedOption) *Guarded {
	g := &Guarded{
		inner:      inner,
		breaker:    breaker,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		probeEvery: defaultProbeEvery,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ Resolver = (*Guarded)(nil)

// shouldProbe admits one call per probeEvery while the circuit is open.
func (g *Guarded) shouldProbe() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.skipped++
	if g.skipped >= g.probeEvery {
		g.skipped = 0
		return true
	}
	return false
}

func (g *Guarded) Geocode(ctx context.Context, place string) (Location, error) {
	if g.breaker.IsOpen() && !g.shouldProbe() {
		return Location{}, pkgerrors.New(pkgerrors.CodeUpstream, "geocoder circuit open")
	}

	loc, err := g.inner.Geocode(ctx, place)
	switch {
	case err == nil:
		if _, change := g.breaker.RecordSuccess(); change.Closed {
			g.logger.InfoContext(ctx, "geocoder circuit closed", "breaker", g.breaker.Name())
		}
	case pkgerrors.HasCode(err, pkgerrors.CodeUpstream):
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "geocoder circuit opened", "breaker", g.breaker.Name())
		}
	}
	// Validation and not-found results say nothing about geocoder health.
	return loc, err
}
