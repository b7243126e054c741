package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "bodygraph/pkg/errors"
	"bodygraph/pkg/platform/circuit"
)

// flakyResolver fails with an upstream error until healed.
type flakyResolver struct {
	calls  int
	healed bool
}

func (f *flakyResolver) Geocode(_ context.Context, place string) (Location, error) {
	f.calls++
	if !f.healed {
		return Location{}, pkgerrors.New(pkgerrors.CodeUpstream, "geocoder down")
	}
	return Location{Place: place, Latitude: 52.52, Longitude: 13.405}, nil
}

func TestGuardedTripsAfterThreshold(t *testing.T) {
	inner := &flakyResolver{}
	g := NewGuarded(inner, circuit.New("geocoder", circuit.WithFailureThreshold(2)), WithProbeEvery(100))

	_, err := g.Geocode(context.Background(), "Berlin")
	require.Error(t, err)
	_, err = g.Geocode(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls)

	// Circuit is open now; further calls fail fast.
	_, err = g.Geocode(context.Background(), "Berlin")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUpstream))
	assert.Equal(t, 2, inner.calls)
}

func TestGuardedProbesAndRecovers(t *testing.T) {
	inner := &flakyResolver{}
	breaker := circuit.New("geocoder",
		circuit.WithFailureThreshold(1),
		circuit.WithSuccessThreshold(1),
	)
	g := NewGuarded(inner, breaker, WithProbeEvery(2))

	_, err := g.Geocode(context.Background(), "Berlin")
	require.Error(t, err)
	require.True(t, breaker.IsOpen())

	inner.healed = true

	// First call while open is skipped, second is the probe.
	_, err = g.Geocode(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)

	loc, err := g.Geocode(context.Background(), "Berlin")
	require.NoError(t, err)
	assert.InDelta(t, 52.52, loc.Latitude, 1e-9)
	assert.False(t, breaker.IsOpen())

	// Closed again; calls flow straight through.
	_, err = g.Geocode(context.Background(), "Berlin")
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestGuardedIgnoresNotFound(t *testing.T) {
	inner := NewStatic(map[string]Location{})
	g := NewGuarded(inner, circuit.New("geocoder", circuit.WithFailureThreshold(1)))

	_, err := g.Geocode(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	assert.False(t, g.breaker.IsOpen())
}
