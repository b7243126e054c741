package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/domain"
)

type countingProvider struct{}

func (countingProvider) JulianDay(context.Context, Timestamp) (Epoch, error) { return 2451910, nil }
func (countingProvider) Longitude(context.Context, Epoch, domain.Body) (float64, error) {
	return 280.25, nil
}
func (countingProvider) SolarCrossing(context.Context, float64, Epoch) (Epoch, error) {
	return 2451822, nil
}
func (countingProvider) Components(context.Context, Epoch) (Timestamp, error) {
	return Timestamp{Year: 2000}, nil
}

func TestInstrumentObservesEveryCall(t *testing.T) {
	var observed int
	p := Instrument(countingProvider{}, func(time.Duration) { observed++ })

	ctx := context.Background()
	_, err := p.JulianDay(ctx, Timestamp{Year: 2000, Month: 1, Day: 1})
	require.NoError(t, err)
	_, err = p.Longitude(ctx, 2451910, domain.Sun)
	require.NoError(t, err)
	_, err = p.SolarCrossing(ctx, 192.25, 2451810)
	require.NoError(t, err)
	_, err = p.Components(ctx, 2451822)
	require.NoError(t, err)

	assert.Equal(t, 4, observed)
}

func TestInstrumentNilCallback(t *testing.T) {
	inner := countingProvider{}
	assert.Equal(t, Provider(inner), Instrument(inner, nil))
}
