package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/chart"
	"bodygraph/internal/domain"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/ephemeris/ephemeristest"
	"bodygraph/internal/wheel"
	pkgerrors "bodygraph/pkg/errors"
)

func ts(year, month, day, hour, minute int) ephemeris.Timestamp {
	return ephemeris.Timestamp{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

func TestRangeTimestampsMinutes(t *testing.T) {
	r := Range{
		Start:    ts(2000, 12, 31, 23, 57),
		End:      ts(2000, 12, 31, 23, 59),
		Unit:     UnitMinutes,
		Interval: 1,
	}
	list, err := r.Timestamps()
	require.NoError(t, err)
	assert.Equal(t, []ephemeris.Timestamp{
		ts(2000, 12, 31, 23, 59),
		ts(2000, 12, 31, 23, 58),
	}, list)
}

func TestRangeTimestampsDaysWithInterval(t *testing.T) {
	r := Range{
		Start:    ts(2021, 1, 1, 0, 0),
		End:      ts(2021, 1, 11, 0, 0),
		Unit:     UnitDays,
		Interval: 2,
	}
	list, err := r.Timestamps()
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, ts(2021, 1, 11, 0, 0), list[0])
	assert.Equal(t, ts(2021, 1, 9, 0, 0), list[1])
	assert.Equal(t, ts(2021, 1, 3, 0, 0), list[4])
}

func TestRangeTimestampsMonthsCalendar(t *testing.T) {
	r := Range{
		Start:    ts(2020, 1, 15, 12, 0),
		End:      ts(2020, 4, 15, 12, 0),
		Unit:     UnitMonths,
		Interval: 1,
	}
	list, err := r.Timestamps()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ts(2020, 4, 15, 12, 0), list[0])
	assert.Equal(t, ts(2020, 3, 15, 12, 0), list[1])
}

func TestRangeTimestampsPercentage(t *testing.T) {
	r := Range{
		Start:      ts(2021, 1, 1, 0, 0),
		End:        ts(2021, 1, 11, 0, 0),
		Unit:       UnitDays,
		Interval:   1,
		Percentage: 0.5,
	}
	list, err := r.Timestamps()
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestRangeTimestampsValidation(t *testing.T) {
	cases := []struct {
		name  string
		r     Range
		field string
	}{
		{"bad unit", Range{Start: ts(2021, 1, 1, 0, 0), End: ts(2021, 1, 2, 0, 0), Unit: "fortnights", Interval: 1}, "unit"},
		{"bad interval", Range{Start: ts(2021, 1, 1, 0, 0), End: ts(2021, 1, 2, 0, 0), Unit: UnitDays}, "interval"},
		{"bad percentage", Range{Start: ts(2021, 1, 1, 0, 0), End: ts(2021, 1, 2, 0, 0), Unit: UnitDays, Interval: 1, Percentage: 2}, "percentage"},
		{"inverted range", Range{Start: ts(2021, 1, 2, 0, 0), End: ts(2021, 1, 1, 0, 0), Unit: UnitDays, Interval: 1}, "range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.r.Timestamps()
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
		})
	}
}

// scanFixture maps every step of a two-minute range onto one canned epoch
// with every queried body parked on the same longitude.
func scanFixture(t *testing.T) *ephemeristest.Fixture {
	t.Helper()

	const birthEpoch = ephemeris.Epoch(2451910.0)
	const designEpoch = ephemeris.Epoch(2451822.0)

	sunLon, _ := wheel.GateLineLongitude(17, 5)
	target := wheel.Normalize(sunLon - 88)

	f := ephemeristest.New()
	f.SetEpoch(ts(2000, 12, 31, 23, 59), birthEpoch)
	f.SetEpoch(ts(2000, 12, 31, 23, 58), birthEpoch)
	f.AddCrossing(target, designEpoch)
	f.SetEpoch(ts(2000, 10, 4, 12, 0), designEpoch)
	for _, body := range domain.Bodies {
		if body == domain.Earth || body == domain.SouthNode {
			continue
		}
		f.SetPosition(birthEpoch, body, sunLon)
		f.SetPosition(designEpoch, body, target)
	}
	f.SetPosition(designEpoch, domain.Sun, target)
	return f
}

func TestServiceRun(t *testing.T) {
	charts, err := chart.New(scanFixture(t))
	require.NoError(t, err)
	svc, err := New(charts, WithWorkers(2))
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), Range{
		Start:    ts(2000, 12, 31, 23, 57),
		End:      ts(2000, 12, 31, 23, 59),
		Unit:     UnitMinutes,
		Interval: 1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.JobID)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Results, 2)
	assert.Equal(t, ts(2000, 12, 31, 23, 59), report.Results[0].Timestamp)
	assert.Equal(t, ts(2000, 12, 31, 23, 58), report.Results[1].Timestamp)
	for _, res := range report.Results {
		require.NotNil(t, res.Reading)
		assert.Len(t, res.Reading.Chart.Activations, 26)
	}
}

func TestServiceRunUpstreamFailure(t *testing.T) {
	charts, err := chart.New(ephemeristest.New())
	require.NoError(t, err)
	svc, err := New(charts)
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), Range{
		Start:    ts(2000, 12, 31, 23, 57),
		End:      ts(2000, 12, 31, 23, 59),
		Unit:     UnitMinutes,
		Interval: 1,
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUpstream))
}

func TestServiceRunRejectsBadRange(t *testing.T) {
	charts, err := chart.New(ephemeristest.New())
	require.NoError(t, err)
	svc, err := New(charts)
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), Range{Unit: UnitDays, Interval: 1})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestNewRequiresChartService(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
