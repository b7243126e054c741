package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/chart"
	"bodygraph/internal/composite"
	"bodygraph/internal/domain"
	"bodygraph/internal/enrichment"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/ephemeris/ephemeristest"
	"bodygraph/internal/location"
	"bodygraph/internal/platform/metrics"
	"bodygraph/internal/platform/middleware"
	"bodygraph/internal/scan"
	"bodygraph/internal/wheel"
	"bodygraph/pkg/testutil"
)

// Prometheus collectors register globally, so the test binary shares one set.
var testMetrics = metrics.New()

func ts(year, month, day, hour, minute int) ephemeris.Timestamp {
	return ephemeris.Timestamp{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

const (
	birthEpoch  = ephemeris.Epoch(2451910.0)
	designEpoch = ephemeris.Epoch(2451822.0)
	returnEpoch = ephemeris.Epoch(2452275.5)
)

// fixture cans two wall minutes onto one birth epoch with every queried body
// parked on gate 17 line 5, plus the design crossing and a solar return.
func fixture(t *testing.T) *ephemeristest.Fixture {
	t.Helper()

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

	f.SetEpoch(ts(2001, 1, 1, 0, 0), birthEpoch+1)
	f.AddCrossing(wheel.Normalize(sunLon), returnEpoch)
	f.SetEpoch(ts(2001, 12, 31, 18, 30), returnEpoch)
	return f
}

func newHandler(t *testing.T, opts ...HandlerOption) *Handler {
	t.Helper()

	charts, err := chart.New(fixture(t))
	require.NoError(t, err)
	scans, err := scan.New(charts)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(charts, scans, logger, testMetrics, opts...)
}

func post(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/", body))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestHandleChart(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ChartResponse](t, w)
	require.NotNil(t, resp.Reading)
	assert.Len(t, resp.Reading.Chart.Activations, 26)
	assert.NotEmpty(t, resp.Reading.Type)
	assert.NotEmpty(t, resp.Reading.Authority)
	assert.NotEmpty(t, resp.Reading.Definition.Name)
	assert.Nil(t, resp.Location)
	assert.Empty(t, resp.Enrichment)
}

func TestHandleChartDayOnly(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		DayOnly:       true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[DayChartResponse](t, w)
	require.NotNil(t, resp.Chart)
	assert.Len(t, resp.Chart.Activations, 13)
}

func TestHandleChartMalformedBody(t *testing.T) {
	h := newHandler(t)

	w := testutil.DoRequest(http.HandlerFunc(h.HandleChart), testutil.NewRequestWithBody(t, http.MethodPost, "/", "{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChartUnknownMoment(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{Timestamp: ts(1999, 1, 1, 0, 0)},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleChartWithPlace(t *testing.T) {
	resolver := location.NewStatic(map[string]location.Location{
		"berlin, germany": {Place: "Berlin, Germany", Latitude: 52.52, Longitude: 13.405},
	})
	h := newHandler(t, WithResolver(resolver))

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{
			Timestamp: ts(2000, 12, 31, 23, 59),
			Place:     "berlin, germany",
			Timezone:  "Etc/UTC",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ChartResponse](t, w)
	require.NotNil(t, resp.Location)
	assert.InDelta(t, 52.52, resp.Location.Latitude, 1e-9)
}

func TestHandleChartPlaceWithoutResolver(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{
			Timestamp: ts(2000, 12, 31, 23, 59),
			Place:     "Berlin, Germany",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChartEnrich(t *testing.T) {
	store := enrichment.NewMemoryStore()
	store.SeedGate(17, enrichment.GateInfo{Name: "Following", Summary: "Opinions"})
	h := newHandler(t, WithEnrichment(store))

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		Enrich:        true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ChartResponse](t, w)
	require.Len(t, resp.Enrichment, 26)
	var found bool
	for _, e := range resp.Enrichment {
		if e.Gate == 17 && e.Info.GateName == "Following" {
			found = true
		}
	}
	assert.True(t, found, "expected an enriched gate 17 activation")
}

func TestHandleChartEnrichNotConfigured(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleChart, ChartRequest{
		PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		Enrich:        true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleComposite(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleComposite, CompositeRequest{
		Persons: map[string]PersonPayload{
			"a": {Timestamp: ts(2000, 12, 31, 23, 59)},
			"b": {Timestamp: ts(2000, 12, 31, 23, 58)},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[CompositeResponse](t, w)
	require.Len(t, resp.Pairs, 1)
	pair := resp.Pairs[0]
	assert.Equal(t, "a", pair.ID)
	assert.Equal(t, "b", pair.OtherID)
	assert.Empty(t, pair.NewChannels)
	assert.Equal(t, len(pair.CompositeCenters), pair.CenterCount)
}

func TestHandleCompositeRequiresTwo(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleComposite, CompositeRequest{
		Persons: map[string]PersonPayload{"a": {Timestamp: ts(2000, 12, 31, 23, 59)}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompositeIsAtomic(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleComposite, CompositeRequest{
		Persons: map[string]PersonPayload{
			"a": {Timestamp: ts(2000, 12, 31, 23, 59)},
			"b": {Timestamp: ephemeris.Timestamp{Year: 2000, Month: 13, Day: 1}},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]string](t, w)
	assert.Contains(t, body["error_description"], "person b")
}

func TestHandleTransit(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleTransit, TransitRequest{
		Natal:   PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		Transit: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 58)},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[composite.TransitReport](t, w)
	assert.NotEmpty(t, resp.Type)
	assert.Len(t, resp.TransitActivations, 13)
}

func TestHandlePenta(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandlePenta, PentaRequest{
		Persons: map[string]PersonPayload{
			"a": {Timestamp: ts(2000, 12, 31, 23, 59)},
			"b": {Timestamp: ts(2000, 12, 31, 23, 58)},
		},
		GroupType: "business",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meta struct {
			GroupSize   int    `json:"group_size"`
			PentaFormed bool   `json:"penta_formed"`
			PentaType   string `json:"penta_type"`
		} `json:"meta"`
		Hiring struct {
			Insight string `json:"insight"`
		} `json:"hiring_logic"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Meta.GroupSize)
	assert.False(t, resp.Meta.PentaFormed)
	assert.Equal(t, "Business", resp.Meta.PentaType)
	assert.Contains(t, resp.Hiring.Insight, "Backbone")
}

func TestHandlePentaGroupSizeBounds(t *testing.T) {
	h := newHandler(t)

	persons := map[string]PersonPayload{"a": {Timestamp: ts(2000, 12, 31, 23, 59)}}
	w := post(t, h.HandlePenta, PentaRequest{Persons: persons})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSolarReturn(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleSolarReturn, SolarReturnRequest{
		PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		YearOffset:    1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[SolarReturnResponse](t, w)
	assert.InDelta(t, float64(returnEpoch), resp.Epoch, 1e-9)
	assert.Equal(t, 2001, resp.UTC.Year)
}

func TestHandleScan(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleScan, scan.Range{
		Start:    ts(2000, 12, 31, 23, 57),
		End:      ts(2000, 12, 31, 23, 59),
		Unit:     scan.UnitMinutes,
		Interval: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[scan.Report](t, w)
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Results, 2)
}

func TestHandleScanRejectsBadRange(t *testing.T) {
	h := newHandler(t)

	w := post(t, h.HandleScan, scan.Range{Unit: "fortnights", Interval: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != "good" {
		return nil, assert.AnError
	}
	return &middleware.JWTClaims{Subject: "api-client-1"}, nil
}

func TestRouter(t *testing.T) {
	h := newHandler(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(h, stubValidator{}, logger)

	t.Run("health is open", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics is open", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("v1 requires a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/charts", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("v1 rejects a bad token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/charts", nil)
		r.Header.Set("Authorization", "Bearer bad")
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("v1 admits a valid token", func(t *testing.T) {
		r := testutil.NewJSONRequest(t, http.MethodPost, "/v1/charts", ChartRequest{
			PersonPayload: PersonPayload{Timestamp: ts(2000, 12, 31, 23, 59)},
		})
		r.Header.Set("Authorization", "Bearer good")
		w := testutil.DoRequest(router, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}
