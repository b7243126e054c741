// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// the chart services and translate domain errors; no mechanics live here.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"bodygraph/internal/chart"
	"bodygraph/internal/composite"
	"bodygraph/internal/domain"
	"bodygraph/internal/enrichment"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/location"
	"bodygraph/internal/mechanics"
	"bodygraph/internal/penta"
	"bodygraph/internal/platform/metrics"
	"bodygraph/internal/scan"
	pkgerrors "bodygraph/pkg/errors"
	"bodygraph/pkg/platform/httputil"
	"bodygraph/pkg/requestcontext"
)

// Handler wires the chart endpoints to the domain services.
type Handler struct {
	charts   *chart.Service
	scans    *scan.Service
	resolver location.Resolver
	store    enrichment.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// HandlerOption configures optional handler dependencies.
type HandlerOption func(*Handler)

// WithResolver enables place-name resolution on chart requests.
func WithResolver(r location.Resolver) HandlerOption {
	return func(h *Handler) { h.resolver = r }
}

// WithEnrichment enables gate and line label lookup on chart requests.
func WithEnrichment(s enrichment.Store) HandlerOption {
	return func(h *Handler) { h.store = s }
}

// New constructs the chart handler with its dependencies.
func New(charts *chart.Service, scans *scan.Service, logger *slog.Logger, m *metrics.Metrics, opts ...HandlerOption) *Handler {
	h := &Handler{
		charts:  charts,
		scans:   scans,
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the chart endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/charts", h.HandleChart)
	r.Post("/charts/composite", h.HandleComposite)
	r.Post("/charts/transit", h.HandleTransit)
	r.Post("/charts/penta", h.HandlePenta)
	r.Post("/charts/solar-return", h.HandleSolarReturn)
	r.Post("/charts/scan", h.HandleScan)
}

// PersonPayload is one person's birth data. The moment is given either with
// an explicit UTC offset or with a place name and IANA timezone; a resolved
// timezone overrides the offset.
type PersonPayload struct {
	Timestamp ephemeris.Timestamp `json:"timestamp"`
	Place     string              `json:"place,omitempty"`
	Timezone  string              `json:"timezone,omitempty"`
}

// resolvePerson turns a payload into a computable timestamp, geocoding the
// place and deriving the UTC offset when a timezone is named.
func (h *Handler) resolvePerson(ctx context.Context, p PersonPayload) (ephemeris.Timestamp, *location.Location, error) {
	ts := p.Timestamp

	var loc *location.Location
	if p.Place != "" {
		if h.resolver == nil {
			return ts, nil, pkgerrors.Validation("place", "place resolution is not configured")
		}
		resolved, err := h.resolver.Geocode(ctx, p.Place)
		if err != nil {
			return ts, nil, err
		}
		loc = &resolved
	}

	zone := p.Timezone
	if zone == "" && loc != nil {
		zone = location.TimezoneFor(loc.Latitude, loc.Longitude)
	}
	if zone != "" {
		offset, err := location.UTCOffsetHours(ts, zone)
		if err != nil {
			return ts, nil, err
		}
		ts.TZOffset = offset
	}
	return ts, loc, nil
}

// ChartRequest asks for a single chart. DayOnly skips the design half for
// transit-style snapshots; Enrich attaches gate and line labels.
type ChartRequest struct {
	PersonPayload
	DayOnly bool `json:"day_only,omitempty"`
	Enrich  bool `json:"enrich,omitempty"`
}

// EnrichedActivation pairs one activation with its looked-up labels.
type EnrichedActivation struct {
	Body  domain.Body           `json:"body"`
	Label domain.EpochLabel     `json:"label"`
	Gate  int                   `json:"gate"`
	Line  int                   `json:"line"`
	Info  enrichment.Enrichment `json:"info"`
}

// ChartResponse is the full reading with optional location and labels.
type ChartResponse struct {
	Reading    *chart.Reading       `json:"reading"`
	Location   *location.Location   `json:"location,omitempty"`
	Enrichment []EnrichedActivation `json:"enrichment,omitempty"`
}

// DayChartResponse is the reduced shape for day-only requests.
type DayChartResponse struct {
	Chart          *chart.Chart              `json:"chart"`
	Channels       []mechanics.ActiveChannel `json:"channels"`
	DefinedCenters []domain.Center           `json:"defined_centers"`
	Location       *location.Location        `json:"location,omitempty"`
}

// HandleChart handles POST /v1/charts.
func (h *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req ChartRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ts, loc, err := h.resolvePerson(ctx, req.PersonPayload)
	if err != nil {
		h.logger.WarnContext(ctx, "chart request rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if req.DayOnly {
		c, err := h.charts.DayChart(ctx, ts)
		if err != nil {
			h.logger.ErrorContext(ctx, "day chart failed",
				"request_id", requestID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		analysis := mechanics.Analyze(c.Activations)
		h.metrics.ObserveChartComputed("day")
		h.logger.InfoContext(ctx, "day chart computed",
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		httputil.WriteJSON(w, http.StatusOK, DayChartResponse{
			Chart:          c,
			Channels:       analysis.Channels,
			DefinedCenters: analysis.DefinedCenters(),
			Location:       loc,
		})
		return
	}

	reading, err := h.charts.Reading(ctx, ts)
	if err != nil {
		h.logger.ErrorContext(ctx, "chart build failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := ChartResponse{Reading: reading, Location: loc}
	if req.Enrich {
		if h.store == nil {
			httputil.WriteError(w, pkgerrors.Validation("enrich", "enrichment store is not configured"))
			return
		}
		resp.Enrichment, err = h.enrichActivations(ctx, reading.Chart.Activations)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	h.metrics.ObserveChartComputed("single")
	h.logger.InfoContext(ctx, "chart computed",
		"request_id", requestID,
		"type", reading.Type,
		"authority", reading.Authority,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) enrichActivations(ctx context.Context, set domain.ActivationSet) ([]EnrichedActivation, error) {
	out := make([]EnrichedActivation, 0, len(set))
	for _, act := range set {
		info, err := enrichment.Enrich(ctx, h.store, act)
		if err != nil {
			return nil, err
		}
		out = append(out, EnrichedActivation{
			Body:  act.Body,
			Label: act.Label,
			Gate:  act.Gate,
			Line:  act.Line,
			Info:  info,
		})
	}
	return out, nil
}

// CompositeRequest names two or more persons whose charts are merged
// pairwise. Any participant failure fails the whole call.
type CompositeRequest struct {
	Persons map[string]PersonPayload `json:"persons"`
}

// CompositeResponse lists every pair's merge report.
type CompositeResponse struct {
	Pairs []composite.PairReport `json:"pairs"`
}

// buildGroup computes every participant's natal activations, keyed by the
// caller's person keys. Errors carry the failing key.
func (h *Handler) buildGroup(ctx context.Context, persons map[string]PersonPayload) (map[string]domain.ActivationSet, error) {
	keys := make([]string, 0, len(persons))
	for k := range persons {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make(map[string]domain.ActivationSet, len(persons))
	for _, k := range keys {
		ts, _, err := h.resolvePerson(ctx, persons[k])
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeOf(err), "resolving person "+k, err)
		}
		c, err := h.charts.Build(ctx, ts)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeOf(err), "building chart for person "+k, err)
		}
		sets[k] = c.Activations
	}
	return sets, nil
}

// HandleComposite handles POST /v1/charts/composite.
func (h *Handler) HandleComposite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req CompositeRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if len(req.Persons) < 2 {
		httputil.WriteError(w, pkgerrors.Validation("persons", "at least two persons are required"))
		return
	}

	sets, err := h.buildGroup(ctx, req.Persons)
	if err != nil {
		h.logger.ErrorContext(ctx, "composite build failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveChartComputed("composite")
	h.logger.InfoContext(ctx, "composite computed",
		"request_id", requestID,
		"persons", len(req.Persons),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, CompositeResponse{Pairs: composite.Combinations(sets)})
}

// TransitRequest overlays a transit moment on a natal chart.
type TransitRequest struct {
	Natal   PersonPayload `json:"natal"`
	Transit PersonPayload `json:"transit"`
}

// HandleTransit handles POST /v1/charts/transit.
func (h *Handler) HandleTransit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req TransitRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	natalTS, _, err := h.resolvePerson(ctx, req.Natal)
	if err != nil {
		httputil.WriteError(w, pkgerrors.Wrap(pkgerrors.CodeOf(err), "resolving natal person", err))
		return
	}
	transitTS, _, err := h.resolvePerson(ctx, req.Transit)
	if err != nil {
		httputil.WriteError(w, pkgerrors.Wrap(pkgerrors.CodeOf(err), "resolving transit moment", err))
		return
	}

	natal, err := h.charts.Build(ctx, natalTS)
	if err != nil {
		h.logger.ErrorContext(ctx, "transit natal chart failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	day, err := h.charts.DayChart(ctx, transitTS)
	if err != nil {
		h.logger.ErrorContext(ctx, "transit day chart failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	report := composite.Transit(natal.Activations, day.Activations)
	h.metrics.ObserveChartComputed("transit")
	h.logger.InfoContext(ctx, "transit computed",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, report)
}

// Penta analysis is defined for small groups only.
const (
	pentaMinPersons = 2
	pentaMaxPersons = 5
)

// PentaRequest names a small group for penta analysis.
type PentaRequest struct {
	Persons   map[string]PersonPayload `json:"persons"`
	GroupType string                   `json:"group_type,omitempty"`
}

// HandlePenta handles POST /v1/charts/penta.
func (h *Handler) HandlePenta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req PentaRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if len(req.Persons) < pentaMinPersons || len(req.Persons) > pentaMaxPersons {
		httputil.WriteError(w, pkgerrors.Validation("persons", "group must have between 2 and 5 persons"))
		return
	}
	if req.GroupType == "" {
		req.GroupType = penta.GroupTypeFamily
	}

	sets, err := h.buildGroup(ctx, req.Persons)
	if err != nil {
		h.logger.ErrorContext(ctx, "penta build failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	participants := make(map[string][]domain.GateActivation, len(sets))
	for k, set := range sets {
		participants[k] = set
	}

	h.metrics.ObserveChartComputed("penta")
	h.logger.InfoContext(ctx, "penta computed",
		"request_id", requestID,
		"persons", len(req.Persons),
		"group_type", req.GroupType,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, penta.Analyze(participants, req.GroupType))
}

// SolarReturnRequest asks when the Sun returns to its natal longitude.
type SolarReturnRequest struct {
	PersonPayload
	YearOffset int `json:"year_offset"`
}

// SolarReturnResponse is the resolved return instant.
type SolarReturnResponse struct {
	Epoch float64             `json:"epoch"`
	UTC   ephemeris.Timestamp `json:"utc"`
}

// HandleSolarReturn handles POST /v1/charts/solar-return.
func (h *Handler) HandleSolarReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var req SolarReturnRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ts, _, err := h.resolvePerson(ctx, req.PersonPayload)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	epoch, utc, err := h.charts.SolarReturn(ctx, ts, req.YearOffset)
	if err != nil {
		h.logger.ErrorContext(ctx, "solar return failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveChartComputed("solar_return")
	h.logger.InfoContext(ctx, "solar return computed",
		"request_id", requestID,
		"year_offset", req.YearOffset,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, SolarReturnResponse{Epoch: float64(epoch), UTC: utc})
}

// HandleScan handles POST /v1/charts/scan.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var rng scan.Range
	if !httputil.Decode(w, r, &rng) {
		return
	}

	report, err := h.scans.Run(ctx, rng)
	if err != nil {
		h.logger.ErrorContext(ctx, "scan failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveChartComputed("scan")
	h.metrics.ScanSteps.Observe(float64(report.Count))
	h.logger.InfoContext(ctx, "scan completed",
		"request_id", requestID,
		"job_id", report.JobID,
		"steps", report.Count,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, report)
}
