// Package scan computes readings for every step of a timestamp range, e.g.
// to trace how the transit field moves over a month.
package scan

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bodygraph/internal/chart"
	"bodygraph/internal/ephemeris"
	pkgerrors "bodygraph/pkg/errors"
)

// Unit is the step unit of a scan range.
type Unit string

const (
	UnitYears   Unit = "years"
	UnitMonths  Unit = "months"
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
)

// unitSeconds gives the nominal length of each unit for step counting.
// Years and months step with calendar arithmetic, the rest with fixed
// durations.
var unitSeconds = map[Unit]float64{
	UnitYears:   60 * 60 * 24 * 365.2425,
	UnitMonths:  60 * 60 * 24 * 365.25 / 12,
	UnitDays:    60 * 60 * 24,
	UnitHours:   60 * 60,
	UnitMinutes: 60,
}

// Range describes a stepped timestamp range. Steps walk backwards from End;
// seconds and timezone offsets are zeroed. Percentage trims the range for
// trial runs; zero means the full range.
type Range struct {
	Start      ephemeris.Timestamp `json:"start"`
	End        ephemeris.Timestamp `json:"end"`
	Unit       Unit                `json:"unit"`
	Interval   int                 `json:"interval"`
	Percentage float64             `json:"percentage,omitempty"`
}

// Timestamps expands a range into its step list, newest first.
func (r Range) Timestamps() ([]ephemeris.Timestamp, error) {
	seconds, ok := unitSeconds[r.Unit]
	if !ok {
		return nil, pkgerrors.Validation("unit", "must be one of years, months, days, hours, minutes")
	}
	if r.Interval < 1 {
		return nil, pkgerrors.Validation("interval", "must be at least 1")
	}
	pct := r.Percentage
	if pct == 0 {
		pct = 1
	}
	if pct < 0 || pct > 1 {
		return nil, pkgerrors.Validation("percentage", "must be between 0 and 1")
	}

	start := civil(r.Start)
	end := civil(r.End)
	span := int(end.Sub(start).Seconds() / seconds)
	count := int(float64(span) * pct / float64(r.Interval))
	if count < 1 {
		return nil, pkgerrors.Validation("range", "start must precede end by at least one interval")
	}

	list := make([]ephemeris.Timestamp, 0, count)
	for i := 0; i < count; i++ {
		var at time.Time
		switch r.Unit {
		case UnitYears:
			at = end.AddDate(-i*r.Interval, 0, 0)
		case UnitMonths:
			at = end.AddDate(0, -i*r.Interval, 0)
		default:
			at = end.Add(-time.Duration(i*r.Interval) * time.Duration(seconds) * time.Second)
		}
		list = append(list, ephemeris.Timestamp{
			Year:   at.Year(),
			Month:  int(at.Month()),
			Day:    at.Day(),
			Hour:   at.Hour(),
			Minute: at.Minute(),
		})
	}
	return list, nil
}

func civil(ts ephemeris.Timestamp) time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, ts.Second, 0, time.UTC)
}

// Result pairs one step of the range with its reading.
type Result struct {
	Timestamp ephemeris.Timestamp `json:"timestamp"`
	Reading   *chart.Reading      `json:"reading"`
}

// Report is the outcome of one scan job.
type Report struct {
	JobID   string   `json:"job_id"`
	Count   int      `json:"count"`
	Results []Result `json:"results"`
}

const defaultWorkers = 4

// Service fans a range out over a bounded worker pool.
type Service struct {
	charts  *chart.Service
	logger  *slog.Logger
	workers int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithWorkers bounds pool concurrency. Values below one keep the default.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New builds a scan service over a chart service.
func New(charts *chart.Service, opts ...Option) (*Service, error) {
	if charts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "scan: chart service is required")
	}
	s := &Service{
		charts:  charts,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run computes a full reading for every step of the range. The first
// failure cancels the remaining work and fails the job.
func (s *Service) Run(ctx context.Context, r Range) (*Report, error) {
	timestamps, err := r.Timestamps()
	if err != nil {
		return nil, err
	}

	jobID := uuid.NewString()
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	results := make([]Result, len(timestamps))
	for i, ts := range timestamps {
		i, ts := i, ts
		g.Go(func() error {
			reading, err := s.charts.Reading(ctx, ts)
			if err != nil {
				return err
			}
			results[i] = Result{Timestamp: ts, Reading: reading}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "scan failed",
			"job_id", jobID,
			"steps", len(timestamps),
			"error", err,
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "scan complete",
		"job_id", jobID,
		"steps", len(timestamps),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return &Report{JobID: jobID, Count: len(results), Results: results}, nil
}
