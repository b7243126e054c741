// Package chart builds full charts from birth data: it resolves the two
// epochs against the ephemeris, maps every body onto the wheel and assembles
// the derived reading.
package chart

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"bodygraph/internal/domain"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/wheel"
	pkgerrors "bodygraph/pkg/errors"
)

// designArc is the solar arc between the design epoch and birth.
const designArc = 88.0

// designSearchBackoff seeds the design crossing search this many days before
// birth. The Sun covers 88° in just under 90 days.
const designSearchBackoff = 100.0

// Chart is the raw computed chart: both resolved epochs and the 26 mapped
// activations, Personality half first.
type Chart struct {
	Birth       ephemeris.Timestamp  `json:"birth"`
	BirthEpoch  ephemeris.Epoch      `json:"birth_epoch"`
	DesignEpoch ephemeris.Epoch      `json:"design_epoch"`
	DesignUTC   ephemeris.Timestamp  `json:"design_utc"`
	Activations domain.ActivationSet `json:"activations"`
}

// Service computes charts against an ephemeris provider.
type Service struct {
	provider ephemeris.Provider
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New builds a chart service. The ephemeris provider is required.
func New(provider ephemeris.Provider, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, errors.New("ephemeris provider is required")
	}
	s := &Service{
		provider: provider,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Build validates the birth timestamp, resolves both epochs and maps all 26
// activations.
func (s *Service) Build(ctx context.Context, birth ephemeris.Timestamp) (*Chart, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	birthEpoch, err := s.provider.JulianDay(ctx, birth)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving birth epoch", err)
	}

	designEpoch, err := s.designEpoch(ctx, birthEpoch)
	if err != nil {
		return nil, err
	}

	personality, err := s.epochActivations(ctx, birthEpoch, domain.Personality)
	if err != nil {
		return nil, err
	}
	design, err := s.epochActivations(ctx, designEpoch, domain.Design)
	if err != nil {
		return nil, err
	}

	designUTC, err := s.provider.Components(ctx, designEpoch)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving design calendar date", err)
	}

	s.logger.DebugContext(ctx, "chart built",
		"birth_epoch", float64(birthEpoch),
		"design_epoch", float64(designEpoch),
	)

	return &Chart{
		Birth:       birth,
		BirthEpoch:  birthEpoch,
		DesignEpoch: designEpoch,
		DesignUTC:   designUTC,
		Activations: domain.Merge(personality, design),
	}, nil
}

// DayChart maps the single Personality half of a moment, used for transit
// overlays.
func (s *Service) DayChart(ctx context.Context, at ephemeris.Timestamp) (*Chart, error) {
	if err := at.Validate(); err != nil {
		return nil, err
	}
	epoch, err := s.provider.JulianDay(ctx, at)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving day epoch", err)
	}
	activations, err := s.epochActivations(ctx, epoch, domain.Personality)
	if err != nil {
		return nil, err
	}
	return &Chart{
		Birth:       at,
		BirthEpoch:  epoch,
		Activations: activations,
	}, nil
}

// designEpoch finds the moment the Sun stood 88° of arc before its birth
// position, searching forward from roughly a hundred days earlier.
func (s *Service) designEpoch(ctx context.Context, birthEpoch ephemeris.Epoch) (ephemeris.Epoch, error) {
	sunLon, err := s.provider.Longitude(ctx, birthEpoch, domain.Sun)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeUpstream, "reading birth sun longitude", err)
	}
	target := wheel.Normalize(sunLon - designArc)
	design, err := s.provider.SolarCrossing(ctx, target, birthEpoch-designSearchBackoff)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeUpstream, "searching design solar crossing", err)
	}
	return design, nil
}

// epochActivations maps all 13 bodies at one epoch. Earth and the South
// Node are derived from the Sun and the North Node, so those two never hit
// the provider.
func (s *Service) epochActivations(ctx context.Context, at ephemeris.Epoch, label domain.EpochLabel) (domain.ActivationSet, error) {
	longitudes := make(map[domain.Body]float64, len(domain.Bodies))
	for _, body := range domain.Bodies {
		switch body {
		case domain.Earth:
			longitudes[body] = wheel.Opposite(longitudes[domain.Sun])
		case domain.SouthNode:
			longitudes[body] = wheel.Opposite(longitudes[domain.NorthNode])
		default:
			lon, err := s.provider.Longitude(ctx, at, body)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, "reading "+string(body)+" longitude", err)
			}
			longitudes[body] = wheel.Normalize(lon)
		}
	}

	set := make(domain.ActivationSet, 0, len(domain.Bodies))
	for _, body := range domain.Bodies {
		pos := wheel.Map(longitudes[body])
		set = append(set, domain.GateActivation{
			Body:      body,
			Label:     label,
			Longitude: pos.Longitude,
			Gate:      pos.Gate,
			Line:      pos.Line,
			Color:     pos.Color,
			Tone:      pos.Tone,
			Base:      pos.Base,
		})
	}
	return set, nil
}

// SolarReturn finds the moment the Sun returns to its natal longitude,
// searching forward from January 1st of the birth year plus offset.
func (s *Service) SolarReturn(ctx context.Context, birth ephemeris.Timestamp, yearOffset int) (ephemeris.Epoch, ephemeris.Timestamp, error) {
	if err := birth.Validate(); err != nil {
		return 0, ephemeris.Timestamp{}, err
	}
	birthEpoch, err := s.provider.JulianDay(ctx, birth)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving birth epoch", err)
	}
	natalSun, err := s.provider.Longitude(ctx, birthEpoch, domain.Sun)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "reading natal sun longitude", err)
	}

	birthUTC, err := s.provider.Components(ctx, birthEpoch)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving birth calendar date", err)
	}
	yearStart := ephemeris.Timestamp{Year: birthUTC.Year + yearOffset, Month: 1, Day: 1}
	searchStart, err := s.provider.JulianDay(ctx, yearStart)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving search start epoch", err)
	}

	returnEpoch, err := s.provider.SolarCrossing(ctx, wheel.Normalize(natalSun), searchStart)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "searching solar return", err)
	}
	returnUTC, err := s.provider.Components(ctx, returnEpoch)
	if err != nil {
		return 0, ephemeris.Timestamp{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, "resolving solar return date", err)
	}
	return returnEpoch, returnUTC, nil
}
