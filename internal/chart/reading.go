package chart

import (
	"context"

	"bodygraph/internal/attributes"
	"bodygraph/internal/domain"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/mechanics"
	"bodygraph/internal/tables"
	"bodygraph/internal/wheel"
)

// Definition is the split count with its published name.
type Definition struct {
	Splits int    `json:"splits"`
	Name   string `json:"name"`
}

// Reading is a fully derived chart: mechanics, classification and narrative
// attributes in one export-ready value.
type Reading struct {
	Chart          *Chart                    `json:"chart"`
	Channels       []mechanics.ActiveChannel `json:"channels"`
	DefinedCenters []domain.Center           `json:"defined_centers"`
	OpenCenters    []domain.Center           `json:"open_centers"`
	Type           domain.Type               `json:"type"`
	TypeDetails    domain.TypeDetails        `json:"type_details"`
	Authority      domain.Authority          `json:"authority"`
	Definition     Definition                `json:"definition"`
	Profile        attributes.Profile        `json:"profile"`
	Cross          attributes.Cross          `json:"cross"`
	Variables      attributes.Variables      `json:"variables"`
	ZodiacSign     string                    `json:"zodiac_sign"`
	Streams        []string                  `json:"streams,omitempty"`
}

// Compose derives the full reading from a computed chart. It is pure; all
// ephemeris work happened in Build.
func Compose(c *Chart) (*Reading, error) {
	analysis := mechanics.Analyze(c.Activations)

	profile, err := attributes.ProfileOf(c.Activations)
	if err != nil {
		return nil, err
	}
	cross, err := attributes.IncarnationCross(c.Activations)
	if err != nil {
		return nil, err
	}
	vars, err := attributes.VariablesOf(c.Activations)
	if err != nil {
		return nil, err
	}

	typ := analysis.EnergyType()
	details, _ := tables.TypeDetailsFor(typ)

	var streams []string
	for _, s := range mechanics.ActiveStreams(c.Activations) {
		streams = append(streams, s.Name)
	}

	sunP, _ := c.Activations.Activation(domain.Sun, domain.Personality)

	return &Reading{
		Chart:          c,
		Channels:       analysis.Channels,
		DefinedCenters: analysis.DefinedCenters(),
		OpenCenters:    analysis.OpenCenters(),
		Type:           typ,
		TypeDetails:    details,
		Authority:      analysis.InnerAuthority(),
		Definition:     Definition{Splits: analysis.DefinitionSplits(), Name: analysis.DefinitionName()},
		Profile:        profile,
		Cross:          cross,
		Variables:      vars,
		ZodiacSign:     wheel.ZodiacSign(sunP.Longitude),
		Streams:        streams,
	}, nil
}

// Reading builds the chart for a birth timestamp and composes its reading.
func (s *Service) Reading(ctx context.Context, birth ephemeris.Timestamp) (*Reading, error) {
	c, err := s.Build(ctx, birth)
	if err != nil {
		return nil, err
	}
	return Compose(c)
}
