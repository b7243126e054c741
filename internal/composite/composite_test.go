package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/domain"
)

func activations(label domain.EpochLabel, gates ...int) domain.ActivationSet {
	set := make(domain.ActivationSet, 0, len(gates))
	for _, g := range gates {
		set = append(set, domain.GateActivation{Body: domain.Sun, Label: label, Gate: g, Line: 1})
	}
	return set
}

func TestPair(t *testing.T) {
	a := activations(domain.Personality, 17, 20, 34)
	b := activations(domain.Personality, 62, 20, 34)

	report := Pair("a", "b", a, b)

	assert.Equal(t, "a", report.ID)
	assert.Equal(t, "b", report.OtherID)

	require.Len(t, report.NewChannels, 1)
	assert.Equal(t, "17-62", report.NewChannels[0].Key)

	require.Len(t, report.DuplicatedChannels, 1)
	assert.Equal(t, "20-34", report.DuplicatedChannels[0].Key)

	assert.Equal(t, []domain.Center{domain.Ajna}, report.NewCenters)
	assert.Equal(t, []domain.Center{domain.Ajna, domain.Throat, domain.Sacral}, report.CompositeCenters)
	assert.Equal(t, 3, report.CenterCount)
}

func TestPairNothingNew(t *testing.T) {
	a := activations(domain.Personality, 20, 34)
	b := activations(domain.Personality, 20, 34)

	report := Pair("a", "b", a, b)

	assert.Empty(t, report.NewChannels)
	require.Len(t, report.DuplicatedChannels, 1)
	assert.Empty(t, report.NewCenters)
	assert.Equal(t, 2, report.CenterCount)
}

func TestPairReflectorBase(t *testing.T) {
	a := activations(domain.Personality, 17)
	b := activations(domain.Design, 62)

	report := Pair("a", "b", a, b)

	require.Len(t, report.NewChannels, 1)
	assert.Equal(t, "17-62", report.NewChannels[0].Key)
	assert.Empty(t, report.DuplicatedChannels)
	assert.Equal(t, []domain.Center{domain.Ajna, domain.Throat}, report.NewCenters)
}

func TestCombinations(t *testing.T) {
	persons := map[string]domain.ActivationSet{
		"carol": activations(domain.Personality, 17),
		"alice": activations(domain.Personality, 62),
		"bob":   activations(domain.Personality, 20, 34),
	}

	reports := Combinations(persons)

	require.Len(t, reports, 3)
	assert.Equal(t, "alice", reports[0].ID)
	assert.Equal(t, "bob", reports[0].OtherID)
	assert.Equal(t, "alice", reports[1].ID)
	assert.Equal(t, "carol", reports[1].OtherID)
	assert.Equal(t, "bob", reports[2].ID)
	assert.Equal(t, "carol", reports[2].OtherID)

	require.Len(t, reports[1].NewChannels, 1)
	assert.Equal(t, "17-62", reports[1].NewChannels[0].Key)
}

func TestTransit(t *testing.T) {
	natal := activations(domain.Personality, 17, 62)
	day := activations(domain.Personality, 20, 34)

	report := Transit(natal, day)

	assert.Equal(t, domain.ManifestingGenerator, report.Type)
	assert.Equal(t, domain.AuthoritySacral, report.Authority)

	require.Len(t, report.NewChannels, 1)
	assert.Equal(t, "20-34", report.NewChannels[0].Key)
	assert.Equal(t, []domain.Center{domain.Sacral}, report.NewCenters)
	assert.Equal(t, 3, report.TotalDefinedCenters)
	assert.Equal(t, 1, report.Splits)
	assert.Equal(t, "Single Definition", report.Definition)
	assert.Equal(t, day, report.TransitActivations)
}

func TestTransitQuietDay(t *testing.T) {
	natal := activations(domain.Personality, 17, 62)

	report := Transit(natal, nil)

	assert.Empty(t, report.NewChannels)
	assert.Empty(t, report.NewCenters)
	assert.Equal(t, domain.Projector, report.Type)
	assert.Equal(t, 2, report.TotalDefinedCenters)
}
