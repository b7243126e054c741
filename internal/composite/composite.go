// Package composite builds connection charts: two people merged into one
// bodygraph, or a natal chart overlaid with the current transit field.
package composite

import (
	"sort"

	"bodygraph/internal/domain"
	"bodygraph/internal/mechanics"
)

// PairReport describes what two merged charts switch on beyond what the
// first person already carries alone.
type PairReport struct {
	ID      string `json:"id"`
	OtherID string `json:"other_person"`

	// NewChannels exist only in the merged chart, carried by neither
	// person alone.
	NewChannels []mechanics.ActiveChannel `json:"new_channels"`
	// DuplicatedChannels are active in both individual charts.
	DuplicatedChannels []mechanics.ActiveChannel `json:"duplicated_channels"`
	// NewCenters are defined in the merged chart but not for ID alone.
	NewCenters       []domain.Center `json:"new_centers"`
	CompositeCenters []domain.Center `json:"composite_centers"`
	CenterCount      int             `json:"center_count"`
}

// Pair merges two activation sets and reports the channels and centers the
// connection adds over what id carries alone.
func Pair(id, other string, idSet, otherSet domain.ActivationSet) PairReport {
	merged := mechanics.Analyze(domain.Merge(idSet, otherSet))
	own := mechanics.Analyze(idSet)
	theirs := mechanics.Analyze(otherSet)

	either := channelKeys(own.Channels, theirs.Channels)
	var newChannels []mechanics.ActiveChannel
	for _, ch := range merged.Channels {
		if !either[ch.Key] {
			newChannels = append(newChannels, ch)
		}
	}

	otherKeys := channelKeys(theirs.Channels)
	var duplicated []mechanics.ActiveChannel
	for _, ch := range own.Channels {
		if otherKeys[ch.Key] {
			duplicated = append(duplicated, ch)
		}
	}

	var newCenters []domain.Center
	for _, c := range merged.DefinedCenters() {
		if !own.Centers[c] {
			newCenters = append(newCenters, c)
		}
	}

	compositeCenters := merged.DefinedCenters()
	return PairReport{
		ID:                 id,
		OtherID:            other,
		NewChannels:        newChannels,
		DuplicatedChannels: duplicated,
		NewCenters:         newCenters,
		CompositeCenters:   compositeCenters,
		CenterCount:        len(compositeCenters),
	}
}

// Combinations runs Pair over every unordered two-person combination, in
// sorted key order so the output is stable.
func Combinations(persons map[string]domain.ActivationSet) []PairReport {
	ids := make([]string, 0, len(persons))
	for id := range persons {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var reports []PairReport
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			reports = append(reports, Pair(ids[i], ids[j], persons[ids[i]], persons[ids[j]]))
		}
	}
	return reports
}

// TransitReport is the natal chart overlaid with a day chart. The baseline
// for "new" is the natal chart alone; the transit half never contributes a
// Design epoch.
type TransitReport struct {
	Type      domain.Type      `json:"composite_type"`
	Authority domain.Authority `json:"composite_authority"`

	Channels    []mechanics.ActiveChannel `json:"channels"`
	Centers     []domain.Center           `json:"defined_centers"`
	NewChannels []mechanics.ActiveChannel `json:"new_defined_channels"`
	NewCenters  []domain.Center           `json:"new_defined_centers"`

	TotalDefinedCenters int                  `json:"total_defined_centers"`
	Splits              int                  `json:"definition_splits"`
	Definition          string               `json:"definition"`
	TransitActivations  domain.ActivationSet `json:"raw_transit_gates"`
}

// Transit overlays a Personality-only day chart on a full natal chart.
func Transit(natal, day domain.ActivationSet) TransitReport {
	merged := mechanics.Analyze(domain.Merge(natal, day))
	baseline := mechanics.Analyze(natal)

	natalKeys := channelKeys(baseline.Channels)
	var newChannels []mechanics.ActiveChannel
	for _, ch := range merged.Channels {
		if !natalKeys[ch.Key] {
			newChannels = append(newChannels, ch)
		}
	}

	var newCenters []domain.Center
	for _, c := range merged.DefinedCenters() {
		if !baseline.Centers[c] {
			newCenters = append(newCenters, c)
		}
	}

	centers := merged.DefinedCenters()
	return TransitReport{
		Type:                merged.EnergyType(),
		Authority:           merged.InnerAuthority(),
		Channels:            merged.Channels,
		Centers:             centers,
		NewChannels:         newChannels,
		NewCenters:          newCenters,
		TotalDefinedCenters: len(centers),
		Splits:              merged.DefinitionSplits(),
		Definition:          merged.DefinitionName(),
		TransitActivations:  day,
	}
}

func channelKeys(lists ...[]mechanics.ActiveChannel) map[string]bool {
	keys := make(map[string]bool)
	for _, list := range lists {
		for _, ch := range list {
			keys[ch.Key] = true
		}
	}
	return keys
}
