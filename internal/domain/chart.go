package domain

// Body identifies one of the 13 celestial bodies a chart is computed from.
type Body string

const (
	Sun       Body = "Sun"
	Earth     Body = "Earth"
	Moon      Body = "Moon"
	NorthNode Body = "North_Node"
	SouthNode Body = "South_Node"
	Mercury   Body = "Mercury"
	Venus     Body = "Venus"
	Mars      Body = "Mars"
	Jupiter   Body = "Jupiter"
	Saturn    Body = "Saturn"
	Uranus    Body = "Uranus"
	Neptune   Body = "Neptune"
	Pluto     Body = "Pluto"
)

// Bodies is the fixed listing order of a chart half. Earth is derived from the
// Sun and the South Node from the North Node, so both must come after their
// source body.
var Bodies = []Body{
	Sun, Earth, Moon, NorthNode, SouthNode,
	Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// EpochLabel tags an activation with the epoch it was computed at.
type EpochLabel string

const (
	// Personality is the birth epoch ("prs" in chart exports).
	Personality EpochLabel = "prs"
	// Design is the derived epoch where the Sun sits 88° of arc before its
	// birth position ("des" in chart exports).
	Design EpochLabel = "des"
)

// Center names one of the nine energy centers.
type Center string

const (
	Head        Center = "Head"
	Ajna        Center = "Ajna"
	Throat      Center = "Throat"
	GCenter     Center = "G_Center"
	Heart       Center = "Heart"
	SolarPlexus Center = "SolarPlexus"
	Spleen      Center = "Spleen"
	Sacral      Center = "Sacral"
	Root        Center = "Root"
)

// Centers lists all nine centers in bodygraph top-to-bottom order.
var Centers = []Center{Head, Ajna, Throat, GCenter, Heart, SolarPlexus, Spleen, Sacral, Root}

// GateActivation is one celestial body's placement at one epoch, fully mapped
// onto the gate wheel. Gate/Line/Color/Tone/Base are pure functions of
// Longitude; no two activations in a set share (Body, Label).
type GateActivation struct {
	Body      Body       `json:"body"`
	Label     EpochLabel `json:"label"`
	Longitude float64    `json:"longitude"`
	Gate      int        `json:"gate"`
	Line      int        `json:"line"`
	Color     int        `json:"color"`
	Tone      int        `json:"tone"`
	Base      int        `json:"base"`
}

// ActivationSet is the ordered activation list of one chart: 26 entries for a
// full chart (Personality half then Design half, each in Bodies order) or 13
// for a day-only chart. Lookups go through named fields, never positions.
type ActivationSet []GateActivation

// Activation returns the entry for a given body and epoch label.
func (s ActivationSet) Activation(body Body, label EpochLabel) (GateActivation, bool) {
	for _, a := range s {
		if a.Body == body && a.Label == label {
			return a, true
		}
	}
	return GateActivation{}, false
}

// OpenGates collects the distinct gate numbers opened anywhere in the set.
func (s ActivationSet) OpenGates() map[int]bool {
	open := make(map[int]bool, len(s))
	for _, a := range s {
		open[a.Gate] = true
	}
	return open
}

// GateList returns every gate in listing order, duplicates included.
func (s ActivationSet) GateList() []int {
	gates := make([]int, len(s))
	for i, a := range s {
		gates[i] = a.Gate
	}
	return gates
}

// Merge concatenates activation sets into a new one, e.g. to form a composite
// population. The inputs are not modified.
func Merge(sets ...ActivationSet) ActivationSet {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	merged := make(ActivationSet, 0, n)
	for _, s := range sets {
		merged = append(merged, s...)
	}
	return merged
}

// Type is the energy type classification.
type Type string

const (
	Generator            Type = "Generator"
	ManifestingGenerator Type = "Manifesting Generator"
	Projector            Type = "Projector"
	Manifestor           Type = "Manifestor"
	Reflector            Type = "Reflector"
)

// Authority is the inner authority classification, in hierarchy order.
type Authority string

const (
	AuthorityEmotional     Authority = "Emotional"
	AuthoritySacral        Authority = "Sacral"
	AuthoritySplenic       Authority = "Splenic"
	AuthorityEgoManifested Authority = "Ego (Manifested)"
	AuthorityEgoProjected  Authority = "Ego (Projected)"
	AuthoritySelfProjected Authority = "Self-Projected"
	AuthorityLunar         Authority = "Lunar"
	AuthorityOuter         Authority = "Outer/Mental"
)

// CrossCategory classifies an incarnation cross by its profile geometry.
type CrossCategory string

const (
	RightAngle    CrossCategory = "RAC"
	Juxtaposition CrossCategory = "JXP"
	LeftAngle     CrossCategory = "LAC"
)

// TypeDetails carries the descriptive attributes attached to every type.
type TypeDetails struct {
	Strategy  string `json:"strategy"`
	Signature string `json:"signature"`
	NotSelf   string `json:"not_self"`
	Aura      string `json:"aura"`
}
