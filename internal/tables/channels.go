package tables

import (
	"fmt"

	"bodygraph/internal/domain"
)

// Channel is one of the 36 fixed gate-to-gate connections of the bodygraph.
// Gates[0] sits in Centers[0] and Gates[1] in Centers[1].
type Channel struct {
	Gates   [2]int
	Centers [2]domain.Center
	Name    string
	Keynote string
	Circuit string
}

// Channels lists all 36 channels. Centers follow the bodygraph wiring; the
// channel is considered active when both gates carry an activation.
var Channels = []Channel{
	{Gates: [2]int{64, 47}, Centers: [2]domain.Center{domain.Head, domain.Ajna}, Name: "Abstraction", Keynote: "D. of mental activity and clarity", Circuit: "Sense"},
	{Gates: [2]int{61, 24}, Centers: [2]domain.Center{domain.Head, domain.Ajna}, Name: "Awareness", Keynote: "D. of a thinker", Circuit: "Knowledge"},
	{Gates: [2]int{63, 4}, Centers: [2]domain.Center{domain.Head, domain.Ajna}, Name: "Logic", Keynote: "D. of mental muse mixed with doubt", Circuit: "Realize"},
	{Gates: [2]int{17, 62}, Centers: [2]domain.Center{domain.Ajna, domain.Throat}, Name: "Acceptance", Keynote: "D. of an organizational being", Circuit: "Realize"},
	{Gates: [2]int{43, 23}, Centers: [2]domain.Center{domain.Ajna, domain.Throat}, Name: "Structuring", Keynote: "D. of individuality", Circuit: "Knowledge"},
	{Gates: [2]int{11, 56}, Centers: [2]domain.Center{domain.Ajna, domain.Throat}, Name: "Curiosity", Keynote: "D. of a searcher", Circuit: "Sense"},
	{Gates: [2]int{16, 48}, Centers: [2]domain.Center{domain.Throat, domain.Spleen}, Name: "The Wave Length", Keynote: "D. of a talent", Circuit: "Realize"},
	{Gates: [2]int{20, 57}, Centers: [2]domain.Center{domain.Throat, domain.Spleen}, Name: "The Brain Wave", Keynote: "D. of penetrating awareness", Circuit: "Knowledge"},
	{Gates: [2]int{20, 34}, Centers: [2]domain.Center{domain.Throat, domain.Sacral}, Name: "Charisma", Keynote: "D. where thoughts must become deeds", Circuit: "Integration"},
	{Gates: [2]int{20, 10}, Centers: [2]domain.Center{domain.Throat, domain.GCenter}, Name: "Awakening", Keynote: "D. of commitment to higher principles", Circuit: "Integration"},
	{Gates: [2]int{31, 7}, Centers: [2]domain.Center{domain.Throat, domain.GCenter}, Name: "The Alpha", Keynote: "For 'good' or 'bad', a d. of leadership", Circuit: "Realize"},
	{Gates: [2]int{8, 1}, Centers: [2]domain.Center{domain.Throat, domain.GCenter}, Name: "Inspiration", Keynote: "The creative role model", Circuit: "Knowledge"},
	{Gates: [2]int{33, 13}, Centers: [2]domain.Center{domain.Throat, domain.GCenter}, Name: "The Prodigal", Keynote: "The d. of witness", Circuit: "Sense"},
	{Gates: [2]int{45, 21}, Centers: [2]domain.Center{domain.Throat, domain.Heart}, Name: "Money", Keynote: "A d. of a materialist", Circuit: "Ego"},
	{Gates: [2]int{35, 36}, Centers: [2]domain.Center{domain.Throat, domain.SolarPlexus}, Name: "Transitoriness", Keynote: "A d. of a 'Jack of all Trades'", Circuit: "Sense"},
	{Gates: [2]int{12, 22}, Centers: [2]domain.Center{domain.Throat, domain.SolarPlexus}, Name: "Openness", Keynote: "A d. of a social being", Circuit: "Knowledge"},
	{Gates: [2]int{32, 54}, Centers: [2]domain.Center{domain.Spleen, domain.Root}, Name: "Transformation", Keynote: "D. of being driven", Circuit: "Ego"},
	{Gates: [2]int{28, 38}, Centers: [2]domain.Center{domain.Spleen, domain.Root}, Name: "Struggle", Keynote: "D. of stubbornness", Circuit: "Knowledge"},
	{Gates: [2]int{57, 34}, Centers: [2]domain.Center{domain.Spleen, domain.Sacral}, Name: "Power", Keynote: "A d. of an archetype", Circuit: "Integration"},
	{Gates: [2]int{50, 27}, Centers: [2]domain.Center{domain.Spleen, domain.Sacral}, Name: "Preservation", Keynote: "A d. of custodianship", Circuit: "Protect"},
	{Gates: [2]int{18, 58}, Centers: [2]domain.Center{domain.Spleen, domain.Root}, Name: "Judgment", Keynote: "D. of insatiability", Circuit: "Realize"},
	{Gates: [2]int{10, 34}, Centers: [2]domain.Center{domain.GCenter, domain.Sacral}, Name: "Exploration", Keynote: "A d. of following one's convictions", Circuit: "Integration"},
	{Gates: [2]int{15, 5}, Centers: [2]domain.Center{domain.GCenter, domain.Sacral}, Name: "Rhythm", Keynote: "A d. of being in the flow", Circuit: "Realize"},
	{Gates: [2]int{2, 14}, Centers: [2]domain.Center{domain.GCenter, domain.Sacral}, Name: "The Beat", Keynote: "A d. of being the keeper of keys", Circuit: "Knowledge"},
	{Gates: [2]int{46, 29}, Centers: [2]domain.Center{domain.GCenter, domain.Sacral}, Name: "Discovery", Keynote: "A d. of succeeding where others fail", Circuit: "Sense"},
	{Gates: [2]int{10, 57}, Centers: [2]domain.Center{domain.GCenter, domain.Spleen}, Name: "Perfected Form", Keynote: "A d. of survival", Circuit: "Integration"},
	{Gates: [2]int{25, 51}, Centers: [2]domain.Center{domain.GCenter, domain.Heart}, Name: "Initiation", Keynote: "A d. of needing to be first", Circuit: "Centre"},
	{Gates: [2]int{59, 6}, Centers: [2]domain.Center{domain.Sacral, domain.SolarPlexus}, Name: "Mating", Keynote: "A d. focused on reproduction", Circuit: "Protect"},
	{Gates: [2]int{42, 53}, Centers: [2]domain.Center{domain.Sacral, domain.Root}, Name: "Maturation", Keynote: "A d. of balanced development, cyclic", Circuit: "Sense"},
	{Gates: [2]int{3, 60}, Centers: [2]domain.Center{domain.Sacral, domain.Root}, Name: "Mutation", Keynote: "Energy which fluctuates and initiates, pulse", Circuit: "Knowledge"},
	{Gates: [2]int{9, 52}, Centers: [2]domain.Center{domain.Sacral, domain.Root}, Name: "Concentration", Keynote: "A d. of determination, focused", Circuit: "Realize"},
	{Gates: [2]int{26, 44}, Centers: [2]domain.Center{domain.Heart, domain.Spleen}, Name: "Surrender", Keynote: "A d. of a transmitter", Circuit: "Ego"},
	{Gates: [2]int{40, 37}, Centers: [2]domain.Center{domain.Heart, domain.SolarPlexus}, Name: "Community", Keynote: "A d. of being part, seeking a whole", Circuit: "Ego"},
	{Gates: [2]int{49, 19}, Centers: [2]domain.Center{domain.SolarPlexus, domain.Root}, Name: "Synthesis", Keynote: "A d. of being sensitive", Circuit: "Ego"},
	{Gates: [2]int{55, 39}, Centers: [2]domain.Center{domain.SolarPlexus, domain.Root}, Name: "Emoting", Keynote: "A d. of moodiness", Circuit: "Knowledge"},
	{Gates: [2]int{30, 41}, Centers: [2]domain.Center{domain.SolarPlexus, domain.Root}, Name: "Recognition", Keynote: "A d. of focused energy", Circuit: "Sense"},
}

// circuitGroups assigns every circuit to its circuit group.
var circuitGroups = map[string]string{
	"Knowledge":   "Individual",
	"Centre":      "Individual",
	"Realize":     "Collective",
	"Sense":       "Collective",
	"Ego":         "Tribal",
	"Protect":     "Tribal",
	"Integration": "Integration",
}

// CircuitGroup returns the group a circuit belongs to.
func CircuitGroup(circuit string) string {
	return circuitGroups[circuit]
}

type gatePair struct{ lo, hi int }

func pairOf(a, b int) gatePair {
	if a > b {
		a, b = b, a
	}
	return gatePair{a, b}
}

var channelByPair = func() map[gatePair]Channel {
	m := make(map[gatePair]Channel, len(Channels))
	for _, ch := range Channels {
		m[pairOf(ch.Gates[0], ch.Gates[1])] = ch
	}
	return m
}()

var channelsByGate = func() map[int][]Channel {
	m := make(map[int][]Channel)
	for _, ch := range Channels {
		m[ch.Gates[0]] = append(m[ch.Gates[0]], ch)
		m[ch.Gates[1]] = append(m[ch.Gates[1]], ch)
	}
	return m
}()

var centerByGate = func() map[int]domain.Center {
	m := make(map[int]domain.Center, SectorsPerWheel)
	for _, ch := range Channels {
		m[ch.Gates[0]] = ch.Centers[0]
		m[ch.Gates[1]] = ch.Centers[1]
	}
	return m
}()

// ChannelBetween returns the channel joining two gates regardless of order.
func ChannelBetween(a, b int) (Channel, bool) {
	ch, ok := channelByPair[pairOf(a, b)]
	return ch, ok
}

// ChannelsForGate returns every channel one of whose gates is the given gate.
// A gate partners up to three other gates (gates 10, 20, 34 and 57).
func ChannelsForGate(gate int) []Channel {
	return channelsByGate[gate]
}

// CenterOf returns the center a gate sits in.
func CenterOf(gate int) (domain.Center, bool) {
	c, ok := centerByGate[gate]
	return c, ok
}

// PairKey renders the canonical sorted "lo-hi" key for a gate pair, used to
// deduplicate channel listings.
func PairKey(a, b int) string {
	p := pairOf(a, b)
	return fmt.Sprintf("%d-%d", p.lo, p.hi)
}
