package tables

import "bodygraph/internal/domain"

// ProfilePair is a (personality line, design line) tuple taken from the Sun
// activations of both epochs.
type ProfilePair [2]int

// crossCategoryByProfile classifies an incarnation cross by profile geometry.
// Pairs absent here are looked up reversed before giving up.
var crossCategoryByProfile = map[ProfilePair]domain.CrossCategory{
	{1, 3}: domain.RightAngle,
	{1, 4}: domain.RightAngle,
	{2, 4}: domain.RightAngle,
	{2, 5}: domain.RightAngle,
	{3, 5}: domain.RightAngle,
	{3, 6}: domain.RightAngle,
	{4, 6}: domain.RightAngle,
	{4, 1}: domain.Juxtaposition,
	{5, 1}: domain.LeftAngle,
	{5, 2}: domain.LeftAngle,
	{6, 2}: domain.LeftAngle,
	{6, 3}: domain.LeftAngle,
}

// profileNames maps a profile pair to its published name. Keys match
// crossCategoryByProfile exactly.
var profileNames = map[ProfilePair]string{
	{1, 3}: "1/3: Investigator Martyr",
	{1, 4}: "1/4: Investigator Opportunist",
	{2, 4}: "2/4: Hermit Opportunist",
	{2, 5}: "2/5: Hermit Heretic",
	{3, 5}: "3/5: Martyr Heretic",
	{3, 6}: "3/6: Martyr Role Model",
	{4, 6}: "4/6: Opportunist Role Model",
	{4, 1}: "4/1: Opportunist Investigator",
	{5, 1}: "5/1: Heretic Investigator",
	{5, 2}: "5/2: Heretic Hermit",
	{6, 2}: "6/2: Role Model Hermit",
	{6, 3}: "6/3: Role Model Martyr",
}

// ProfileLookup resolves a profile pair to its name and cross category. When
// the pair as given is not a recognized profile, the reversed pair is used;
// reversed is true in that case.
func ProfileLookup(personalityLine, designLine int) (name string, cat domain.CrossCategory, reversed bool, ok bool) {
	p := ProfilePair{personalityLine, designLine}
	if cat, found := crossCategoryByProfile[p]; found {
		return profileNames[p], cat, false, true
	}
	p = ProfilePair{designLine, personalityLine}
	if cat, found := crossCategoryByProfile[p]; found {
		return profileNames[p], cat, true, true
	}
	return "", "", false, false
}

// CrossName returns the published incarnation cross name for the personality
// Sun gate and cross category.
func CrossName(personalitySunGate int, cat domain.CrossCategory) (string, bool) {
	byCat, ok := crossNames[personalitySunGate]
	if !ok {
		return "", false
	}
	name, ok := byCat[cat]
	return name, ok
}

// crossNames holds all 192 published cross names keyed by personality Sun
// gate, grouped by the quarter the gate opens.
var crossNames = map[int]map[domain.CrossCategory]string{
	// Quarter of Initiation
	13: {domain.RightAngle: "The Right Angle Cross of the Sphinx (1)", domain.Juxtaposition: "The Juxtaposition Cross of Listening", domain.LeftAngle: "The Left Angle Cross of Masks (1)"},
	49: {domain.RightAngle: "The Right Angle Cross of Explanation (1)", domain.Juxtaposition: "The Juxtaposition Cross of Principles", domain.LeftAngle: "The Left Angle Cross of Revolution (1)"},
	30: {domain.RightAngle: "The Right Angle Cross of Contagion (1)", domain.Juxtaposition: "The Juxtaposition Cross of Fates", domain.LeftAngle: "The Left Angle Cross of Industry (1)"},
	55: {domain.RightAngle: "The Right Angle Cross of the Sleeping Phoenix (1)", domain.Juxtaposition: "The Juxtaposition Cross of Moods", domain.LeftAngle: "The Left Angle Cross of Spirit (1)"},
	37: {domain.RightAngle: "The Right Angle Cross of Planning (1)", domain.Juxtaposition: "The Juxtaposition Cross of Bargains", domain.LeftAngle: "The Left Angle Cross of Migration (1)"},
	63: {domain.RightAngle: "The Right Angle Cross of Consciousness (1)", domain.Juxtaposition: "The Juxtaposition Cross of Doubts", domain.LeftAngle: "The Left Angle Cross of Dominion (1)"},
	22: {domain.RightAngle: "The Right Angle Cross of Rulership (1)", domain.Juxtaposition: "The Juxtaposition Cross of Grace", domain.LeftAngle: "The Left Angle Cross of Informing (1)"},
	36: {domain.RightAngle: "The Right Angle Cross of the Eden (1)", domain.Juxtaposition: "The Juxtaposition Cross of Crisis", domain.LeftAngle: "The Left Angle Cross of the Plane (1)"},
	25: {domain.RightAngle: "The Right Angle Cross of the Vessel of Love (1)", domain.Juxtaposition: "The Juxtaposition Cross of Innocence", domain.LeftAngle: "The Left Angle Cross of Healing (1)"},
	17: {domain.RightAngle: "The Right Angle Cross of Service (1)", domain.Juxtaposition: "The Juxtaposition Cross of Opinions", domain.LeftAngle: "The Left Angle Cross of Upheaval (1)"},
	21: {domain.RightAngle: "The Right Angle Cross of Tension (1)", domain.Juxtaposition: "The Juxtaposition Cross of Control", domain.LeftAngle: "The Left Angle Cross of Endeavor (1)"},
	51: {domain.RightAngle: "The Right Angle Cross of Penetration (1)", domain.Juxtaposition: "The Juxtaposition Cross of Shock", domain.LeftAngle: "The Left Angle Cross of the Clarion (1)"},
	42: {domain.RightAngle: "The Right Angle Cross of the Maya (1)", domain.Juxtaposition: "The Juxtaposition Cross of Completion", domain.LeftAngle: "The Left Angle Cross of Limitation (1)"},
	3:  {domain.RightAngle: "The Right Angle Cross of Laws (1)", domain.Juxtaposition: "The Juxtaposition Cross of Mutation", domain.LeftAngle: "The Left Angle Cross of Wishes (1)"},
	27: {domain.RightAngle: "The Right Angle Cross of the Unexpected (1)", domain.Juxtaposition: "The Juxtaposition Cross of Caring", domain.LeftAngle: "The Left Angle Cross of Alignment (1)"},
	24: {domain.RightAngle: "The Right Angle Cross of the Four Ways (1)", domain.Juxtaposition: "The Juxtaposition Cross of Rationalization", domain.LeftAngle: "The Left Angle Cross of Incarnation (1)"},

	// Quarter of Civilization
	2:  {domain.RightAngle: "The Right Angle Cross of the Sphinx (2)", domain.Juxtaposition: "The Juxtaposition Cross of the Driver", domain.LeftAngle: "The Left Angle Cross of Defiance (1)"},
	23: {domain.RightAngle: "The Right Angle Cross of Explanation (2)", domain.Juxtaposition: "The Juxtaposition Cross of Assimilation", domain.LeftAngle: "The Left Angle Cross of Dedication (1)"},
	8:  {domain.RightAngle: "The Right Angle Cross of Contagion (2)", domain.Juxtaposition: "The Juxtaposition Cross of Contribution", domain.LeftAngle: "The Left Angle Cross of Uncertainty (1)"},
	20: {domain.RightAngle: "The Right Angle Cross of the Sleeping Phoenix (2)", domain.Juxtaposition: "The Juxtaposition Cross of the Now", domain.LeftAngle: "The Left Angle Cross of Duality (1)"},
	16: {domain.RightAngle: "The Right Angle Cross of Planning (2)", domain.Juxtaposition: "The Juxtaposition Cross of Experimentation", domain.LeftAngle: "The Left Angle Cross of Identification (1)"},
	35: {domain.RightAngle: "The Right Angle Cross of Consciousness (2)", domain.Juxtaposition: "The Juxtaposition Cross of Experience", domain.LeftAngle: "The Left Angle Cross of Separation (1)"},
	45: {domain.RightAngle: "The Right Angle Cross of Rulership (2)", domain.Juxtaposition: "The Juxtaposition Cross of Possession", domain.LeftAngle: "The Left Angle Cross of Confrontation (1)"},
	12: {domain.RightAngle: "The Right Angle Cross of the Eden (2)", domain.Juxtaposition: "The Juxtaposition Cross of Articulation", domain.LeftAngle: "The Left Angle Cross of Education (1)"},
	15: {domain.RightAngle: "The Right Angle Cross of the Vessel of Love (2)", domain.Juxtaposition: "The Juxtaposition Cross of Extremes", domain.LeftAngle: "The Left Angle Cross of Prevention (1)"},
	52: {domain.RightAngle: "The Right Angle Cross of Service (2)", domain.Juxtaposition: "The Juxtaposition Cross of Stillness", domain.LeftAngle: "The Left Angle Cross of Demands (1)"},
	39: {domain.RightAngle: "The Right Angle Cross of Tension (2)", domain.Juxtaposition: "The Juxtaposition Cross of Provocation", domain.LeftAngle: "The Left Angle Cross of Individualism (1)"},
	53: {domain.RightAngle: "The Right Angle Cross of Penetration (2)", domain.Juxtaposition: "The Juxtaposition Cross of Beginnings", domain.LeftAngle: "The Left Angle Cross of Cycles (1)"},
	62: {domain.RightAngle: "The Right Angle Cross of the Maya (2)", domain.Juxtaposition: "The Juxtaposition Cross of Detail", domain.LeftAngle: "The Left Angle Cross of Obscuration (1)"},
	56: {domain.RightAngle: "The Right Angle Cross of Laws (2)", domain.Juxtaposition: "The Juxtaposition Cross of Stimulation", domain.LeftAngle: "The Left Angle Cross of Distraction (1)"},
	31: {domain.RightAngle: "The Right Angle Cross of the Unexpected (2)", domain.Juxtaposition: "The Juxtaposition Cross of Influence", domain.LeftAngle: "The Left Angle Cross of the Alpha (1)"},
	33: {domain.RightAngle: "The Right Angle Cross of the Four Ways (2)", domain.Juxtaposition: "The Juxtaposition Cross of Retreat", domain.LeftAngle: "The Left Angle Cross of Refinement (1)"},

	// Quarter of Duality
	7:  {domain.RightAngle: "The Right Angle Cross of the Sphinx (3)", domain.Juxtaposition: "The Juxtaposition Cross of Interaction", domain.LeftAngle: "The Left Angle Cross of Masks (2)"},
	4:  {domain.RightAngle: "The Right Angle Cross of Explanation (3)", domain.Juxtaposition: "The Juxtaposition Cross of Formulation", domain.LeftAngle: "The Left Angle Cross of Revolution (2)"},
	29: {domain.RightAngle: "The Right Angle Cross of Contagion (3)", domain.Juxtaposition: "The Juxtaposition Cross of Commitment", domain.LeftAngle: "The Left Angle Cross of Industry (2)"},
	59: {domain.RightAngle: "The Right Angle Cross of the Sleeping Phoenix (3)", domain.Juxtaposition: "The Juxtaposition Cross of Strategy", domain.LeftAngle: "The Left Angle Cross of Spirit (2)"},
	40: {domain.RightAngle: "The Right Angle Cross of Planning (3)", domain.Juxtaposition: "The Juxtaposition Cross of Denial", domain.LeftAngle: "The Left Angle Cross of Migration (2)"},
	64: {domain.RightAngle: "The Right Angle Cross of Consciousness (3)", domain.Juxtaposition: "The Juxtaposition Cross of Confusion", domain.LeftAngle: "The Left Angle Cross of Dominion (2)"},
	47: {domain.RightAngle: "The Right Angle Cross of Rulership (3)", domain.Juxtaposition: "The Juxtaposition Cross of Oppression", domain.LeftAngle: "The Left Angle Cross of Informing (2)"},
	6:  {domain.RightAngle: "The Right Angle Cross of the Eden (3)", domain.Juxtaposition: "The Juxtaposition Cross of Conflict", domain.LeftAngle: "The Left Angle Cross of the Plane (2)"},
	46: {domain.RightAngle: "The Right Angle Cross of the Vessel of Love (3)", domain.Juxtaposition: "The Juxtaposition Cross of Serendipity", domain.LeftAngle: "The Left Angle Cross of Healing (2)"},
	18: {domain.RightAngle: "The Right Angle Cross of Service (3)", domain.Juxtaposition: "The Juxtaposition Cross of Correction", domain.LeftAngle: "The Left Angle Cross of Upheaval (2)"},
	48: {domain.RightAngle: "The Right Angle Cross of Tension (3)", domain.Juxtaposition: "The Juxtaposition Cross of Depth", domain.LeftAngle: "The Left Angle Cross of Endeavor (2)"},
	57: {domain.RightAngle: "The Right Angle Cross of Penetration (3)", domain.Juxtaposition: "The Juxtaposition Cross of Intuition", domain.LeftAngle: "The Left Angle Cross of the Clarion (2)"},
	32: {domain.RightAngle: "The Right Angle Cross of the Maya (3)", domain.Juxtaposition: "The Juxtaposition Cross of Conservation", domain.LeftAngle: "The Left Angle Cross of Limitation (2)"},
	50: {domain.RightAngle: "The Right Angle Cross of Laws (3)", domain.Juxtaposition: "The Juxtaposition Cross of Values", domain.LeftAngle: "The Left Angle Cross of Wishes (2)"},
	28: {domain.RightAngle: "The Right Angle Cross of the Unexpected (3)", domain.Juxtaposition: "The Juxtaposition Cross of Risks", domain.LeftAngle: "The Left Angle Cross of Alignment (2)"},
	44: {domain.RightAngle: "The Right Angle Cross of the Four Ways (3)", domain.Juxtaposition: "The Juxtaposition Cross of Alertness", domain.LeftAngle: "The Left Angle Cross of Incarnation (2)"},

	// Quarter of Mutation
	1:  {domain.RightAngle: "The Right Angle Cross of the Sphinx (4)", domain.Juxtaposition: "The Juxtaposition Cross of Self-Expression", domain.LeftAngle: "The Left Angle Cross of Defiance (2)"},
	43: {domain.RightAngle: "The Right Angle Cross of Explanation (4)", domain.Juxtaposition: "The Juxtaposition Cross of Insight", domain.LeftAngle: "The Left Angle Cross of Dedication (2)"},
	14: {domain.RightAngle: "The Right Angle Cross of Contagion (4)", domain.Juxtaposition: "The Juxtaposition Cross of Empowering", domain.LeftAngle: "The Left Angle Cross of Uncertainty (2)"},
	34: {domain.RightAngle: "The Right Angle Cross of the Sleeping Phoenix (4)", domain.Juxtaposition: "The Juxtaposition Cross of Power", domain.LeftAngle: "The Left Angle Cross of Duality (2)"},
	9:  {domain.RightAngle: "The Right Angle Cross of Planning (4)", domain.Juxtaposition: "The Juxtaposition Cross of Focus", domain.LeftAngle: "The Left Angle Cross of Identification (2)"},
	5:  {domain.RightAngle: "The Right Angle Cross of Consciousness (4)", domain.Juxtaposition: "The Juxtaposition Cross of Habits", domain.LeftAngle: "The Left Angle Cross of Separation (2)"},
	26: {domain.RightAngle: "The Right Angle Cross of Rulership (4)", domain.Juxtaposition: "The Juxtaposition Cross of the Trickster", domain.LeftAngle: "The Left Angle Cross of Control (2)"},
	11: {domain.RightAngle: "The Right Angle Cross of the Eden (4)", domain.Juxtaposition: "The Juxtaposition Cross of Ideas", domain.LeftAngle: "The Left Angle Cross of Education (2)"},
	10: {domain.RightAngle: "The Right Angle Cross of the Vessel of Love (4)", domain.Juxtaposition: "The Juxtaposition Cross of Behavior", domain.LeftAngle: "The Left Angle Cross of Prevention (2)"},
	58: {domain.RightAngle: "The Right Angle Cross of Service (4)", domain.Juxtaposition: "The Juxtaposition Cross of Vitality", domain.LeftAngle: "The Left Angle Cross of Demands (2)"},
	38: {domain.RightAngle: "The Right Angle Cross of Tension (4)", domain.Juxtaposition: "The Juxtaposition Cross of Opposition", domain.LeftAngle: "The Left Angle Cross of Individualism (2)"},
	54: {domain.RightAngle: "The Right Angle Cross of Penetration (4)", domain.Juxtaposition: "The Juxtaposition Cross of Ambition", domain.LeftAngle: "The Left Angle Cross of Cycles (2)"},
	61: {domain.RightAngle: "The Right Angle Cross of the Maya (4)", domain.Juxtaposition: "The Juxtaposition Cross of Thinking", domain.LeftAngle: "The Left Angle Cross of Obscuration (2)"},
	60: {domain.RightAngle: "The Right Angle Cross of Laws (4)", domain.Juxtaposition: "The Juxtaposition Cross of Limitation", domain.LeftAngle: "The Left Angle Cross of Distraction (2)"},
	41: {domain.RightAngle: "The Right Angle Cross of the Unexpected (4)", domain.Juxtaposition: "The Juxtaposition Cross of Fantasy", domain.LeftAngle: "The Left Angle Cross of the Alpha (2)"},
	19: {domain.RightAngle: "The Right Angle Cross of the Four Ways (4)", domain.Juxtaposition: "The Juxtaposition Cross of Need", domain.LeftAngle: "The Left Angle Cross of Refinement (2)"},
}

// definitionNames names the 0..4 split counts.
var definitionNames = map[int]string{
	0: "No Definition (Reflector)",
	1: "Single Definition",
	2: "Split Definition",
	3: "Triple Split Definition",
	4: "Quadruple Split Definition",
}

// DefinitionName names a component count; counts above four are reported as
// quadruple split.
func DefinitionName(components int) string {
	if components > 4 {
		components = 4
	}
	if components < 0 {
		components = 0
	}
	return definitionNames[components]
}

// typeDetails carries the descriptive attributes per energy type.
var typeDetails = map[domain.Type]domain.TypeDetails{
	domain.Manifestor: {
		Strategy:  "To Inform",
		Signature: "Peace",
		NotSelf:   "Anger",
		Aura:      "Closed & Repelling",
	},
	domain.Generator: {
		Strategy:  "Wait to Respond",
		Signature: "Satisfaction",
		NotSelf:   "Frustration",
		Aura:      "Open & Enveloping",
	},
	domain.ManifestingGenerator: {
		Strategy:  "Wait to Respond",
		Signature: "Satisfaction",
		NotSelf:   "Frustration & Anger",
		Aura:      "Open & Enveloping",
	},
	domain.Projector: {
		Strategy:  "Wait for the Invitation",
		Signature: "Success",
		NotSelf:   "Bitterness",
		Aura:      "Focused & Absorbing",
	},
	domain.Reflector: {
		Strategy:  "Wait a Lunar Cycle",
		Signature: "Surprise",
		NotSelf:   "Disappointment",
		Aura:      "Sampling & Resistant",
	},
}

// TypeDetailsFor returns strategy, signature, not-self theme and aura for a
// type. Unknown types get the zero value and ok=false.
func TypeDetailsFor(t domain.Type) (domain.TypeDetails, bool) {
	d, ok := typeDetails[t]
	return d, ok
}
