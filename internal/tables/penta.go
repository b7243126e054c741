package tables

// The penta engine works over the twelve Throat/G-Center/Sacral gates that
// carry group energy. Zone and skill labels follow the family/business
// reading of the same mechanics.

// PentaGates lists the twelve gates a penta analysis considers.
var PentaGates = []int{31, 8, 33, 7, 1, 13, 15, 2, 46, 5, 14, 29}

// PentaChannel is one of the six penta channels. Key is the wiring key in
// upper-gate-first form, not the sorted pair key.
type PentaChannel struct {
	Key      string
	Gates    [2]int
	Name     string
	GapMsg   string
	Backbone bool
}

// PentaZone groups the penta channels into the upper (vision) and lower
// (generation) halves.
type PentaZone struct {
	Key      string
	Label    string
	Channels []PentaChannel
}

// PentaZones lists both zones in upper, lower order. The three lower
// channels form the backbone that stability scoring counts.
var PentaZones = []PentaZone{
	{
		Key:   "upper_penta",
		Label: "Direction & Vision",
		Channels: []PentaChannel{
			{Key: "31-7", Gates: [2]int{31, 7}, Name: "Planning", GapMsg: "No shared planning voice"},
			{Key: "8-1", Gates: [2]int{8, 1}, Name: "Implementation", GapMsg: "No creative contribution reaches the group"},
			{Key: "33-13", Gates: [2]int{33, 13}, Name: "Communication", GapMsg: "Experience is not retained or shared"},
		},
	},
	{
		Key:   "lower_penta",
		Label: "Action & Generation",
		Channels: []PentaChannel{
			{Key: "15-5", Gates: [2]int{15, 5}, Name: "Process", GapMsg: "No common rhythm of work", Backbone: true},
			{Key: "2-14", Gates: [2]int{2, 14}, Name: "Resources", GapMsg: "Resources are not steered", Backbone: true},
			{Key: "46-29", Gates: [2]int{46, 29}, Name: "Commitment", GapMsg: "Efforts are not carried through", Backbone: true},
		},
	},
}

// PentaBackboneKeys lists the backbone channel keys used for stability
// scoring.
var PentaBackboneKeys = []string{"15-5", "2-14", "46-29"}

var businessSkills = map[int]string{
	31: "Administration",
	7:  "Strategic Direction",
	8:  "Promotion",
	1:  "Creativity",
	33: "Review",
	13: "Record Keeping",
	15: "Work Flow",
	5:  "Scheduling",
	2:  "Resource Direction",
	14: "Capital",
	46: "Follow-Through",
	29: "Commitment",
}

var familySkills = map[int]string{
	31: "Discipline",
	7:  "Guidance",
	8:  "Encouragement",
	1:  "Expression",
	33: "Storytelling",
	13: "Listening",
	15: "Routine",
	5:  "Habits",
	2:  "Direction",
	14: "Means",
	46: "Dedication",
	29: "Perseverance",
}

var businessShadows = map[int]string{
	31: "Directionless Management",
	7:  "Lack of Direction",
	8:  "Lack of Visibility",
	1:  "Lack of Innovation",
	33: "Unlearned Lessons",
	13: "Lost History",
	15: "Erratic Work Flow",
	5:  "Broken Scheduling",
	2:  "Lack of Steering",
	14: "Lack of Resources",
	46: "Incomplete Delivery",
	29: "Broken Commitments",
}

var familyShadows = map[int]string{
	31: "Lack of Discipline",
	7:  "Lack of Guidance",
	8:  "Withheld Encouragement",
	1:  "Stifled Expression",
	33: "Untold Stories",
	13: "Unheard Voices",
	15: "Disrupted Routine",
	5:  "Unsettled Habits",
	2:  "Lack of Direction",
	14: "Lack of Means",
	46: "Abandoned Efforts",
	29: "Broken Promises",
}

// PentaSkill returns the context-dependent skill label a gate contributes.
// groupType "family" selects the family reading, anything else the business
// reading.
func PentaSkill(groupType string, gate int) string {
	m := businessSkills
	if groupType == "family" {
		m = familySkills
	}
	if s, ok := m[gate]; ok {
		return s
	}
	return "Unknown"
}

// PentaShadow returns the theme a missing gate casts on the group.
func PentaShadow(groupType string, gate int) string {
	m := businessShadows
	if groupType == "family" {
		m = familyShadows
	}
	if s, ok := m[gate]; ok {
		return s
	}
	return "Dysfunction"
}

var pentaLineKeywords = map[int]string{
	1: "Authoritarian (Foundational)",
	2: "Democrat (Natural)",
	3: "Anarchist (Adaptive)",
	4: "Abdicator (Influential)",
	5: "General (Strategic)",
	6: "Administrator (Objective)",
}

// PentaLineKeyword names the leadership style a line brings to a penta gate.
func PentaLineKeyword(line int) string {
	if s, ok := pentaLineKeywords[line]; ok {
		return s
	}
	return "Unknown"
}
