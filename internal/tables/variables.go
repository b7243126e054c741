package tables

// VariableSlot is one of the four arrow positions. The right-side arrows
// read the Personality Sun and Node tones, the left-side arrows the Design
// ones.
type VariableSlot string

const (
	VariableTopRight    VariableSlot = "top_right"
	VariableBottomRight VariableSlot = "bottom_right"
	VariableTopLeft     VariableSlot = "top_left"
	VariableBottomLeft  VariableSlot = "bottom_left"
)

// VariableMeta describes an arrow position and the reading of its two
// directions.
type VariableMeta struct {
	Name      string
	Aspect    string
	LeftType  string
	RightType string
}

var variableMetadata = map[VariableSlot]VariableMeta{
	VariableTopRight: {
		Name:      "Motivation",
		Aspect:    "Mind / Conscious",
		LeftType:  "Strategic",
		RightType: "Receptive",
	},
	VariableBottomRight: {
		Name:      "Perspective",
		Aspect:    "View / Conscious",
		LeftType:  "Focused",
		RightType: "Peripheral",
	},
	VariableTopLeft: {
		Name:      "Digestion",
		Aspect:    "Brain / Unconscious",
		LeftType:  "Active",
		RightType: "Passive",
	},
	VariableBottomLeft: {
		Name:      "Environment",
		Aspect:    "Body / Unconscious",
		LeftType:  "Observed",
		RightType: "Observer",
	},
}

// VariableMetaFor returns the metadata of an arrow position.
func VariableMetaFor(slot VariableSlot) (VariableMeta, bool) {
	m, ok := variableMetadata[slot]
	return m, ok
}
