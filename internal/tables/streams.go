package tables

import "bodygraph/internal/domain"

// AwarenessStream is one of the nine gate sequences running from a pressure
// center through an awareness center to the Throat.
type AwarenessStream struct {
	Name   string
	Gates  [4]int
	Source domain.Center
}

// AwarenessStreams lists all nine streams grouped by their awareness center.
var AwarenessStreams = []AwarenessStream{
	{Name: "Taste", Gates: [4]int{58, 18, 48, 16}, Source: domain.Spleen},
	{Name: "Intuition", Gates: [4]int{38, 28, 57, 20}, Source: domain.Spleen},
	{Name: "Instinct", Gates: [4]int{54, 32, 44, 26}, Source: domain.Spleen},
	{Name: "Feel", Gates: [4]int{41, 30, 36, 35}, Source: domain.SolarPlexus},
	{Name: "Emotion", Gates: [4]int{39, 55, 22, 12}, Source: domain.SolarPlexus},
	{Name: "Sensitivity", Gates: [4]int{19, 49, 37, 40}, Source: domain.SolarPlexus},
	{Name: "Realize/Meaning", Gates: [4]int{64, 47, 11, 56}, Source: domain.Ajna},
	{Name: "Knowledge", Gates: [4]int{61, 24, 43, 23}, Source: domain.Ajna},
	{Name: "Understand", Gates: [4]int{63, 4, 17, 62}, Source: domain.Ajna},
}
