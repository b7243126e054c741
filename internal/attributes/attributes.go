// Package attributes derives the narrative chart attributes that sit on top
// of the mechanics: profile, incarnation cross and the four variables.
package attributes

import (
	"fmt"

	"bodygraph/internal/domain"
	"bodygraph/internal/tables"
	pkgerrors "bodygraph/pkg/errors"
)

// Profile is the pair of Sun lines from both epochs resolved to its
// published name.
type Profile struct {
	PersonalityLine int                  `json:"personality_line"`
	DesignLine      int                  `json:"design_line"`
	Name            string               `json:"name"`
	Category        domain.CrossCategory `json:"category"`
}

// Cross is the incarnation cross: the Sun and Earth gates of both epochs
// plus the published cross name for the chart's geometry.
type Cross struct {
	PersonalityGates [2]int               `json:"personality_gates"`
	DesignGates      [2]int               `json:"design_gates"`
	Category         domain.CrossCategory `json:"category"`
	Name             string               `json:"name"`
}

// Variable is one resolved arrow.
type Variable struct {
	Value   string `json:"value"`
	Name    string `json:"name"`
	Aspect  string `json:"aspect"`
	DefType string `json:"def_type"`
}

// Variables are the four arrows plus the standard shorthand, e.g. "PRL DLL".
type Variables struct {
	TopRight    Variable `json:"top_right"`
	BottomRight Variable `json:"bottom_right"`
	TopLeft     Variable `json:"top_left"`
	BottomLeft  Variable `json:"bottom_left"`
	ShortCode   string   `json:"short_code"`
}

func activation(set domain.ActivationSet, body domain.Body, label domain.EpochLabel) (domain.GateActivation, error) {
	a, ok := set.Activation(body, label)
	if !ok {
		return domain.GateActivation{}, pkgerrors.Newf(pkgerrors.CodeInternal,
			"chart is missing the %s %s activation", label, body)
	}
	return a, nil
}

// ProfileOf reads the Sun lines of both epochs. When the raw pair is not a
// published profile it is read reversed, matching how the wheel orders the
// twelve profiles.
func ProfileOf(set domain.ActivationSet) (Profile, error) {
	sunP, err := activation(set, domain.Sun, domain.Personality)
	if err != nil {
		return Profile{}, err
	}
	sunD, err := activation(set, domain.Sun, domain.Design)
	if err != nil {
		return Profile{}, err
	}

	name, cat, reversed, ok := tables.ProfileLookup(sunP.Line, sunD.Line)
	if !ok {
		return Profile{}, pkgerrors.Newf(pkgerrors.CodeInternal,
			"no profile for line pair %d/%d", sunP.Line, sunD.Line)
	}
	p := Profile{PersonalityLine: sunP.Line, DesignLine: sunD.Line, Name: name, Category: cat}
	if reversed {
		p.PersonalityLine, p.DesignLine = sunD.Line, sunP.Line
	}
	return p, nil
}

// IncarnationCross reads the Sun and Earth gates of both epochs and names
// the cross from the personality Sun gate and the profile geometry.
func IncarnationCross(set domain.ActivationSet) (Cross, error) {
	sunP, err := activation(set, domain.Sun, domain.Personality)
	if err != nil {
		return Cross{}, err
	}
	earthP, err := activation(set, domain.Earth, domain.Personality)
	if err != nil {
		return Cross{}, err
	}
	sunD, err := activation(set, domain.Sun, domain.Design)
	if err != nil {
		return Cross{}, err
	}
	earthD, err := activation(set, domain.Earth, domain.Design)
	if err != nil {
		return Cross{}, err
	}

	_, cat, _, ok := tables.ProfileLookup(sunP.Line, sunD.Line)
	if !ok {
		return Cross{}, pkgerrors.Newf(pkgerrors.CodeInternal,
			"no cross category for line pair %d/%d", sunP.Line, sunD.Line)
	}
	name, ok := tables.CrossName(sunP.Gate, cat)
	if !ok {
		return Cross{}, pkgerrors.Newf(pkgerrors.CodeInternal,
			"no cross name for gate %d category %s", sunP.Gate, cat)
	}

	return Cross{
		PersonalityGates: [2]int{sunP.Gate, earthP.Gate},
		DesignGates:      [2]int{sunD.Gate, earthD.Gate},
		Category:         cat,
		Name:             name,
	}, nil
}

// String renders the cross in its compact export form, e.g.
// "((13,7),(43,23))-RAC".
func (c Cross) String() string {
	return fmt.Sprintf("((%d,%d),(%d,%d))-%s",
		c.PersonalityGates[0], c.PersonalityGates[1],
		c.DesignGates[0], c.DesignGates[1], c.Category)
}

// VariablesOf reads the Sun and North Node tones of both epochs. A tone of
// three or lower points the arrow left.
func VariablesOf(set domain.ActivationSet) (Variables, error) {
	sunP, err := activation(set, domain.Sun, domain.Personality)
	if err != nil {
		return Variables{}, err
	}
	nodeP, err := activation(set, domain.NorthNode, domain.Personality)
	if err != nil {
		return Variables{}, err
	}
	sunD, err := activation(set, domain.Sun, domain.Design)
	if err != nil {
		return Variables{}, err
	}
	nodeD, err := activation(set, domain.NorthNode, domain.Design)
	if err != nil {
		return Variables{}, err
	}

	v := Variables{
		TopRight:    resolve(tables.VariableTopRight, sunP.Tone),
		BottomRight: resolve(tables.VariableBottomRight, nodeP.Tone),
		TopLeft:     resolve(tables.VariableTopLeft, sunD.Tone),
		BottomLeft:  resolve(tables.VariableBottomLeft, nodeD.Tone),
	}
	v.ShortCode = fmt.Sprintf("P%s%s D%s%s",
		side(sunP.Tone), side(nodeP.Tone), side(sunD.Tone), side(nodeD.Tone))
	return v, nil
}

func side(tone int) string {
	if tone > 3 {
		return "R"
	}
	return "L"
}

func resolve(slot tables.VariableSlot, tone int) Variable {
	meta, _ := tables.VariableMetaFor(slot)
	v := Variable{Name: meta.Name, Aspect: meta.Aspect}
	if tone > 3 {
		v.Value = "right"
		v.DefType = meta.RightType
	} else {
		v.Value = "left"
		v.DefType = meta.LeftType
	}
	return v
}
