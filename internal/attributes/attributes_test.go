package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/domain"
)

func chartSet(sunPGate, sunPLine, sunPTone, sunDLine, sunDTone, nodePTone, nodeDTone int) domain.ActivationSet {
	return domain.ActivationSet{
		{Body: domain.Sun, Label: domain.Personality, Gate: sunPGate, Line: sunPLine, Tone: sunPTone},
		{Body: domain.Earth, Label: domain.Personality, Gate: 7, Line: sunPLine, Tone: 1},
		{Body: domain.NorthNode, Label: domain.Personality, Gate: 10, Line: 2, Tone: nodePTone},
		{Body: domain.Sun, Label: domain.Design, Gate: 43, Line: sunDLine, Tone: sunDTone},
		{Body: domain.Earth, Label: domain.Design, Gate: 23, Line: sunDLine, Tone: 1},
		{Body: domain.NorthNode, Label: domain.Design, Gate: 15, Line: 5, Tone: nodeDTone},
	}
}

func TestProfileOf(t *testing.T) {
	t.Run("direct pair", func(t *testing.T) {
		p, err := ProfileOf(chartSet(13, 1, 1, 3, 4, 2, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, p.PersonalityLine)
		assert.Equal(t, 3, p.DesignLine)
		assert.Equal(t, "1/3: Investigator Martyr", p.Name)
		assert.Equal(t, domain.RightAngle, p.Category)
	})

	t.Run("reversed pair", func(t *testing.T) {
		// (3,1) is not published; it reads as 1/3.
		p, err := ProfileOf(chartSet(13, 3, 1, 1, 4, 2, 5))
		require.NoError(t, err)
		assert.Equal(t, 1, p.PersonalityLine)
		assert.Equal(t, 3, p.DesignLine)
		assert.Equal(t, "1/3: Investigator Martyr", p.Name)
	})

	t.Run("juxtaposition", func(t *testing.T) {
		p, err := ProfileOf(chartSet(13, 4, 1, 1, 4, 2, 5))
		require.NoError(t, err)
		assert.Equal(t, domain.Juxtaposition, p.Category)
		assert.Equal(t, "4/1: Opportunist Investigator", p.Name)
	})

	t.Run("missing design sun", func(t *testing.T) {
		set := chartSet(13, 1, 1, 3, 4, 2, 5)[:3]
		_, err := ProfileOf(set)
		require.Error(t, err)
	})
}

func TestIncarnationCross(t *testing.T) {
	c, err := IncarnationCross(chartSet(13, 1, 1, 3, 4, 2, 5))
	require.NoError(t, err)

	assert.Equal(t, [2]int{13, 7}, c.PersonalityGates)
	assert.Equal(t, [2]int{43, 23}, c.DesignGates)
	assert.Equal(t, domain.RightAngle, c.Category)
	assert.Equal(t, "The Right Angle Cross of the Sphinx (1)", c.Name)
	assert.Equal(t, "((13,7),(43,23))-RAC", c.String())
}

func TestIncarnationCross_LeftAngle(t *testing.T) {
	c, err := IncarnationCross(chartSet(13, 5, 1, 1, 4, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, domain.LeftAngle, c.Category)
	assert.Equal(t, "The Left Angle Cross of Masks (1)", c.Name)
}

func TestVariablesOf(t *testing.T) {
	// Sun prs tone 1 (left), node prs tone 2 (left), sun des tone 4 (right),
	// node des tone 5 (right).
	v, err := VariablesOf(chartSet(13, 1, 1, 3, 4, 2, 5))
	require.NoError(t, err)

	assert.Equal(t, "left", v.TopRight.Value)
	assert.Equal(t, "Motivation", v.TopRight.Name)
	assert.Equal(t, "Strategic", v.TopRight.DefType)

	assert.Equal(t, "left", v.BottomRight.Value)
	assert.Equal(t, "Perspective", v.BottomRight.Name)

	assert.Equal(t, "right", v.TopLeft.Value)
	assert.Equal(t, "Digestion", v.TopLeft.Name)
	assert.Equal(t, "Passive", v.TopLeft.DefType)

	assert.Equal(t, "right", v.BottomLeft.Value)
	assert.Equal(t, "Observer", v.BottomLeft.DefType)

	assert.Equal(t, "PLL DRR", v.ShortCode)
}

func TestVariablesOf_BoundaryTone(t *testing.T) {
	// Tone 3 is the last left tone, tone 4 the first right one.
	v, err := VariablesOf(chartSet(13, 1, 3, 3, 4, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "left", v.TopRight.Value)
	assert.Equal(t, "right", v.BottomRight.Value)
	assert.Equal(t, "left", v.BottomLeft.Value)
	assert.Equal(t, "PLR DRL", v.ShortCode)
}
