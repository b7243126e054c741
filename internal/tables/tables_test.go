package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/internal/domain"
)

func TestGateCircle_IsPermutation(t *testing.T) {
	seen := make(map[int]bool, SectorsPerWheel)
	for _, g := range GateCircle() {
		assert.GreaterOrEqual(t, g, 1)
		assert.LessOrEqual(t, g, 64)
		assert.False(t, seen[g], "gate %d appears twice", g)
		seen[g] = true
	}
	assert.Len(t, seen, 64)
}

func TestWheelIndexOf_InvertsGateAt(t *testing.T) {
	for i := 0; i < SectorsPerWheel; i++ {
		idx, ok := WheelIndexOf(GateAt(i))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := WheelIndexOf(0)
	assert.False(t, ok)
}

func TestChannels_CoverAllGatesOnce(t *testing.T) {
	assert.Len(t, Channels, 36)

	// Every gate sits in exactly one center, even when it partners several
	// channels.
	for gate := 1; gate <= 64; gate++ {
		c, ok := CenterOf(gate)
		require.True(t, ok, "gate %d has no center", gate)
		assert.NotEmpty(t, c)
		assert.NotEmpty(t, ChannelsForGate(gate), "gate %d has no channel", gate)
	}
}

func TestChannelBetween_OrderInsensitive(t *testing.T) {
	a, ok := ChannelBetween(34, 20)
	require.True(t, ok)
	b, ok := ChannelBetween(20, 34)
	require.True(t, ok)
	assert.Equal(t, a, b)
	assert.Equal(t, "Charisma", a.Name)

	_, ok = ChannelBetween(1, 2)
	assert.False(t, ok)
}

func TestChannelsForGate_MultiChannelGates(t *testing.T) {
	for gate, want := range map[int]int{10: 3, 20: 3, 34: 3, 57: 3, 41: 1} {
		assert.Len(t, ChannelsForGate(gate), want, "gate %d", gate)
	}
}

func TestChannels_CircuitsHaveGroups(t *testing.T) {
	for _, ch := range Channels {
		group := CircuitGroup(ch.Circuit)
		assert.NotEmpty(t, group, "channel %v circuit %q", ch.Gates, ch.Circuit)
	}
	assert.Equal(t, "Individual", CircuitGroup("Knowledge"))
	assert.Equal(t, "Collective", CircuitGroup("Realize"))
	assert.Equal(t, "Tribal", CircuitGroup("Ego"))
	assert.Equal(t, "Integration", CircuitGroup("Integration"))
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "20-34", PairKey(34, 20))
	assert.Equal(t, "20-34", PairKey(20, 34))
}

func TestProfileLookup(t *testing.T) {
	name, cat, reversed, ok := ProfileLookup(1, 3)
	require.True(t, ok)
	assert.Equal(t, "1/3: Investigator Martyr", name)
	assert.Equal(t, domain.RightAngle, cat)
	assert.False(t, reversed)

	// (3, 1) is not a published profile; the reversed pair resolves it.
	name, cat, reversed, ok = ProfileLookup(3, 1)
	require.True(t, ok)
	assert.Equal(t, "1/3: Investigator Martyr", name)
	assert.Equal(t, domain.RightAngle, cat)
	assert.True(t, reversed)

	name, cat, reversed, ok = ProfileLookup(4, 1)
	require.True(t, ok)
	assert.Equal(t, "4/1: Opportunist Investigator", name)
	assert.Equal(t, domain.Juxtaposition, cat)
	assert.False(t, reversed)

	name, cat, reversed, ok = ProfileLookup(6, 2)
	require.True(t, ok)
	assert.Equal(t, domain.LeftAngle, cat)

	_, _, _, ok = ProfileLookup(7, 7)
	assert.False(t, ok)
}

func TestCrossName_AllGatesAllCategories(t *testing.T) {
	for gate := 1; gate <= 64; gate++ {
		for _, cat := range []domain.CrossCategory{domain.RightAngle, domain.Juxtaposition, domain.LeftAngle} {
			name, ok := CrossName(gate, cat)
			require.True(t, ok, "gate %d cat %s", gate, cat)
			assert.NotEmpty(t, name)
		}
	}

	name, ok := CrossName(13, domain.RightAngle)
	require.True(t, ok)
	assert.Equal(t, "The Right Angle Cross of the Sphinx (1)", name)
}

func TestDefinitionName(t *testing.T) {
	assert.Equal(t, "No Definition (Reflector)", DefinitionName(0))
	assert.Equal(t, "Single Definition", DefinitionName(1))
	assert.Equal(t, "Quadruple Split Definition", DefinitionName(4))
	assert.Equal(t, "Quadruple Split Definition", DefinitionName(7))
	assert.Equal(t, "No Definition (Reflector)", DefinitionName(-1))
}

func TestTypeDetailsFor(t *testing.T) {
	d, ok := TypeDetailsFor(domain.Generator)
	require.True(t, ok)
	assert.Equal(t, "Wait to Respond", d.Strategy)
	assert.Equal(t, "Frustration", d.NotSelf)

	d, ok = TypeDetailsFor(domain.Reflector)
	require.True(t, ok)
	assert.Equal(t, "Wait a Lunar Cycle", d.Strategy)

	_, ok = TypeDetailsFor(domain.Type("Unknown"))
	assert.False(t, ok)
}

func TestPentaTables(t *testing.T) {
	assert.Len(t, PentaGates, 12)

	var keys []string
	for _, zone := range PentaZones {
		for _, ch := range zone.Channels {
			keys = append(keys, ch.Key)
			for _, g := range ch.Gates {
				assert.Contains(t, PentaGates, g)
			}
		}
	}
	assert.Len(t, keys, 6)
	assert.Contains(t, keys, "31-7")
	assert.Contains(t, keys, "8-1")

	assert.Equal(t, "Administration", PentaSkill("business", 31))
	assert.Equal(t, "Discipline", PentaSkill("family", 31))
	assert.Equal(t, "Lack of Resources", PentaShadow("business", 14))
	assert.Equal(t, "Lack of Means", PentaShadow("family", 14))
	assert.Equal(t, "Unknown", PentaSkill("business", 99))

	assert.Equal(t, "Authoritarian (Foundational)", PentaLineKeyword(1))
	assert.Equal(t, "Administrator (Objective)", PentaLineKeyword(6))
	assert.Equal(t, "Unknown", PentaLineKeyword(0))
}

func TestAwarenessStreams(t *testing.T) {
	assert.Len(t, AwarenessStreams, 9)
	for _, s := range AwarenessStreams {
		for _, g := range s.Gates {
			_, ok := WheelIndexOf(g)
			assert.True(t, ok, "stream %s gate %d", s.Name, g)
		}
	}
}
