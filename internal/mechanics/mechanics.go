// Package mechanics derives the bodygraph mechanics from a set of gate
// activations: active channels, defined centers, energy type, inner
// authority and definition splits.
package mechanics

import (
	"bodygraph/internal/domain"
	"bodygraph/internal/tables"
)

// ActiveChannel is a channel both of whose gates carry at least one
// activation. LabelsA and LabelsB list the epochs that activated each gate,
// in chart listing order.
type ActiveChannel struct {
	Key          string              `json:"key"`
	Gates        [2]int              `json:"gates"`
	Centers      [2]domain.Center    `json:"centers"`
	Name         string              `json:"name"`
	Keynote      string              `json:"keynote"`
	Circuit      string              `json:"circuit"`
	CircuitGroup string              `json:"circuit_group"`
	LabelsA      []domain.EpochLabel `json:"labels_a"`
	LabelsB      []domain.EpochLabel `json:"labels_b"`
}

// Analysis is the mechanics of one activation population.
type Analysis struct {
	Channels []ActiveChannel
	Centers  map[domain.Center]bool
}

// Analyze walks the 36 fixed channels once, so each active channel appears
// exactly once however many activations open its gates.
func Analyze(set domain.ActivationSet) Analysis {
	open := set.OpenGates()
	a := Analysis{Centers: make(map[domain.Center]bool)}

	for _, ch := range tables.Channels {
		if !open[ch.Gates[0]] || !open[ch.Gates[1]] {
			continue
		}
		a.Channels = append(a.Channels, ActiveChannel{
			Key:          tables.PairKey(ch.Gates[0], ch.Gates[1]),
			Gates:        ch.Gates,
			Centers:      ch.Centers,
			Name:         ch.Name,
			Keynote:      ch.Keynote,
			Circuit:      ch.Circuit,
			CircuitGroup: tables.CircuitGroup(ch.Circuit),
			LabelsA:      labelsOf(set, ch.Gates[0]),
			LabelsB:      labelsOf(set, ch.Gates[1]),
		})
		a.Centers[ch.Centers[0]] = true
		a.Centers[ch.Centers[1]] = true
	}
	return a
}

func labelsOf(set domain.ActivationSet, gate int) []domain.EpochLabel {
	var labels []domain.EpochLabel
	for _, act := range set {
		if act.Gate == gate {
			labels = append(labels, act.Label)
		}
	}
	return labels
}

// DefinedCenters lists the defined centers in bodygraph order.
func (a Analysis) DefinedCenters() []domain.Center {
	var out []domain.Center
	for _, c := range domain.Centers {
		if a.Centers[c] {
			out = append(out, c)
		}
	}
	return out
}

// OpenCenters lists the undefined centers in bodygraph order.
func (a Analysis) OpenCenters() []domain.Center {
	var out []domain.Center
	for _, c := range domain.Centers {
		if !a.Centers[c] {
			out = append(out, c)
		}
	}
	return out
}

// linked reports whether some active channel directly joins the two centers.
func (a Analysis) linked(c1, c2 domain.Center) bool {
	for _, ch := range a.Channels {
		if (ch.Centers[0] == c1 && ch.Centers[1] == c2) ||
			(ch.Centers[0] == c2 && ch.Centers[1] == c1) {
			return true
		}
	}
	return false
}

// Connected reports whether the given centers form a path in the given
// order, each consecutive pair joined by an active channel.
func (a Analysis) Connected(path ...domain.Center) bool {
	if len(a.Channels) == 0 {
		return false
	}
	for i := 0; i+1 < len(path); i++ {
		if !a.linked(path[i], path[i+1]) {
			return false
		}
	}
	return true
}

// motorToThroat reports whether any motor center reaches the Throat over the
// recognized manifestation routes.
func (a Analysis) motorToThroat() bool {
	heart := a.Connected(domain.Throat, domain.Heart) ||
		a.Connected(domain.Throat, domain.GCenter, domain.Heart) ||
		a.Connected(domain.Throat, domain.Spleen, domain.Heart)
	sacral := a.Connected(domain.Throat, domain.GCenter, domain.Sacral) ||
		a.Connected(domain.Throat, domain.Sacral)
	root := a.Connected(domain.Throat, domain.Spleen, domain.Root) ||
		a.Connected(domain.Throat, domain.GCenter, domain.Spleen, domain.Root)
	return heart || sacral ||
		a.Connected(domain.Throat, domain.SolarPlexus) || root
}

// EnergyType classifies the chart. The Sacral rules the Generator family;
// a motor reaching the Throat upgrades to the manifesting variant.
func (a Analysis) EnergyType() domain.Type {
	if len(a.Centers) == 0 {
		return domain.Reflector
	}
	manifesting := a.motorToThroat()
	if a.Centers[domain.Sacral] {
		if manifesting {
			return domain.ManifestingGenerator
		}
		return domain.Generator
	}
	if manifesting {
		return domain.Manifestor
	}
	return domain.Projector
}

// InnerAuthority resolves the authority hierarchy: Solar Plexus, Sacral,
// Spleen, Heart, G-Center, then Lunar for fully open charts and Outer/Mental
// for everything left.
func (a Analysis) InnerAuthority() domain.Authority {
	switch {
	case a.Centers[domain.SolarPlexus]:
		return domain.AuthorityEmotional
	case a.Centers[domain.Sacral]:
		return domain.AuthoritySacral
	case a.Centers[domain.Spleen]:
		return domain.AuthoritySplenic
	case a.Centers[domain.Heart]:
		if a.Connected(domain.Heart, domain.Throat) {
			return domain.AuthorityEgoManifested
		}
		return domain.AuthorityEgoProjected
	case a.Centers[domain.GCenter] && a.Connected(domain.GCenter, domain.Throat):
		return domain.AuthoritySelfProjected
	case len(a.Centers) == 0:
		return domain.AuthorityLunar
	default:
		return domain.AuthorityOuter
	}
}

// DefinitionSplits counts the connected components of the defined centers.
func (a Analysis) DefinitionSplits() int {
	if len(a.Centers) == 0 {
		return 0
	}
	graph := make(map[domain.Center][]domain.Center, len(a.Centers))
	for _, ch := range a.Channels {
		c1, c2 := ch.Centers[0], ch.Centers[1]
		graph[c1] = append(graph[c1], c2)
		graph[c2] = append(graph[c2], c1)
	}

	visited := make(map[domain.Center]bool, len(a.Centers))
	islands := 0
	for c := range a.Centers {
		if visited[c] {
			continue
		}
		islands++
		stack := []domain.Center{c}
		visited[c] = true
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range graph[node] {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return islands
}

// DefinitionName names the split count.
func (a Analysis) DefinitionName() string {
	return tables.DefinitionName(a.DefinitionSplits())
}

// ActiveStreams lists the awareness streams all four of whose gates are
// open in the activation set.
func ActiveStreams(set domain.ActivationSet) []tables.AwarenessStream {
	open := set.OpenGates()
	var out []tables.AwarenessStream
	for _, s := range tables.AwarenessStreams {
		complete := true
		for _, g := range s.Gates {
			if !open[g] {
				complete = false
				break
			}
		}
		if complete {
			out = append(out, s)
		}
	}
	return out
}
