// Package penta analyzes the group energy of three to five charts over the
// twelve Throat, G-Center and Sacral gates that carry collective function.
package penta

import (
	"fmt"
	"sort"
	"strings"

	"bodygraph/internal/domain"
	"bodygraph/internal/tables"
)

// Dynamic classifies how a penta channel is carried by the group.
type Dynamic string

const (
	DynamicVoid     Dynamic = "VOID"
	DynamicSolo     Dynamic = "DOM"
	DynamicMixed    Dynamic = "MIXED"
	DynamicFriction Dynamic = "COMP"
	DynamicEM       Dynamic = "EM"
)

// GroupTypeFamily selects the family reading of skills and shadows. Any
// other value selects the business reading.
const GroupTypeFamily = "family"

// owner is one person's hold on a single penta gate.
type owner struct {
	id       string
	polarity string
	line     int
}

// GateContribution records how one participant carries one gate of an
// active channel.
type GateContribution struct {
	Lines      []int    `json:"lines"`
	Polarities []string `json:"polarities"`
	LineLabels []string `json:"line_labels"`
}

// GapAnalysis describes what an inactive channel is missing.
type GapAnalysis struct {
	MissingGates  []int    `json:"missing_gates"`
	MissingSkills []string `json:"missing_skills"`
	ShadowThemes  []string `json:"shadow_themes"`
	Severity      string   `json:"severity"`
	Impact        string   `json:"impact"`
}

// ChannelNode is the full analysis of one penta channel.
type ChannelNode struct {
	Name         string                                  `json:"name"`
	ContextLabel string                                  `json:"context_label"`
	Status       string                                  `json:"status"`
	Type         Dynamic                                 `json:"type"`
	Label        string                                  `json:"label"`
	Contributors map[string]map[string]*GateContribution `json:"contributors"`
	Gap          *GapAnalysis                            `json:"gap_analysis,omitempty"`
}

// Zone is the upper or lower half of the penta.
type Zone struct {
	Label    string                  `json:"label"`
	Channels map[string]*ChannelNode `json:"channels"`
}

// Meta describes the group itself.
type Meta struct {
	GroupSize   int    `json:"group_size"`
	PentaFormed bool   `json:"penta_formed"`
	PentaType   string `json:"penta_type"`
}

// Metrics carries the derived group scores.
type Metrics struct {
	StabilityScore    int               `json:"stability_score"`
	VisionScore       int               `json:"vision_score"`
	ActionScore       int               `json:"action_score"`
	Bottlenecks       []string          `json:"bottlenecks"`
	BackboneIntegrity map[string]string `json:"backbone_integrity"`
}

// Hiring suggests which missing gates to fill first.
type Hiring struct {
	UrgentNeeds []int  `json:"urgent_needs"`
	Insight     string `json:"insight"`
}

// Analysis is the complete penta reading of a group.
type Analysis struct {
	Meta            Meta                `json:"meta"`
	Metrics         Metrics             `json:"analytical_metrics"`
	FunctionalRoles map[string][]string `json:"functional_roles"`
	Anatomy         map[string]*Zone    `json:"penta_anatomy"`
	Hiring          Hiring              `json:"hiring_logic"`
}

// Analyze runs the penta analysis over one activation list per participant.
// Only the twelve penta gates are considered; everything else is ignored.
func Analyze(participants map[string][]domain.GateActivation, groupType string) *Analysis {
	ownership := newOwnership()
	for id, acts := range participants {
		for _, a := range acts {
			if _, ok := ownership[a.Gate]; !ok {
				continue
			}
			polarity := "Personality"
			if a.Label == domain.Design {
				polarity = "Design"
			}
			ownership[a.Gate] = append(ownership[a.Gate], owner{id: id, polarity: polarity, line: a.Line})
		}
	}
	return analyze(ownership, len(participants), groupType)
}

// AnalyzeGates is the reduced form taking bare gate lists. Lines and
// polarities come back zeroed.
func AnalyzeGates(participants map[string][]int, groupType string) *Analysis {
	ownership := newOwnership()
	for id, gates := range participants {
		for _, g := range gates {
			if _, ok := ownership[g]; !ok {
				continue
			}
			ownership[g] = append(ownership[g], owner{id: id, polarity: "Unknown"})
		}
	}
	return analyze(ownership, len(participants), groupType)
}

func newOwnership() map[int][]owner {
	m := make(map[int][]owner, len(tables.PentaGates))
	for _, g := range tables.PentaGates {
		m[g] = nil
	}
	return m
}

// dynamics classifies one channel from the owners of its two gates.
func dynamics(ownersG1, ownersG2 []owner) (Dynamic, string, []string) {
	setG1 := idSet(ownersG1)
	setG2 := idSet(ownersG2)
	if len(setG1) == 0 || len(setG2) == 0 {
		return DynamicVoid, "Inactive", nil
	}

	all := make(map[string]bool, len(setG1)+len(setG2))
	solo := make(map[string]bool)
	for id := range setG1 {
		all[id] = true
		if setG2[id] {
			solo[id] = true
		}
	}
	for id := range setG2 {
		all[id] = true
	}

	if len(solo) > 0 {
		if len(all) == 1 {
			return DynamicSolo, "Solo-Driven", sortedKeys(solo)
		}
		return DynamicMixed, "Mixed (Solo + EM)", sortedKeys(all)
	}
	if len(setG1) > 1 || len(setG2) > 1 {
		return DynamicFriction, "Electromagnetic with Friction", sortedKeys(all)
	}
	return DynamicEM, "Electromagnetic", sortedKeys(all)
}

func idSet(owners []owner) map[string]bool {
	s := make(map[string]bool, len(owners))
	for _, o := range owners {
		s[o.id] = true
	}
	return s
}

func sortedKeys(s map[string]bool) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func analyze(ownership map[int][]owner, groupSize int, groupType string) *Analysis {
	family := strings.EqualFold(groupType, GroupTypeFamily)
	skillCtx := "business"
	if family {
		skillCtx = GroupTypeFamily
	}

	anatomy := make(map[string]*Zone, len(tables.PentaZones))
	backbone := make(map[string]string, len(tables.PentaBackboneKeys))
	missingFreq := make(map[int]int, len(tables.PentaGates))
	bottlenecks := make(map[string]bool)
	roles := make(map[string][]string)
	upperActive, lowerActive, backboneActive := 0, 0, 0

	for _, zoneDef := range tables.PentaZones {
		zone := &Zone{Label: zoneDef.Label, Channels: make(map[string]*ChannelNode, len(zoneDef.Channels))}
		anatomy[zoneDef.Key] = zone

		for _, ch := range zoneDef.Channels {
			g1, g2 := ch.Gates[0], ch.Gates[1]
			ownersG1 := ownership[g1]
			ownersG2 := ownership[g2]

			code, label, drivers := dynamics(ownersG1, ownersG2)
			active := code != DynamicVoid

			node := &ChannelNode{
				Name:         ch.Name,
				ContextLabel: fmt.Sprintf("%s & %s", tables.PentaSkill(skillCtx, g1), tables.PentaSkill(skillCtx, g2)),
				Status:       "Inactive",
				Type:         code,
				Label:        label,
				Contributors: make(map[string]map[string]*GateContribution),
			}

			if active {
				node.Status = "Active"
				if zoneDef.Key == "upper_penta" {
					upperActive++
				} else {
					lowerActive++
				}
				if ch.Backbone {
					backboneActive++
					backbone[ch.Key] = "Strong"
				}

				players := make(map[string]bool)
				addContributors(node, g1, ownersG1, players)
				addContributors(node, g2, ownersG2, players)

				roles[ch.Name] = mergeSorted(roles[ch.Name], players)

				if code == DynamicSolo {
					for _, d := range drivers {
						bottlenecks[d] = true
					}
				}
			} else {
				if ch.Backbone {
					backbone[ch.Key] = "Missing"
				}
				gap := &GapAnalysis{Severity: "MODERATE", Impact: ch.GapMsg}
				if ch.Backbone {
					gap.Severity = "CRITICAL"
				}
				for _, g := range [2]int{g1, g2} {
					if len(ownership[g]) == 0 {
						gap.MissingGates = append(gap.MissingGates, g)
						gap.MissingSkills = append(gap.MissingSkills, tables.PentaSkill(skillCtx, g))
						gap.ShadowThemes = append(gap.ShadowThemes, tables.PentaShadow(skillCtx, g))
						missingFreq[g]++
					}
				}
				node.Gap = gap
			}

			zone.Channels[ch.Key] = node
		}
	}

	needs := make([]int, 0, len(missingFreq))
	for g := range missingFreq {
		if missingFreq[g] > 0 {
			needs = append(needs, g)
		}
	}
	sort.Ints(needs)
	sort.SliceStable(needs, func(i, j int) bool {
		return missingFreq[needs[i]] > missingFreq[needs[j]]
	})
	if len(needs) > 3 {
		needs = needs[:3]
	}

	dominant := "Action"
	visionScore := roundScore(upperActive)
	actionScore := roundScore(lowerActive)
	if visionScore > actionScore {
		dominant = "Vision"
	}

	return &Analysis{
		Meta: Meta{
			GroupSize:   groupSize,
			PentaFormed: groupSize >= 3 && groupSize <= 5,
			PentaType:   capitalize(groupType),
		},
		Metrics: Metrics{
			StabilityScore:    stabilityScores[backboneActive],
			VisionScore:       visionScore,
			ActionScore:       actionScore,
			Bottlenecks:       sortedKeys(bottlenecks),
			BackboneIntegrity: backbone,
		},
		FunctionalRoles: roles,
		Anatomy:         anatomy,
		Hiring: Hiring{
			UrgentNeeds: needs,
			Insight:     fmt.Sprintf("Group has %d/3 Backbone channels. %s dominates.", backboneActive, dominant),
		},
	}
}

var stabilityScores = map[int]int{3: 100, 2: 70, 1: 40, 0: 10}

func roundScore(active int) int {
	return int(float64(active)/3.0*100.0 + 0.5)
}

func addContributors(node *ChannelNode, gate int, owners []owner, players map[string]bool) {
	key := fmt.Sprintf("gate_%d", gate)
	for _, o := range owners {
		players[o.id] = true
		byGate, ok := node.Contributors[o.id]
		if !ok {
			byGate = make(map[string]*GateContribution)
			node.Contributors[o.id] = byGate
		}
		contrib, ok := byGate[key]
		if !ok {
			contrib = &GateContribution{}
			byGate[key] = contrib
		}
		contrib.Lines = append(contrib.Lines, o.line)
		if !contains(contrib.Polarities, o.polarity) {
			contrib.Polarities = append(contrib.Polarities, o.polarity)
		}
		contrib.LineLabels = append(contrib.LineLabels, tables.PentaLineKeyword(o.line))
	}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func mergeSorted(existing []string, players map[string]bool) []string {
	for _, p := range existing {
		players[p] = true
	}
	return sortedKeys(players)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
