// Package enrichment attaches semantic labels to gate activations from a
// read-only reference store.
package enrichment

import (
	"context"
	"strings"

	"bodygraph/internal/domain"
)

//go:generate mockgen -source=enrichment.go -destination=mocks/mocks.go -package=mocks

// GateInfo is the reference record of one gate.
type GateInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// LineInfo is the reference record of one gate line.
type LineInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Store serves reference labels. Misses come back as not-found errors.
type Store interface {
	GateLabel(ctx context.Context, gate int) (GateInfo, error)
	LineLabel(ctx context.Context, gate, line int) (LineInfo, error)
}

// Fixation marks a planetary exaltation or detriment parsed from the line
// description.
type Fixation struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Enrichment is the full label set for one activation.
type Enrichment struct {
	GateName        string    `json:"gate_name"`
	GateSummary     string    `json:"gate_summary"`
	LineName        string    `json:"line_name"`
	LineDescription string    `json:"line_description"`
	Fixation        *Fixation `json:"fixation,omitempty"`
}

// Enrich labels one activation. Store misses degrade to placeholder labels
// rather than failing the chart.
func Enrich(ctx context.Context, store Store, act domain.GateActivation) (Enrichment, error) {
	if err := ctx.Err(); err != nil {
		return Enrichment{}, err
	}

	e := Enrichment{}
	gate, err := store.GateLabel(ctx, act.Gate)
	if err == nil {
		e.GateName = gate.Name
		e.GateSummary = gate.Summary
	}
	line, err := store.LineLabel(ctx, act.Gate, act.Line)
	if err == nil {
		e.LineName = line.Name
		e.LineDescription = line.Description
		e.Fixation = parseFixation(line.Description, string(act.Body))
	}
	return e, nil
}

// parseFixation looks for the body's exaltation or detriment in the line
// text. Heuristic until a structured table exists.
func parseFixation(description, body string) *Fixation {
	if description == "" {
		return nil
	}
	desc := strings.ToLower(description)
	name := strings.ToLower(strings.ReplaceAll(body, "_", " "))

	if strings.Contains(desc, name+" exalted") || strings.Contains(desc, name+" as a symbol of") {
		return &Fixation{Type: "Exalted", Value: "Up"}
	}
	if strings.Contains(desc, name+" in detriment") || strings.Contains(desc, "detriment of "+name) {
		return &Fixation{Type: "Detriment", Value: "Down"}
	}
	return nil
}
