// Package wheel maps ecliptic longitudes onto the gate wheel and its nested
// line, color, tone and base subdivisions.
package wheel

import (
	"math"

	"bodygraph/internal/tables"
)

// Position is the full wheel placement of one longitude. Line, Color and
// Tone run 1..6, Base 1..5.
type Position struct {
	Longitude float64 `json:"longitude"`
	Gate      int     `json:"gate"`
	Line      int     `json:"line"`
	Color     int     `json:"color"`
	Tone      int     `json:"tone"`
	Base      int     `json:"base"`
}

// Normalize wraps a longitude into [0, 360).
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// Opposite returns the longitude 180° across the wheel, used to derive the
// Earth from the Sun and the South Node from the North Node.
func Opposite(deg float64) float64 {
	return Normalize(deg + 180)
}

// Map places a tropical longitude on the gate wheel. Each subdivision is a
// pure floor of the fractional position, so placements are exact at sector
// boundaries: the lower bound of a sector belongs to that sector.
func Map(longitude float64) Position {
	angle := Normalize(longitude + tables.WheelOffset)
	p := angle / 360

	sector := int(p * tables.SectorsPerWheel)
	if sector >= tables.SectorsPerWheel {
		sector = tables.SectorsPerWheel - 1
	}

	return Position{
		Longitude: longitude,
		Gate:      tables.GateAt(sector),
		Line:      int(math.Mod(p*64*6, 6)) + 1,
		Color:     int(math.Mod(p*64*6*6, 6)) + 1,
		Tone:      int(math.Mod(p*64*6*6*6, 6)) + 1,
		Base:      int(math.Mod(p*64*6*6*6*5, 5)) + 1,
	}
}

// GateLineLongitude returns the longitude at the midpoint of a gate's line.
// It inverts Map for fixture construction and boundary reasoning.
func GateLineLongitude(gate, line int) (float64, bool) {
	idx, ok := tables.WheelIndexOf(gate)
	if !ok || line < 1 || line > tables.LinesPerGate {
		return 0, false
	}
	p := (float64(idx) + (float64(line)-0.5)/tables.LinesPerGate) / tables.SectorsPerWheel
	return Normalize(p*360 - tables.WheelOffset), true
}

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// ZodiacSign names the tropical sign a longitude falls in.
func ZodiacSign(longitude float64) string {
	i := int(Normalize(longitude) / 30)
	if i > 11 {
		i = 11
	}
	return zodiacSigns[i]
}
