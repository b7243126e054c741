// Package tables holds the fixed gate-wheel, channel, cross and penta lookup
// data everything else derives from. All values are built once at package
// init; nothing here is mutated after that.
package tables

// WheelOffset aligns the gate wheel with the tropical zodiac. The wheel
// starts at gate 41, 58° before 0° Aries.
const WheelOffset = 58.0

// SectorsPerWheel is the number of gates on the wheel.
const SectorsPerWheel = 64

// LinesPerGate is the number of line subdivisions inside one gate.
const LinesPerGate = 6

// gateCircle lists the 64 gates in wheel order starting at the offset point.
var gateCircle = [SectorsPerWheel]int{
	41, 19, 13, 49, 30, 55, 37, 63, 22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35, 45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64, 47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5, 26, 11, 10, 58, 38, 54, 61, 60,
}

// wheelIndex inverts gateCircle.
var wheelIndex = func() map[int]int {
	idx := make(map[int]int, SectorsPerWheel)
	for i, g := range gateCircle {
		idx[g] = i
	}
	return idx
}()

// GateAt returns the gate occupying wheel sector i, 0 <= i < 64.
func GateAt(i int) int {
	return gateCircle[i]
}

// WheelIndexOf returns the wheel sector of a gate.
func WheelIndexOf(gate int) (int, bool) {
	i, ok := wheelIndex[gate]
	return i, ok
}

// GateCircle returns a copy of the full wheel ordering.
func GateCircle() []int {
	out := make([]int, SectorsPerWheel)
	copy(out[:], gateCircle[:])
	return out
}
