package gas

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrUnknownGas indicates a gas name that Parse does not recognize.
var ErrUnknownGas = errors.New("gas: unknown gas")

// Gas is a set of gas flags.
type Gas uint16

// The universe of gases. Bit 0 is unused so the values line up with the
// level data authored for the puzzle.
const (
	None     Gas = 0
	Xenon    Gas = 1 << 1
	Argon    Gas = 1 << 2
	Oxygen   Gas = 1 << 3
	Radon    Gas = 1 << 4
	Chlorine Gas = 1 << 5
	Uranium  Gas = 1 << 6
	Fire     Gas = 1 << 7

	All = Xenon | Argon | Oxygen | Radon | Chlorine | Uranium | Fire
)

var flags = [...]struct {
	g    Gas
	name string
}{
	{Xenon, "Xenon"},
	{Argon, "Argon"},
	{Oxygen, "Oxygen"},
	{Radon, "Radon"},
	{Chlorine, "Chlorine"},
	{Uranium, "Uranium"},
	{Fire, "Fire"},
}

// Universe returns every single gas flag in declaration order.
func Universe() []Gas {
	out := make([]Gas, len(flags))
	for i, f := range flags {
		out[i] = f.g
	}
	return out
}

// Union returns g combined with every set in others.
func (g Gas) Union(others ...Gas) Gas {
	for _, o := range others {
		g |= o
	}
	return g
}

// Has reports whether g contains the single flag f (or every flag of f).
func (g Gas) Has(f Gas) bool {
	return g&f == f
}

// Contains is Has under its set-theoretic name: g ⊇ other.
func (g Gas) Contains(other Gas) bool {
	return g.Has(other)
}

// IsNone reports whether g is the empty set.
func (g Gas) IsNone() bool {
	return g == None
}

// Count returns the number of flags in g.
func (g Gas) Count() int {
	return bits.OnesCount16(uint16(g & All))
}

// Flags returns the single flags present in g, in declaration order.
func (g Gas) Flags() []Gas {
	out := make([]Gas, 0, g.Count())
	for _, f := range flags {
		if g&f.g != 0 {
			out = append(out, f.g)
		}
	}
	return out
}

// String renders g as "Xenon|Oxygen", or "None" for the empty set.
func (g Gas) String() string {
	if g&All == None {
		return "None"
	}
	parts := make([]string, 0, g.Count())
	for _, f := range flags {
		if g&f.g != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Parse reads a gas set from names separated by '|', ',' or whitespace.
// Matching is case-insensitive; "" and "None" yield None.
func Parse(s string) (Gas, error) {
	var out Gas
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t'
	})
next:
	for _, field := range fields {
		if strings.EqualFold(field, "none") {
			continue
		}
		for _, f := range flags {
			if strings.EqualFold(field, f.name) {
				out |= f.g
				continue next
			}
		}
		return None, fmt.Errorf("%w: %q", ErrUnknownGas, field)
	}
	return out, nil
}
