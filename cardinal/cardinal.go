package cardinal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCardinal indicates a direction name that Parse does not recognize.
var ErrUnknownCardinal = errors.New("cardinal: unknown direction")

// Cardinal is a set of compass sides. Each side occupies its own bit.
type Cardinal uint8

const (
	// None is the empty set: no side is open.
	None Cardinal = 0
	// North is the +Y side.
	North Cardinal = 1 << 0
	// East is the +X side.
	East Cardinal = 1 << 1
	// South is the -Y side.
	South Cardinal = 1 << 2
	// West is the -X side.
	West Cardinal = 1 << 3
	// All is the set of all four sides.
	All = North | East | South | West
)

// directions lists the sides in clockwise order starting at North.
var directions = [4]Cardinal{North, East, South, West}

// Directions returns the four single sides in clockwise order starting at North.
func Directions() [4]Cardinal {
	return directions
}

// Clockwise rotates every side in c by 90° clockwise (N→E→S→W→N).
func Clockwise(c Cardinal) Cardinal {
	c &= All
	return (c<<1 | c>>3) & All
}

// Counterclockwise rotates every side in c by 90° counterclockwise.
func Counterclockwise(c Cardinal) Cardinal {
	c &= All
	return (c>>1 | c<<3) & All
}

// Opposite rotates every side in c by 180°.
func Opposite(c Cardinal) Cardinal {
	return Clockwise(Clockwise(c))
}

// Rotate applies steps clockwise quarter turns to c. Negative steps turn
// counterclockwise; steps are taken mod 4.
func Rotate(c Cardinal, steps int) Cardinal {
	steps %= 4
	if steps < 0 {
		steps += 4
	}
	for i := 0; i < steps; i++ {
		c = Clockwise(c)
	}
	return c & All
}

// Clockwise is the method form of Clockwise.
func (c Cardinal) Clockwise() Cardinal { return Clockwise(c) }

// Counterclockwise is the method form of Counterclockwise.
func (c Cardinal) Counterclockwise() Cardinal { return Counterclockwise(c) }

// Opposite is the method form of Opposite.
func (c Cardinal) Opposite() Cardinal { return Opposite(c) }

// Has reports whether every side in other is also in c.
// Has(None) is always true.
func (c Cardinal) Has(other Cardinal) bool {
	return c&other == other
}

// Count returns the number of sides in c.
func (c Cardinal) Count() int {
	n := 0
	for _, d := range directions {
		if c&d != 0 {
			n++
		}
	}
	return n
}

// IsSingle reports whether c holds exactly one side.
func (c Cardinal) IsSingle() bool {
	return c.Count() == 1 && c&^All == 0
}

// Members returns the sides contained in c, in clockwise order from North.
func (c Cardinal) Members() []Cardinal {
	out := make([]Cardinal, 0, 4)
	for _, d := range directions {
		if c&d != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Index returns the position of a single side in clockwise order (North=0).
// It panics if c is not exactly one side: callers only ever pass values
// taken from Directions or Members.
func (c Cardinal) Index() int {
	switch c {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	}
	panic(fmt.Sprintf("cardinal: Index of non-single value %08b", uint8(c)))
}

// Delta returns the unit step (dx, dy) for a single side, with +Y pointing
// North. It panics if c is not exactly one side.
func (c Cardinal) Delta() (dx, dy int) {
	switch c {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("cardinal: Delta of non-single value %08b", uint8(c)))
}

// String renders c as "North|East", or "None" for the empty set.
func (c Cardinal) String() string {
	if c&All == None {
		return "None"
	}
	parts := make([]string, 0, 4)
	for _, d := range c.Members() {
		parts = append(parts, names[d.Index()])
	}
	return strings.Join(parts, "|")
}

var names = [4]string{"North", "East", "South", "West"}

// Parse reads a set of sides. Tokens may be full names or their first
// letter, in any case, separated by '|', ',' or whitespace. The empty string
// and "None" both yield None.
func Parse(s string) (Cardinal, error) {
	var out Cardinal
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "n", "north":
			out |= North
		case "e", "east":
			out |= East
		case "s", "south":
			out |= South
		case "w", "west":
			out |= West
		case "none":
		default:
			return None, fmt.Errorf("%w: %q", ErrUnknownCardinal, f)
		}
	}
	return out, nil
}
