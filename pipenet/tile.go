package pipenet

import (
	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
)

// Tile is one rotatable pipe segment. Tiles live in their Network's arena and
// reference neighbors by TileID only.
type Tile struct {
	id          TileID
	name        string
	pos         Position
	base        cardinal.Cardinal
	orientation int
	conns       cardinal.Cardinal
	input       InputPort
	output      cardinal.Cardinal
	contained   gas.Gas
	neighbors   [4]TileID // indexed by cardinal.Cardinal.Index
	observers   []RotatedFunc
}

// newTile builds a tile from its spec. It reports false when the initial
// orientation was out of range and has been reset to 0.
func newTile(id TileID, s TileSpec) (Tile, bool) {
	t := Tile{
		id:        id,
		name:      s.Name,
		pos:       s.Position,
		base:      s.Base & cardinal.All,
		conns:     s.Base & cardinal.All,
		output:    s.Output & cardinal.All,
		neighbors: [4]TileID{NoTile, NoTile, NoTile, NoTile},
	}
	if s.Input != nil {
		t.input = InputPort{Side: s.Input.Side & cardinal.All, Gas: s.Input.Gas}
	}
	if s.Orientation < 0 || s.Orientation > 3 {
		return t, false
	}
	// No observers yet: the initial turns are silent.
	for t.orientation < s.Orientation {
		t.turn()
	}
	return t, true
}

// turn advances orientation by one quarter and re-derives the open sides.
func (t *Tile) turn() {
	t.orientation = (t.orientation + 1) % 4
	t.conns = cardinal.Clockwise(t.conns)
}

// RotateClockwise turns the tile a quarter clockwise and notifies every
// subscriber, which includes the owning Network.
func (t *Tile) RotateClockwise() {
	t.turn()
	for _, fn := range t.observers {
		fn(t.id, t.orientation)
	}
}

// Subscribe registers fn to be called after every RotateClockwise.
// Subscribers run in registration order; the Network is always first.
func (t *Tile) Subscribe(fn RotatedFunc) {
	if fn != nil {
		t.observers = append(t.observers, fn)
	}
}

// clear resets the gas content at the start of a pass.
func (t *Tile) clear() {
	t.contained = gas.None
}

// ID returns the tile's index in its network.
func (t *Tile) ID() TileID { return t.id }

// Name returns the tile's name, possibly empty.
func (t *Tile) Name() string { return t.name }

// Position returns the tile's level-space position.
func (t *Tile) Position() Position { return t.pos }

// Base returns the open sides at orientation 0.
func (t *Tile) Base() cardinal.Cardinal { return t.base }

// Orientation returns the number of clockwise quarter turns, 0..3.
func (t *Tile) Orientation() int { return t.orientation }

// Connections returns the currently open sides: Base rotated Orientation times.
func (t *Tile) Connections() cardinal.Cardinal { return t.conns }

// Input returns the input port and whether the tile has an effective one.
func (t *Tile) Input() (InputPort, bool) { return t.input, t.HasInput() }

// HasInput reports whether the tile injects gas.
func (t *Tile) HasInput() bool {
	return t.input.Side != cardinal.None && t.input.Gas != gas.None
}

// Output returns the output side, or cardinal.None.
func (t *Tile) Output() cardinal.Cardinal { return t.output }

// HasOutput reports whether the tile reports its gas as network output.
func (t *Tile) HasOutput() bool { return t.output != cardinal.None }

// Gas returns the gas present on the tile after the last pass.
func (t *Tile) Gas() gas.Gas { return t.contained }

// Neighbor returns the tile adjacent on side d. d must be a single side.
func (t *Tile) Neighbor(d cardinal.Cardinal) (TileID, bool) {
	id := t.neighbors[d.Index()]
	return id, id != NoTile
}

// inputOpen reports whether the input port is present and currently open.
func (t *Tile) inputOpen() bool {
	return t.HasInput() && t.conns.Has(t.input.Side)
}

// outputOpen reports whether the output port is present and currently open.
func (t *Tile) outputOpen() bool {
	return t.HasOutput() && t.conns.Has(t.output)
}

// state copies the mutable part of the tile.
func (t *Tile) state() TileState {
	return TileState{
		ID:          t.id,
		Name:        t.name,
		Orientation: t.orientation,
		Connections: t.conns,
		Gas:         t.contained,
	}
}
