package pipenet

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pipeflow/gas"
)

// New builds a Network from specs, derives the neighbor table, subscribes to
// every tile's rotation and runs the first evaluation pass.
//
// An empty specs slice is valid and yields a network whose output is None.
// Returns ErrOptionViolation for invalid options and ErrDuplicateName when two
// tiles share a non-empty name.
//
// Complexity: O(N²) for the adjacency scan plus one pass.
func New(specs []TileSpec, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := &Network{
		tiles:  make([]Tile, len(specs)),
		byName: make(map[string]TileID, len(specs)),
		opts:   o,
		log:    o.Logger,
	}
	for i, s := range specs {
		id := TileID(i)
		if s.Name != "" {
			if prev, dup := n.byName[s.Name]; dup {
				return nil, fmt.Errorf("%w: %q (tiles %d and %d)", ErrDuplicateName, s.Name, prev, id)
			}
			n.byName[s.Name] = id
		}
		t, ok := newTile(id, s)
		n.tiles[i] = t
		if !ok {
			n.warn(Warning{
				Kind:   WarnOrientation,
				Tile:   id,
				Other:  NoTile,
				Detail: fmt.Sprintf("invalid initial orientation %d, using 0", s.Orientation),
			})
		}
	}

	n.link()

	for i := range n.tiles {
		t := &n.tiles[i]
		if t.HasInput() {
			n.inputs = append(n.inputs, t.id)
		}
		if t.HasOutput() {
			n.outputs = append(n.outputs, t.id)
		}
		t.Subscribe(n.onTileRotated)
	}

	n.Reevaluate()
	return n, nil
}

// onTileRotated is every tile's first rotation subscriber.
func (n *Network) onTileRotated(id TileID, orientation int) {
	n.log.Debug("pipe tile rotated", "tile", n.label(id), "orientation", orientation)
	n.Reevaluate()
}

// Output returns the gas reaching any open output port in the last completed
// pass. It is None before the first pass and whenever nothing reaches an output.
func (n *Network) Output() gas.Gas {
	return n.output
}

// Passes returns the number of completed evaluation passes.
func (n *Network) Passes() int {
	return n.passes
}

// Len returns the number of tiles.
func (n *Network) Len() int {
	return len(n.tiles)
}

// Tile returns the tile with the given id.
func (n *Network) Tile(id TileID) (*Tile, error) {
	if id < 0 || int(id) >= len(n.tiles) {
		return nil, fmt.Errorf("%w: id %d", ErrTileNotFound, id)
	}
	return &n.tiles[id], nil
}

// TileByName returns the tile with the given name.
func (n *Network) TileByName(name string) (*Tile, error) {
	id, ok := n.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: name %q", ErrTileNotFound, name)
	}
	return &n.tiles[id], nil
}

// Tiles returns pointers to every tile in id order. The tiles stay owned by
// the network; only RotateClockwise and Subscribe mutate them.
func (n *Network) Tiles() []*Tile {
	out := make([]*Tile, len(n.tiles))
	for i := range n.tiles {
		out[i] = &n.tiles[i]
	}
	return out
}

// Inputs returns the ids of tiles with an effective input port.
func (n *Network) Inputs() []TileID {
	return append([]TileID(nil), n.inputs...)
}

// Outputs returns the ids of tiles with an output port.
func (n *Network) Outputs() []TileID {
	return append([]TileID(nil), n.outputs...)
}

// Rotate turns tile id a quarter clockwise; the network re-evaluates before
// Rotate returns.
func (n *Network) Rotate(id TileID) error {
	t, err := n.Tile(id)
	if err != nil {
		return err
	}
	t.RotateClockwise()
	return nil
}

// RotateByName is Rotate addressed by tile name.
func (n *Network) RotateByName(name string) error {
	t, err := n.TileByName(name)
	if err != nil {
		return err
	}
	t.RotateClockwise()
	return nil
}

// Snapshot copies the orientation, open sides and gas of every tile.
func (n *Network) Snapshot() []TileState {
	out := make([]TileState, len(n.tiles))
	for i := range n.tiles {
		out[i] = n.tiles[i].state()
	}
	return out
}

// Warnings returns the integrity warnings raised while building the network.
func (n *Network) Warnings() []Warning {
	return append([]Warning(nil), n.warnings...)
}

// warn records w and logs it.
func (n *Network) warn(w Warning) {
	n.warnings = append(n.warnings, w)
	attrs := []any{"kind", w.Kind.String(), "tile", n.label(w.Tile)}
	if w.Other != NoTile {
		attrs = append(attrs, "other", n.label(w.Other))
	}
	attrs = append(attrs, "detail", w.Detail)
	n.log.Warn("pipe network integrity", attrs...)
}

// label names a tile for logs: its name, or "#id" when unnamed.
func (n *Network) label(id TileID) string {
	if id >= 0 && int(id) < len(n.tiles) && n.tiles[id].name != "" {
		return n.tiles[id].name
	}
	return "#" + strconv.Itoa(int(id))
}
