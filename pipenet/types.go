package pipenet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
)

// TileID addresses a tile inside its Network. IDs are dense (0..Len()-1) and
// follow the order of the specs passed to New.
type TileID int

// NoTile marks an empty neighbor slot.
const NoTile TileID = -1

// Position is a tile's location in level space. +X is East, +Y is North.
type Position struct {
	X, Y float64
}

// InputPort injects Gas into its tile whenever the tile is open on Side.
type InputPort struct {
	Side cardinal.Cardinal
	Gas  gas.Gas
}

// TileSpec is the static construction data of one tile.
type TileSpec struct {
	// Name is optional; non-empty names must be unique within a network.
	Name     string
	Position Position
	// Base is the set of open sides at orientation 0.
	Base cardinal.Cardinal
	// Orientation is the number of clockwise quarter turns applied at start.
	// Values outside 0..3 raise WarnOrientation and are treated as 0.
	Orientation int
	// Input is nil for plain tiles. A port with Side or Gas None is ignored.
	Input *InputPort
	// Output is the side whose openness reports this tile's gas as network
	// output; None means the tile has no output port.
	Output cardinal.Cardinal
}

// RotatedFunc observes a tile rotation. orientation is the value after the turn.
type RotatedFunc func(id TileID, orientation int)

// WarningKind classifies a layout integrity problem.
type WarningKind int

const (
	// WarnOrientation: initial orientation outside 0..3, treated as 0.
	WarnOrientation WarningKind = iota + 1
	// WarnOverlap: two tiles share a position; the pair is not linked.
	WarnOverlap
	// WarnAmbiguousNeighbor: two candidates at the same distance on one side;
	// the lower id is kept.
	WarnAmbiguousNeighbor
)

func (k WarningKind) String() string {
	switch k {
	case WarnOrientation:
		return "orientation"
	case WarnOverlap:
		return "overlap"
	case WarnAmbiguousNeighbor:
		return "ambiguous-neighbor"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal layout integrity problem found during New.
type Warning struct {
	Kind   WarningKind
	Tile   TileID
	Other  TileID // NoTile when the warning concerns a single tile
	Detail string
}

func (w Warning) String() string {
	if w.Other == NoTile {
		return fmt.Sprintf("%s: tile %d: %s", w.Kind, w.Tile, w.Detail)
	}
	return fmt.Sprintf("%s: tiles %d,%d: %s", w.Kind, w.Tile, w.Other, w.Detail)
}

// TileState is a read-only copy of a tile's mutable state.
type TileState struct {
	ID          TileID
	Name        string
	Orientation int
	Connections cardinal.Cardinal
	Gas         gas.Gas
}

// Link is an unordered pair of neighbors; Side is the side of A facing B.
type Link struct {
	A, B TileID
	Side cardinal.Cardinal
}

// Network owns a set of tiles and their neighbor table, and keeps the output
// of the latest evaluation pass.
type Network struct {
	tiles   []Tile
	byName  map[string]TileID
	inputs  []TileID
	outputs []TileID

	output  gas.Gas // result of the last completed pass
	pending gas.Gas // accumulator of the pass in progress
	passes  int

	evaluating bool
	stale      bool

	warnings []Warning
	opts     Options
	log      *slog.Logger
}
