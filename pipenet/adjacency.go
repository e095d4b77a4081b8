package pipenet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pipeflow/cardinal"
)

// link fills every tile's neighbor table from positions. It runs once, in New.
//
// For each unordered pair the offset is rounded per axis. Coincident tiles are
// reported and skipped, diagonal offsets are skipped, and an offset on one
// axis within the threshold links both tiles on facing sides. When a side has
// several candidates the nearest wins; ties keep the lower id.
//
// Complexity: O(N²) time, O(N) extra memory.
func (n *Network) link() {
	dist := make([][4]float64, len(n.tiles))
	for a := range n.tiles {
		for b := a + 1; b < len(n.tiles); b++ {
			side, d, ok := n.sideOf(TileID(a), TileID(b))
			if !ok {
				continue
			}
			n.attach(TileID(a), TileID(b), side, d, dist)
			n.attach(TileID(b), TileID(a), side.Opposite(), d, dist)
		}
	}
}

// sideOf returns the side of a that faces b and their distance, or false when
// the pair is not adjacent.
func (n *Network) sideOf(a, b TileID) (cardinal.Cardinal, float64, bool) {
	pa, pb := n.tiles[a].pos, n.tiles[b].pos
	dx := math.Round(pb.X - pa.X)
	dy := math.Round(pb.Y - pa.Y)
	limit := n.opts.AdjacencyThreshold

	switch {
	case dx == 0 && dy == 0:
		n.warn(Warning{
			Kind:   WarnOverlap,
			Tile:   a,
			Other:  b,
			Detail: fmt.Sprintf("both at (%g,%g)", pa.X, pa.Y),
		})
		return cardinal.None, 0, false
	case dx != 0 && dy != 0:
		return cardinal.None, 0, false
	case dy != 0:
		if math.Abs(dy) > limit {
			return cardinal.None, 0, false
		}
		if dy > 0 {
			return cardinal.North, dy, true
		}
		return cardinal.South, -dy, true
	default:
		if math.Abs(dx) > limit {
			return cardinal.None, 0, false
		}
		if dx > 0 {
			return cardinal.East, dx, true
		}
		return cardinal.West, -dx, true
	}
}

// attach records to as from's neighbor on side unless a nearer one is known.
// dist tracks the distance of the current neighbor per tile and side.
func (n *Network) attach(from, to TileID, side cardinal.Cardinal, d float64, dist [][4]float64) {
	k := side.Index()
	cur := n.tiles[from].neighbors[k]
	switch {
	case cur == NoTile || d < dist[from][k]:
		n.tiles[from].neighbors[k] = to
		dist[from][k] = d
	case d == dist[from][k]:
		n.warn(Warning{
			Kind:   WarnAmbiguousNeighbor,
			Tile:   from,
			Other:  to,
			Detail: fmt.Sprintf("%s side already linked to %s", side, n.label(cur)),
		})
	}
}
