package pipenet

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipeflow/cardinal"
)

// openToward returns the neighbor on side d when the pipe between the two
// tiles is open on both ends.
func (n *Network) openToward(id TileID, d cardinal.Cardinal) (TileID, bool) {
	t := &n.tiles[id]
	nb := t.neighbors[d.Index()]
	if nb == NoTile || !t.conns.Has(d) || !n.tiles[nb].conns.Has(d.Opposite()) {
		return NoTile, false
	}
	return nb, true
}

// OpenLinks lists every neighbor pair whose pipe is currently open on both
// ends. Each pair appears once with A < B, ordered by A then side.
//
// Complexity: O(N).
func (n *Network) OpenLinks() []Link {
	var links []Link
	for i := range n.tiles {
		a := TileID(i)
		for _, d := range cardinal.Directions() {
			b, ok := n.openToward(a, d)
			if !ok || b < a {
				continue
			}
			links = append(links, Link{A: a, B: b, Side: d})
		}
	}
	return links
}

// Reachable returns the ids of every tile joined to from by open pipes,
// from included, in ascending order. This is where gas injected at from can
// travel under the current orientations.
//
// Complexity: O(N) time and memory.
func (n *Network) Reachable(from TileID) ([]TileID, error) {
	if _, err := n.Tile(from); err != nil {
		return nil, err
	}
	seen := mapset.New[TileID]()
	comp := n.collect(from, seen)
	slices.Sort(comp)
	return comp, nil
}

// Components groups tiles into maximal sets joined by open pipes. Tiles with
// no open link form singleton groups. Groups are ordered by their lowest id
// and each group is sorted ascending.
//
// Complexity: O(N) time and memory.
func (n *Network) Components() [][]TileID {
	seen := mapset.New[TileID]()
	var comps [][]TileID
	for i := range n.tiles {
		if seen.Has(TileID(i)) {
			continue
		}
		comp := n.collect(TileID(i), seen)
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps
}

// collect runs a BFS over open links from start, marking tiles in seen.
func (n *Network) collect(start TileID, seen mapset.Set[TileID]) []TileID {
	queue := []TileID{start}
	seen.Put(start)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range cardinal.Directions() {
			v, ok := n.openToward(u, d)
			if !ok || seen.Has(v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return queue
}
