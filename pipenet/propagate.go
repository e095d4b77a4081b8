package pipenet

import (
	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
)

// Reevaluate clears every tile and replays gas from every input tile until the
// fixpoint is reached, then publishes the pass result as Output.
//
// A rotation that happens while a pass is running (for example from an
// OnGasChange hook) does not start a nested pass: the current pass finishes
// and is then repeated, so callers only ever observe complete passes.
func (n *Network) Reevaluate() {
	if n.evaluating {
		n.stale = true
		return
	}
	n.evaluating = true
	defer func() { n.evaluating = false }()

	for {
		n.stale = false
		n.pass(n.inputs)
		if !n.stale {
			return
		}
	}
}

// pass runs one reset-and-replay visiting input tiles in the given order.
func (n *Network) pass(order []TileID) {
	n.pending = gas.None
	for i := range n.tiles {
		n.tiles[i].clear()
	}
	for _, id := range order {
		n.acceptInput(id)
	}
	n.output = n.pending
	n.passes++

	n.log.Debug("pipe output", "output", n.output.String(), "pass", n.passes)
	if n.opts.OnEvaluated != nil {
		n.opts.OnEvaluated(n.output, n.passes)
	}
}

// acceptInput injects the tile's input gas when its input side is open and
// forwards the tile's content.
func (n *Network) acceptInput(id TileID) {
	t := &n.tiles[id]
	if !t.inputOpen() {
		return
	}
	before := t.contained
	t.contained |= t.input.Gas
	if t.contained != before {
		n.changed(id, before, t.contained)
	}
	n.propagate(id)
}

// addGas merges g into the tile and forwards only on strict growth. That
// guard is what terminates propagation around closed loops.
func (n *Network) addGas(id TileID, g gas.Gas) {
	t := &n.tiles[id]
	before := t.contained
	after := before | g
	if after == before {
		return
	}
	t.contained = after
	n.changed(id, before, after)
	n.propagate(id)
}

// propagate pushes the tile's gas to every neighbor it shares an open pipe
// with, and reports it as output when the output side is open.
func (n *Network) propagate(id TileID) {
	t := &n.tiles[id]
	for k, d := range cardinal.Directions() {
		nb := t.neighbors[k]
		if nb == NoTile || !t.conns.Has(d) {
			continue
		}
		if !n.tiles[nb].conns.Has(d.Opposite()) {
			continue
		}
		n.addGas(nb, t.contained)
	}
	if t.outputOpen() {
		n.pending |= t.contained
	}
}

func (n *Network) changed(id TileID, before, after gas.Gas) {
	if n.opts.OnGasChange != nil {
		n.opts.OnGasChange(id, before, after)
	}
}
