package pipenet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
	"github.com/katalvlaran/pipeflow/pipenet"
)

// TestRotateClockwise_Cycle checks that four turns restore every base mask
// and that the open sides always equal the base rotated by the orientation.
func TestRotateClockwise_Cycle(t *testing.T) {
	for base := cardinal.None; base <= cardinal.All; base++ {
		for start := 0; start < 4; start++ {
			net := mustNew(t, []pipenet.TileSpec{{Base: base, Orientation: start}})
			tile, err := net.Tile(0)
			require.NoError(t, err)

			origConns, origOrient := tile.Connections(), tile.Orientation()
			require.Equal(t, start, origOrient)
			for i := 0; i < 4; i++ {
				tile.RotateClockwise()
				require.Equal(t, cardinal.Rotate(tile.Base(), tile.Orientation()), tile.Connections())
			}
			assert.Equal(t, origConns, tile.Connections(), "base %v start %d", base, start)
			assert.Equal(t, origOrient, tile.Orientation())
			assert.Equal(t, base, tile.Base())
		}
	}
}

func TestInitialOrientation(t *testing.T) {
	net := mustNew(t, []pipenet.TileSpec{
		{Name: "elbow", Base: N | E, Orientation: 3},
		{Name: "bad", Base: N | E, Orientation: 7, Position: pipenet.Position{X: 10}},
		{Name: "neg", Base: N, Orientation: -1, Position: pipenet.Position{X: 20}},
	})

	elbow := mustTile(t, net, "elbow")
	assert.Equal(t, 3, elbow.Orientation())
	assert.Equal(t, N|W, elbow.Connections())

	bad := mustTile(t, net, "bad")
	assert.Equal(t, 0, bad.Orientation())
	assert.Equal(t, N|E, bad.Connections())

	ws := net.Warnings()
	require.Len(t, ws, 2)
	for _, w := range ws {
		assert.Equal(t, pipenet.WarnOrientation, w.Kind)
		assert.Equal(t, pipenet.NoTile, w.Other)
	}
	assert.Equal(t, pipenet.TileID(1), ws[0].Tile)
	assert.Equal(t, pipenet.TileID(2), ws[1].Tile)
}

// TestSubscribe verifies observers see the post-turn orientation after the
// network has already re-evaluated.
func TestSubscribe(t *testing.T) {
	net := mustNew(t, lineSpecs(gas.Xenon))
	mid := mustTile(t, net, "mid")

	var seen []int
	var outputs []gas.Gas
	mid.Subscribe(func(id pipenet.TileID, orientation int) {
		assert.Equal(t, mid.ID(), id)
		seen = append(seen, orientation)
		outputs = append(outputs, net.Output())
	})
	mid.Subscribe(nil)

	for i := 0; i < 4; i++ {
		mid.RotateClockwise()
	}
	assert.Equal(t, []int{1, 2, 3, 0}, seen)
	assert.Equal(t, []gas.Gas{gas.None, gas.Xenon, gas.None, gas.Xenon}, outputs)
}

func TestPorts(t *testing.T) {
	net := mustNew(t, []pipenet.TileSpec{
		source("in", 0, 0, E, E, gas.Oxygen),
		{Name: "noside", Position: at(5, 5), Base: E, Input: &pipenet.InputPort{Gas: gas.Oxygen}},
		{Name: "nogas", Position: at(8, 8), Base: E, Input: &pipenet.InputPort{Side: E}},
		sink("out", 1, 0, W, W),
	})

	in := mustTile(t, net, "in")
	port, ok := in.Input()
	assert.True(t, ok)
	assert.Equal(t, pipenet.InputPort{Side: E, Gas: gas.Oxygen}, port)
	assert.False(t, in.HasOutput())

	assert.False(t, mustTile(t, net, "noside").HasInput())
	assert.False(t, mustTile(t, net, "nogas").HasInput())

	out := mustTile(t, net, "out")
	assert.True(t, out.HasOutput())
	assert.Equal(t, W, out.Output())

	assert.Equal(t, []pipenet.TileID{0}, net.Inputs())
	assert.Equal(t, []pipenet.TileID{3}, net.Outputs())
}

// TestInputClosed checks that a source whose input side is turned away
// injects nothing.
func TestInputClosed(t *testing.T) {
	specs := lineSpecs(gas.Argon)
	specs[0].Base = E | N
	net := mustNew(t, specs)
	assert.Equal(t, gas.Argon, net.Output())

	in := mustTile(t, net, "in")
	in.RotateClockwise() // E|S: still open East
	assert.Equal(t, gas.Argon, net.Output())

	in.RotateClockwise() // S|W: input side East closed
	assert.Equal(t, gas.None, in.Gas())
	assert.Equal(t, gas.None, net.Output())
}
