package pipenet_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
	"github.com/katalvlaran/pipeflow/pipenet"
)

const (
	N = cardinal.North
	E = cardinal.East
	S = cardinal.South
	W = cardinal.West
)

// quiet discards all log output.
func quiet() pipenet.Option {
	return pipenet.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// capture returns an option logging at debug level into buf.
func capture(buf *bytes.Buffer) pipenet.Option {
	return pipenet.WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// at places a tile on a grid with spacing 2; row grows southwards.
func at(col, row int) pipenet.Position {
	return pipenet.Position{X: float64(col * 2), Y: float64(-row * 2)}
}

func plain(name string, col, row int, base cardinal.Cardinal) pipenet.TileSpec {
	return pipenet.TileSpec{Name: name, Position: at(col, row), Base: base}
}

func source(name string, col, row int, base, side cardinal.Cardinal, g gas.Gas) pipenet.TileSpec {
	s := plain(name, col, row, base)
	s.Input = &pipenet.InputPort{Side: side, Gas: g}
	return s
}

func sink(name string, col, row int, base, side cardinal.Cardinal) pipenet.TileSpec {
	s := plain(name, col, row, base)
	s.Output = side
	return s
}

// lineSpecs is the three-tile line: source → straight → sink.
func lineSpecs(g gas.Gas) []pipenet.TileSpec {
	return []pipenet.TileSpec{
		source("in", 0, 0, E, E, g),
		plain("mid", 1, 0, W|E),
		sink("out", 2, 0, W, W),
	}
}

func mustNew(t testing.TB, specs []pipenet.TileSpec, opts ...pipenet.Option) *pipenet.Network {
	t.Helper()
	net, err := pipenet.New(specs, append([]pipenet.Option{quiet()}, opts...)...)
	require.NoError(t, err)
	return net
}

func mustTile(t testing.TB, net *pipenet.Network, name string) *pipenet.Tile {
	t.Helper()
	tile, err := net.TileByName(name)
	require.NoError(t, err)
	return tile
}
