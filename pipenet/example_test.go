package pipenet_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
	"github.com/katalvlaran/pipeflow/pipenet"
)

// ExampleNetwork builds the three-tile line and turns its middle pipe.
//
//	[in]═[mid]═[out]
//
// Turning mid once makes it vertical and cuts the line.
func ExampleNetwork() {
	specs := []pipenet.TileSpec{
		{
			Name:     "in",
			Position: pipenet.Position{X: 0, Y: 0},
			Base:     cardinal.East,
			Input:    &pipenet.InputPort{Side: cardinal.East, Gas: gas.Oxygen},
		},
		{Name: "mid", Position: pipenet.Position{X: 2, Y: 0}, Base: cardinal.West | cardinal.East},
		{Name: "out", Position: pipenet.Position{X: 4, Y: 0}, Base: cardinal.West, Output: cardinal.West},
	}
	net, err := pipenet.New(specs, pipenet.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("output:", net.Output())

	_ = net.RotateByName("mid")
	fmt.Println("after turn:", net.Output())
	fmt.Println("is oxygen:", net.Output() == gas.Oxygen)

	// Output:
	// output: Oxygen
	// after turn: None
	// is oxygen: false
}

// ExampleTile_Subscribe shows a host observing rotations, e.g. to play a sound.
func ExampleTile_Subscribe() {
	net, _ := pipenet.New([]pipenet.TileSpec{{Name: "elbow", Base: cardinal.North | cardinal.East}},
		pipenet.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	elbow, _ := net.TileByName("elbow")
	elbow.Subscribe(func(id pipenet.TileID, orientation int) {
		fmt.Println("tile", id, "orientation", orientation, "open", elbow.Connections())
	})
	elbow.RotateClockwise()
	elbow.RotateClockwise()

	// Output:
	// tile 0 orientation 1 open East|South
	// tile 0 orientation 2 open South|West
}
