package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeflow/cardinal"
	"github.com/katalvlaran/pipeflow/gas"
	"github.com/katalvlaran/pipeflow/pipenet"
)

// DefaultSpacing is the distance between grid cells, one tile width.
const DefaultSpacing = 2.0

var (
	// ErrNoTiles indicates a level without any tile.
	ErrNoTiles = errors.New("level: no tiles defined")
	// ErrBadPosition indicates a tile with neither or both of pos and cell,
	// or a coordinate list that is not exactly two numbers long.
	ErrBadPosition = errors.New("level: tile needs exactly one of pos [x, y] or cell [col, row]")
	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("level: spacing must be positive")
)

// Level is the decoded form of a level file.
type Level struct {
	Name      string    `yaml:"name"`
	Threshold float64   `yaml:"threshold,omitempty"`
	Spacing   float64   `yaml:"spacing,omitempty"`
	Tiles     []TileDef `yaml:"tiles"`
}

// TileDef describes one tile. Direction and gas fields use the text forms
// accepted by cardinal.Parse and gas.Parse.
type TileDef struct {
	Name        string    `yaml:"name,omitempty"`
	Pos         []float64 `yaml:"pos,omitempty"`
	Cell        []int     `yaml:"cell,omitempty"`
	Connections string    `yaml:"connections"`
	Orientation int       `yaml:"orientation,omitempty"`
	Input       *PortDef  `yaml:"input,omitempty"`
	Output      string    `yaml:"output,omitempty"`
}

// PortDef is an input port: the side it opens on and the gas it injects.
type PortDef struct {
	Side string `yaml:"side"`
	Gas  string `yaml:"gas"`
}

// Load reads and decodes the level file at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	lv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lv, nil
}

// Parse decodes a level document. Unknown keys are rejected so that typos in
// hand-written levels surface immediately.
func Parse(data []byte) (*Level, error) {
	var lv Level
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lv); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTiles
		}
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if len(lv.Tiles) == 0 {
		return nil, ErrNoTiles
	}
	if lv.Spacing < 0 {
		return nil, fmt.Errorf("%w (%g)", ErrBadSpacing, lv.Spacing)
	}
	return &lv, nil
}

// Specs converts every tile definition into a pipenet.TileSpec.
// Errors name the offending tile by index and field.
func (lv *Level) Specs() ([]pipenet.TileSpec, error) {
	spacing := lv.Spacing
	if spacing == 0 {
		spacing = DefaultSpacing
	}
	specs := make([]pipenet.TileSpec, 0, len(lv.Tiles))
	for i, td := range lv.Tiles {
		s, err := td.spec(spacing)
		if err != nil {
			return nil, fmt.Errorf("tile %d (%s): %w", i, td.Name, err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Options returns the pipenet options implied by the level header.
func (lv *Level) Options() []pipenet.Option {
	if lv.Threshold == 0 {
		return nil
	}
	return []pipenet.Option{pipenet.WithAdjacencyThreshold(lv.Threshold)}
}

// Build converts the level and constructs its network. Caller options are
// applied after the level's own.
func (lv *Level) Build(opts ...pipenet.Option) (*pipenet.Network, error) {
	specs, err := lv.Specs()
	if err != nil {
		return nil, err
	}
	return pipenet.New(specs, append(lv.Options(), opts...)...)
}

func (td TileDef) spec(spacing float64) (pipenet.TileSpec, error) {
	s := pipenet.TileSpec{Name: td.Name, Orientation: td.Orientation}

	switch {
	case td.Pos != nil && td.Cell == nil && len(td.Pos) == 2:
		s.Position = pipenet.Position{X: td.Pos[0], Y: td.Pos[1]}
	case td.Cell != nil && td.Pos == nil && len(td.Cell) == 2:
		s.Position = pipenet.Position{
			X: float64(td.Cell[0]) * spacing,
			Y: -float64(td.Cell[1]) * spacing,
		}
	default:
		return s, ErrBadPosition
	}

	var err error
	if s.Base, err = cardinal.Parse(td.Connections); err != nil {
		return s, fmt.Errorf("connections: %w", err)
	}
	if s.Output, err = cardinal.Parse(td.Output); err != nil {
		return s, fmt.Errorf("output: %w", err)
	}
	if td.Input != nil {
		port := &pipenet.InputPort{}
		if port.Side, err = cardinal.Parse(td.Input.Side); err != nil {
			return s, fmt.Errorf("input side: %w", err)
		}
		if port.Gas, err = gas.Parse(td.Input.Gas); err != nil {
			return s, fmt.Errorf("input gas: %w", err)
		}
		s.Input = port
	}
	return s, nil
}
