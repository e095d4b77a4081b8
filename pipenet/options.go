package pipenet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeflow/gas"
)

// DefaultAdjacencyThreshold is the largest axis offset at which two tiles are
// still neighbors: one tile width.
const DefaultAdjacencyThreshold = 2.0

// Option configures a Network at construction time.
// An invalid Option is recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the construction parameters and observation hooks of a Network.
type Options struct {
	// AdjacencyThreshold is the maximum rounded offset along one axis for two
	// tiles to be neighbors. Must be > 0.
	AdjacencyThreshold float64

	// Logger receives integrity warnings (Warn) and pass results (Debug).
	Logger *slog.Logger

	// OnGasChange is called every time a tile's gas set strictly grows during
	// a pass, with the set before and after the change.
	OnGasChange func(id TileID, before, after gas.Gas)

	// OnEvaluated is called after each completed pass with its output.
	OnEvaluated func(output gas.Gas, pass int)

	err error
}

// DefaultOptions returns the threshold of one tile width, the process-wide
// slog logger and no hooks.
func DefaultOptions() Options {
	return Options{
		AdjacencyThreshold: DefaultAdjacencyThreshold,
		Logger:             slog.Default(),
	}
}

// WithAdjacencyThreshold sets the neighbor distance threshold.
//
//	t > 0:  use t
//	t <= 0: invalid option → ErrOptionViolation
func WithAdjacencyThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: adjacency threshold must be positive (%g)", ErrOptionViolation, t)
			return
		}
		o.AdjacencyThreshold = t
	}
}

// WithLogger routes the network's log output to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnGasChange registers a hook observing every strict growth of a tile's gas.
func WithOnGasChange(fn func(id TileID, before, after gas.Gas)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGasChange = fn
		}
	}
}

// WithOnEvaluated registers a hook called after every completed pass.
func WithOnEvaluated(fn func(output gas.Gas, pass int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvaluated = fn
		}
	}
}
