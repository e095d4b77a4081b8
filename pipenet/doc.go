// Package pipenet simulates a grid of rotatable pipe tiles that carry gas
// from input tiles to output tiles.
//
// What:
//
//   - Tile: a base connectivity mask (cardinal.Cardinal), a quarter-turn
//     orientation, optional input port (side + gas) and optional output port.
//     Its open sides are always the base mask rotated by its orientation.
//   - Network: owns every tile in one arena, derives spatial neighbors once at
//     construction, and re-evaluates the whole graph whenever any tile rotates.
//   - Output: the union of every gas reported by an open output port during the
//     most recent completed evaluation pass.
//
// How:
//
//   - Neighbors are found by position: two tiles are neighbors when their
//     rounded offset lies on exactly one axis and does not exceed the adjacency
//     threshold (default 2, one tile width). +Y is North, +X is East.
//   - Gas moves only through mutually open links: this tile is open toward the
//     neighbor and the neighbor is open on the opposite side.
//   - Propagation is a monotone fixpoint. A tile forwards its gas only when its
//     set strictly grew, so cycles terminate after at most (tiles × 7) changes
//     and the result does not depend on the order in which inputs are visited.
//   - Every rotation triggers a full reset-and-replay; there is no incremental
//     invalidation to get wrong.
//
// Concurrency:
//
//   - A Network is single-threaded and synchronous. Hosts that rotate tiles
//     from several goroutines must serialize RotateClockwise/Reevaluate
//     themselves.
//
// Complexity:
//
//   - New:        O(N²) pair scan for adjacency, plus one evaluation.
//   - Reevaluate: O(N + E·7) where E ≤ 2N is the number of neighbor links.
//
// Errors:
//
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrDuplicateName:   two tiles share a non-empty name.
//   - ErrTileNotFound:    Rotate/Tile lookups with an unknown id or name.
//
// Integrity problems in the layout (overlapping tiles, out-of-range initial
// orientation, ambiguous neighbors) are not errors: they are logged and kept
// as Warning values on the network.
package pipenet
