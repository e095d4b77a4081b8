// Package cardinal models the four compass sides of a pipe tile as
// independent bits, so a set of open sides is a single small value.
//
// What:
//
//   - Cardinal is both a single direction (North, East, South, West) and a set
//     of directions (North|South, All, None).
//   - Clockwise, Counterclockwise and Opposite are pure 4-bit rotations and
//     apply to every member of a set at once.
//   - Parse and String convert to and from the "North|East" / "N,E" text forms
//     used by level files.
//
// Why:
//
//   - A rotatable tile stores one base mask and derives its current mask by
//     rotating it; no lookup tables, no vector math.
//
// Complexity:
//
//   - Every operation is O(1) except Parse, which is linear in its input.
//
// Errors:
//
//   - ErrUnknownCardinal: Parse met a token that names no direction.
package cardinal
