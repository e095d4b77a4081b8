// Package pipeflow simulates puzzle boards made of rotatable pipe tiles that
// carry gases from input tiles to output tiles.
//
// What is in the box:
//
//	cardinal/ — compass sides as a 4-bit set, with clockwise/opposite rotation
//	gas/      — the seven-gas flag set and its text form
//	pipenet/  — tiles, neighbor derivation, fixpoint gas propagation, output
//	level/    — YAML level files → pipenet networks
//	cmd/pipesim — replay rotations against a level from the command line
//
// Quick ASCII example:
//
//	[in]═[mid]═[out]      in injects Oxygen, out reports what it receives
//
//	output: Oxygen
//
//	[in] [mid] [out]      mid turned a quarter: the line is cut
//	      ║
//	output: None
//
// A network re-evaluates itself synchronously after every rotation; callers
// read Network.Output and compare it against whatever their puzzle needs.
package pipeflow
