// Package gas defines the closed universe of gases a pipe network can carry
// and the flag-set type used to combine them.
//
// A Gas value is a set: Oxygen|Xenon holds two gases, None holds nothing.
// Sets only ever grow during one evaluation pass of a network, which is what
// bounds propagation: with seven flags a tile can change at most seven times.
package gas
