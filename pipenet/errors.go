package pipenet

import "errors"

var (
	// ErrOptionViolation indicates an Option was given an invalid value.
	ErrOptionViolation = errors.New("pipenet: invalid option supplied")
	// ErrDuplicateName indicates two tile specs share the same non-empty name.
	ErrDuplicateName = errors.New("pipenet: duplicate tile name")
	// ErrTileNotFound indicates an id or name that does not address a tile.
	ErrTileNotFound = errors.New("pipenet: tile not found")
)
