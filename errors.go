package avl

import "errors"

var (
	// ErrInvalidOperation signals a violated calling contract, e.g. linking
	// into an occupied slot or erasing a node which is not part of the tree.
	ErrInvalidOperation = errors.New("avl: invalid operation")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrCorrupt is reported by Check when a structural invariant does not hold.
	ErrCorrupt = errors.New("avl: corrupt tree")
)
