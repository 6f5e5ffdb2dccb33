/*
Package index provides an ordered key/value index on top of package avl.

The avl tree never compares keys; this package supplies the comparison
walk down the tree which the tree leaves to its clients. Keys are ordered
by a comparison function, values are stored alongside.

How equal keys are handled is configurable:

	Replace   a put with an existing key overwrites the value (default)
	Keep      a put with an existing key is ignored
	Multi     equal keys are kept in insertion order

An Index is not safe for concurrent use.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer

Please refer to the License file for details.
*/
package index

import (
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer of package avl.
func tracer() tracing.Trace {
	return avl.T()
}
