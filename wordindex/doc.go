/*
Package wordindex counts word frequencies of text files in an ordered index.

Words are found at the line-break opportunities of Unicode UAX#14, then
lower-cased and stripped of surrounding punctuation. HTML input is reduced
to its text content first.

	idx, err := wordindex.LoadFile("README.html")
	...
	for _, e := range wordindex.Top(idx, 10) {
		fmt.Printf("%6d %s\n", e.Value, e.Key)
	}

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordindex

import (
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the core tracer of package avl
func tracer() tracing.Trace {
	return avl.T()
}
