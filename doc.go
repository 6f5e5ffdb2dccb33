/*
Package avl offers a height-balanced binary search tree which never compares keys.

# AVL Trees

The tree keeps the calling convention of the well-known Linux rbtree API:
clients walk down from the root with their own comparison, find an empty
child slot, link a new node into it and let the tree rebalance. The tree
itself only rearranges links. Balancing is height-based (AVL) instead of
color-based, which keeps the tree at most about 1.44·log2(n) high.

Nodes are kept in an arena owned by the tree and are addressed by
handles. A handle is stable for the lifetime of its node: rotations move
links, never payloads. The only operation that moves a payload is erasing
a node with two children, where the in-order successor's payload is
transferred into the erased node's slot (see Config.Move).

A typical insertion loop looks like this:

	parent, side := avl.Nil, avl.Left
	for n := tree.Root(); n != avl.Nil; {
	    v, _ := tree.Value(n)
	    parent = n
	    if key < v.key {
	        side, n = avl.Left, tree.Left(n)
	    } else {
	        side, n = avl.Right, tree.Right(n)
	    }
	}
	h, err := tree.Insert(parent, side, record)

In-order iteration uses First/Next (or Last/Prev):

	for n := tree.First(); n != avl.Nil; n = tree.Next(n) {
	    ...
	}

Removing nodes while iterating must use the successor handle returned by
Erase:

	for n := tree.First(); n != avl.Nil; {
	    _, n, _ = tree.Erase(n)
	}

A Tree is not safe for concurrent use. Either confine it to a single
goroutine or wrap it in a Guarded, which serializes writers and lets
readers traverse under a shared lock.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for code where T names a type parameter.
func tracer() tracing.Trace {
	return T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
