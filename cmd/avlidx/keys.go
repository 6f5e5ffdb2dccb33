package main

import (
	"github.com/npillmayer/avl"
)

// insertKey links key at its ordered position, equal keys going right,
// and rebalances.
func insertKey(tree *avl.Tree[int], key int) (avl.Handle, error) {
	parent, side := avl.Nil, avl.Left
	for n := tree.Root(); n != avl.Nil; {
		v, _ := tree.Value(n)
		parent = n
		if key < v {
			side, n = avl.Left, tree.Left(n)
		} else {
			side, n = avl.Right, tree.Right(n)
		}
	}
	return tree.Insert(parent, side, key)
}

func findKey(tree *avl.Tree[int], key int) avl.Handle {
	n := tree.Root()
	for n != avl.Nil {
		v, _ := tree.Value(n)
		if key == v {
			break
		} else if key < v {
			n = tree.Left(n)
		} else {
			n = tree.Right(n)
		}
	}
	return n
}
