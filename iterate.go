package avl

import "iter"

// First returns the node with the lowest payload, or Nil for an empty tree.
func (t *Tree[T]) First() Handle {
	if t.root == Nil {
		return Nil
	}
	return t.leftmost(t.root)
}

// Last returns the node with the highest payload, or Nil for an empty tree.
func (t *Tree[T]) Last() Handle {
	if t.root == Nil {
		return Nil
	}
	return t.rightmost(t.root)
}

// Next returns the in-order successor of h, or Nil if h is the last node.
func (t *Tree[T]) Next(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	if r := t.nodes[h].right; r != Nil {
		return t.leftmost(r)
	}
	p := t.nodes[h].parent
	for p != Nil && t.nodes[p].right == h {
		h, p = p, t.nodes[p].parent
	}
	return p
}

// Prev returns the in-order predecessor of h, or Nil if h is the first node.
func (t *Tree[T]) Prev(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	if l := t.nodes[h].left; l != Nil {
		return t.rightmost(l)
	}
	p := t.nodes[h].parent
	for p != Nil && t.nodes[p].left == h {
		h, p = p, t.nodes[p].parent
	}
	return p
}

// internal: lowest node in a sub-tree
func (t *Tree[T]) leftmost(h Handle) Handle {
	for t.nodes[h].left != Nil {
		h = t.nodes[h].left
	}
	return h
}

// internal: highest node in a sub-tree
func (t *Tree[T]) rightmost(h Handle) Handle {
	for t.nodes[h].right != Nil {
		h = t.nodes[h].right
	}
	return h
}

// All returns an iterator over all nodes in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for n := t.First(); n != Nil; n = t.Next(n) {
			if !yield(n, t.nodes[n].payload) {
				return
			}
		}
	}
}

// Backward returns an iterator over all nodes in descending order.
//
// The tree must not be modified during iteration.
func (t *Tree[T]) Backward() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for n := t.Last(); n != Nil; n = t.Prev(n) {
			if !yield(n, t.nodes[n].payload) {
				return
			}
		}
	}
}

// ForEach walks payloads in order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEach(fn func(h Handle, payload T) bool) {
	if fn == nil {
		return
	}
	t.All()(fn)
}

// FirstPostOrder returns the first node of a post-order walk, i.e. the
// leftmost deepest node, or Nil for an empty tree.
func (t *Tree[T]) FirstPostOrder() Handle {
	if t.root == Nil {
		return Nil
	}
	return t.leftDeepest(t.root)
}

// NextPostOrder returns the post-order successor of h. Children come before
// their parent, the root comes last.
func (t *Tree[T]) NextPostOrder(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	p := t.nodes[h].parent
	if p != Nil && t.nodes[p].left == h && t.nodes[p].right != Nil {
		return t.leftDeepest(t.nodes[p].right)
	}
	return p
}

// PostOrder returns an iterator over all nodes in post-order.
//
// The tree must not be modified during iteration.
func (t *Tree[T]) PostOrder() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for n := t.FirstPostOrder(); n != Nil; n = t.NextPostOrder(n) {
			if !yield(n, t.nodes[n].payload) {
				return
			}
		}
	}
}

// internal: descend left where possible, else right, down to a leaf
func (t *Tree[T]) leftDeepest(h Handle) Handle {
	for {
		if l := t.nodes[h].left; l != Nil {
			h = l
		} else if r := t.nodes[h].right; r != Nil {
			h = r
		} else {
			return h
		}
	}
}
