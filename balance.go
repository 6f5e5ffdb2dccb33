package avl

func (t *Tree[T]) height(h Handle) int8 {
	return t.nodes[h].height
}

// updateHeight recomputes the height of h from its children, which must
// already carry correct heights.
func (t *Tree[T]) updateHeight(h Handle) {
	n := &t.nodes[h]
	n.height = 1 + max(t.nodes[n.left].height, t.nodes[n.right].height)
}

// balance is height(left) - height(right).
func (t *Tree[T]) balance(h Handle) int {
	n := &t.nodes[h]
	return int(t.nodes[n.left].height) - int(t.nodes[n.right].height)
}

// replaceChild rewrites the link from parent p to old so that it points to
// x instead. A Nil parent means old is the root.
func (t *Tree[T]) replaceChild(p, old, x Handle) {
	switch {
	case p == Nil:
		t.root = x
	case t.nodes[p].left == old:
		t.nodes[p].left = x
	default:
		assert(t.nodes[p].right == old, "replaceChild: old is not a child of p")
		t.nodes[p].right = x
	}
}

// rotateRight promotes y's left child x into y's position:
//
//	    y            x
//	   / \          / \
//	  x   c  ==>   a   y
//	 / \              / \
//	a   b            b   c
func (t *Tree[T]) rotateRight(y Handle) {
	x := t.nodes[y].left
	assert(x != Nil, "rotateRight without left child")
	b := t.nodes[x].right
	t.nodes[y].left = b
	if b != Nil {
		t.nodes[b].parent = y
	}
	p := t.nodes[y].parent
	t.nodes[x].parent = p
	t.replaceChild(p, y, x)
	t.nodes[x].right = y
	t.nodes[y].parent = x
	t.updateHeight(y) // y first, x depends on it
	t.updateHeight(x)
}

// rotateLeft promotes x's right child y into x's position. Mirror image of
// rotateRight.
func (t *Tree[T]) rotateLeft(x Handle) {
	y := t.nodes[x].right
	assert(y != Nil, "rotateLeft without right child")
	b := t.nodes[y].left
	t.nodes[x].right = b
	if b != Nil {
		t.nodes[b].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)
	t.nodes[y].left = x
	t.nodes[x].parent = y
	t.updateHeight(x)
	t.updateHeight(y)
}

// rebalance walks from n up to the root, fixing heights and rotating
// wherever a node is out of balance. The walk never stops early: after an
// erase more than one ancestor may need a rotation.
func (t *Tree[T]) rebalance(n Handle) {
	for n != Nil {
		t.updateHeight(n)
		switch bal := t.balance(n); {
		case bal > 1:
			if l := t.nodes[n].left; t.balance(l) < 0 {
				tracer().Debugf("avl: left-right rotation at %d", n)
				t.rotateLeft(l)
			}
			t.rotateRight(n)
			t.rotations++
		case bal < -1:
			if r := t.nodes[n].right; t.balance(r) > 0 {
				tracer().Debugf("avl: right-left rotation at %d", n)
				t.rotateRight(r)
			}
			t.rotateLeft(n)
			t.rotations++
		}
		n = t.nodes[n].parent
	}
}
