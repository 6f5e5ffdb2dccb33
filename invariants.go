package avl

import "fmt"

// Check validates the structural tree invariants: stored heights, AVL
// balance, parent back-links, node count and free list.
//
// Check is O(n) and meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if len(t.nodes) == 0 {
		if t.root != Nil || t.count != 0 {
			return fmt.Errorf("%w: tree without arena is not empty", ErrCorrupt)
		}
		return nil
	}
	if s := t.nodes[Nil]; s.parent != Nil || s.left != Nil || s.right != Nil || s.height != 0 {
		return fmt.Errorf("%w: sentinel slot has been written to", ErrCorrupt)
	}
	if t.root != Nil {
		if !t.live(t.root) {
			return fmt.Errorf("%w: root %d is not a live node", ErrCorrupt, t.root)
		}
		if t.nodes[t.root].parent != Nil {
			return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, t.root, t.nodes[t.root].parent)
		}
	}
	count, _, err := t.checkNode(t.root, 0)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable, %d recorded)", ErrCorrupt, count, t.count)
	}
	return t.checkFreeList()
}

func (t *Tree[T]) checkNode(h Handle, depth int) (count int, height int8, err error) {
	if h == Nil {
		return 0, 0, nil
	}
	if depth > maxDepth {
		return 0, 0, fmt.Errorf("%w: depth exceeds %d, cycle?", ErrCorrupt, maxDepth)
	}
	if !t.live(h) {
		return 0, 0, fmt.Errorf("%w: link to released or invalid node %d", ErrCorrupt, h)
	}
	n := &t.nodes[h]
	for _, c := range [2]Handle{n.left, n.right} {
		if c != Nil && t.live(c) && t.nodes[c].parent != h {
			return 0, 0, fmt.Errorf("%w: node %d has parent %d, expected %d",
				ErrCorrupt, c, t.nodes[c].parent, h)
		}
	}
	lc, lh, err := t.checkNode(n.left, depth+1)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, depth+1)
	if err != nil {
		return 0, 0, err
	}
	height = 1 + max(lh, rh)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %d has height %d, expected %d", ErrCorrupt, h, n.height, height)
	}
	if bal := int(lh) - int(rh); bal < -1 || bal > 1 {
		return 0, 0, fmt.Errorf("%w: node %d out of balance (%d)", ErrCorrupt, h, bal)
	}
	return lc + rc + 1, height, nil
}

func (t *Tree[T]) checkFreeList() error {
	free := 0
	for h := t.free; h != Nil; h = t.nodes[h].parent {
		if int(h) >= len(t.nodes) {
			return fmt.Errorf("%w: free list points outside arena (%d)", ErrCorrupt, h)
		}
		if !t.nodes[h].isFree() {
			return fmt.Errorf("%w: live node %d on free list", ErrCorrupt, h)
		}
		free++
		if free > len(t.nodes) {
			return fmt.Errorf("%w: free list has a cycle", ErrCorrupt)
		}
	}
	if slots := len(t.nodes) - 1; free+t.count != slots {
		return fmt.Errorf("%w: %d free + %d live != %d slots", ErrCorrupt, free, t.count, slots)
	}
	return nil
}

// CheckOrder validates that an in-order traversal yields payloads in
// ascending order under cmp. If strict is set, equal neighbours are an
// error as well.
func (t *Tree[T]) CheckOrder(cmp func(a, b T) int, strict bool) error {
	if cmp == nil {
		return fmt.Errorf("%w: comparison function is nil", ErrInvalidConfig)
	}
	prev := Nil
	for n := t.First(); n != Nil; n = t.Next(n) {
		if prev != Nil {
			c := cmp(t.nodes[prev].payload, t.nodes[n].payload)
			if c > 0 || (strict && c == 0) {
				return fmt.Errorf("%w: nodes %d and %d out of order", ErrCorrupt, prev, n)
			}
		}
		prev = n
	}
	return nil
}
