package avl

import (
	"fmt"
)

// Tree is a height-balanced binary search tree over payloads of type T.
//
// The tree never compares payloads. Clients find the position for a new
// node by walking down from Root with Left and Right, then call Insert
// (or Link followed by Rebalance).
//
// The zero value is an empty tree ready to use.
type Tree[T any] struct {
	cfg       Config[T]
	nodes     []node[T] // nodes[0] is the Nil sentinel
	free      Handle    // head of the list of released slots
	root      Handle
	count     int
	rotations uint64
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: cfg.normalized()}
	t.ensure()
	tracer().Debugf("avl: new tree with capacity %d", cfg.Capacity)
	return t, nil
}

// Root returns the root node, or Nil for an empty tree.
func (t *Tree[T]) Root() Handle {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == Nil
}

// Height returns the height of the tree, where 0 means empty and 1 means a
// single node.
func (t *Tree[T]) Height() int {
	if t.root == Nil {
		return 0
	}
	return int(t.nodes[t.root].height)
}

// Rotations returns the number of rebalancing steps (single or double
// rotations) performed over the lifetime of the tree.
func (t *Tree[T]) Rotations() uint64 {
	return t.rotations
}

// Left returns the left child of h, or Nil.
func (t *Tree[T]) Left(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	return t.nodes[h].left
}

// Right returns the right child of h, or Nil.
func (t *Tree[T]) Right(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	return t.nodes[h].right
}

// Parent returns the parent of h, or Nil for the root.
func (t *Tree[T]) Parent(h Handle) Handle {
	if !t.live(h) {
		return Nil
	}
	return t.nodes[h].parent
}

// Child returns the child of h on the given side.
func (t *Tree[T]) Child(h Handle, side Side) Handle {
	if side == Left {
		return t.Left(h)
	}
	return t.Right(h)
}

// Value returns the payload of h. ok is false if h does not address a node
// of t.
func (t *Tree[T]) Value(h Handle) (v T, ok bool) {
	if !t.live(h) {
		return v, false
	}
	return t.nodes[h].payload, true
}

// Set replaces the payload of h in place. The new payload must order the
// same way as the old one with respect to all other nodes.
func (t *Tree[T]) Set(h Handle, v T) error {
	if !t.live(h) {
		return fmt.Errorf("%w: set on invalid handle %d", ErrInvalidOperation, h)
	}
	t.nodes[h].payload = v
	return nil
}

// Clear removes all nodes. Handles issued before are invalid afterwards.
func (t *Tree[T]) Clear() {
	nodes := t.nodes
	if cap(nodes) > 0 {
		clear(nodes)
		nodes = nodes[:1]
	}
	*t = Tree[T]{cfg: t.cfg, nodes: nodes, rotations: t.rotations}
}

// Link attaches a new node holding payload as the child of parent on the
// given side. If the tree is empty, parent must be Nil and the node becomes
// the root.
//
// Link does not rebalance. Clients must call Rebalance with the returned
// handle before any other operation on the tree.
//
// The slot must be empty and parent must be a node of t, otherwise
// ErrInvalidOperation is returned and the tree is left unchanged. Finding a
// slot which keeps the tree ordered is the client's obligation.
func (t *Tree[T]) Link(parent Handle, side Side, payload T) (Handle, error) {
	if parent == Nil {
		if t.root != Nil {
			return Nil, fmt.Errorf("%w: link without parent into non-empty tree", ErrInvalidOperation)
		}
	} else {
		if err := t.checkMember(parent); err != nil {
			return Nil, err
		}
		if t.slot(parent, side) != Nil {
			return Nil, fmt.Errorf("%w: %s slot of node %d is occupied", ErrInvalidOperation, side, parent)
		}
	}
	h, ok := t.alloc(payload)
	if !ok {
		return Nil, fmt.Errorf("%w: node arena exhausted", ErrInvalidOperation)
	}
	t.nodes[h].parent = parent
	switch {
	case parent == Nil:
		t.root = h
	case side == Left:
		t.nodes[parent].left = h
	default:
		t.nodes[parent].right = h
	}
	t.count++
	return h, nil
}

// Rebalance restores the balance after h has been linked with Link.
func (t *Tree[T]) Rebalance(h Handle) error {
	if !t.live(h) {
		return fmt.Errorf("%w: rebalance on invalid handle %d", ErrInvalidOperation, h)
	}
	t.rebalance(t.nodes[h].parent)
	return nil
}

// Insert links a new node holding payload as the child of parent on the
// given side and rebalances the tree. See Link for the contract.
func (t *Tree[T]) Insert(parent Handle, side Side, payload T) (Handle, error) {
	h, err := t.Link(parent, side, payload)
	if err != nil {
		return Nil, err
	}
	t.rebalance(parent)
	return h, nil
}

// Erase removes the payload at h from the tree and returns it.
//
// next is the node holding the in-order successor of the removed payload
// after the erase, or Nil. It allows removing nodes while iterating:
//
//	for n := t.First(); n != Nil; {
//	    _, n, _ = t.Erase(n)
//	}
//
// If h has two children, h stays in place: the payload of its in-order
// successor is moved into h (using Config.Move) and the successor's slot
// is released instead. In that case next == h. Otherwise h is released.
// A released handle must not be used any more.
func (t *Tree[T]) Erase(h Handle) (removed T, next Handle, err error) {
	if err = t.checkMember(h); err != nil {
		return removed, Nil, err
	}
	removed = t.nodes[h].payload
	victim := h
	if t.nodes[h].left != Nil && t.nodes[h].right != Nil {
		succ := t.leftmost(t.nodes[h].right)
		tracer().Debugf("avl: erase %d with two children, successor %d", h, succ)
		t.move(&t.nodes[h].payload, &t.nodes[succ].payload)
		victim, next = succ, h
	} else {
		next = t.Next(h)
	}
	parent := t.splice(victim)
	t.release(victim)
	t.count--
	t.rebalance(parent)
	return removed, next, nil
}

func (t *Tree[T]) move(dst, src *T) {
	if t.cfg.Move == nil {
		*dst = *src
		return
	}
	t.cfg.Move(dst, src)
}

// splice unlinks a node with at most one child, letting the child take its
// place. It returns the former parent of the node.
func (t *Tree[T]) splice(h Handle) Handle {
	n := &t.nodes[h]
	assert(n.left == Nil || n.right == Nil, "splice on node with two children")
	child := n.left
	if child == Nil {
		child = n.right
	}
	parent := n.parent
	if child != Nil {
		t.nodes[child].parent = parent
	}
	t.replaceChild(parent, h, child)
	return parent
}

func (t *Tree[T]) slot(h Handle, side Side) Handle {
	if side == Left {
		return t.nodes[h].left
	}
	return t.nodes[h].right
}

// checkMember verifies that h is a node reachable from the root of t by
// following the parent chain. This is O(log n) for a balanced tree.
func (t *Tree[T]) checkMember(h Handle) error {
	if !t.live(h) {
		return fmt.Errorf("%w: invalid handle %d", ErrInvalidOperation, h)
	}
	cur := h
	for steps := 0; ; steps++ {
		if steps > maxDepth {
			return fmt.Errorf("%w: node %d is not part of this tree", ErrInvalidOperation, h)
		}
		p := t.nodes[cur].parent
		if p == Nil {
			break
		}
		if t.nodes[p].left != cur && t.nodes[p].right != cur {
			return fmt.Errorf("%w: node %d is detached from its parent", ErrInvalidOperation, h)
		}
		cur = p
	}
	if cur != t.root {
		return fmt.Errorf("%w: node %d is not part of this tree", ErrInvalidOperation, h)
	}
	return nil
}
