package avl

// Handle addresses a node of a tree. Handles are only meaningful for the
// tree which issued them.
type Handle uint32

// Nil is the handle of an absent node.
const Nil Handle = 0

// maxSlots bounds the arena, slot 0 included.
const maxSlots = 1<<31 - 1

// maxPrealloc bounds the slots allocated up front for Config.Capacity.
// Larger trees grow by append.
const maxPrealloc = 1 << 16

// maxDepth is the largest height an int8 counter can hold. An AVL tree with
// maxSlots nodes stays below 46.
const maxDepth = 127

// Side selects the child slot of a parent node.
type Side int8

const (
	// Left selects the left child slot.
	Left Side = iota
	// Right selects the right child slot.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// node is the header of an arena slot.
//
// Slot 0 is the sentinel for Nil and is never written to, therefore
// height(Nil) == 0 and all links of Nil are Nil. A released slot has
// height 0 and threads the free list through parent.
type node[T any] struct {
	parent  Handle
	left    Handle
	right   Handle
	height  int8 // leaf = 1
	payload T
}

func (n *node[T]) isFree() bool {
	return n.height == 0
}

// initNode prepares a node which is not yet linked to a tree.
func (n *node[T]) initNode(payload T) {
	n.parent, n.left, n.right = Nil, Nil, Nil
	n.height = 1
	n.payload = payload
}

// alloc returns an initialized node slot, reusing released slots first.
func (t *Tree[T]) alloc(payload T) (Handle, bool) {
	t.ensure()
	if t.free != Nil {
		h := t.free
		t.free = t.nodes[h].parent
		t.nodes[h].initNode(payload)
		return h, true
	}
	if len(t.nodes) >= maxSlots {
		return Nil, false
	}
	t.nodes = append(t.nodes, node[T]{})
	h := Handle(len(t.nodes) - 1)
	t.nodes[h].initNode(payload)
	return h, true
}

// release puts a node slot onto the free list. The payload is zeroed so that
// the arena does not keep client data reachable.
func (t *Tree[T]) release(h Handle) {
	assert(h != Nil, "release called for Nil")
	var zero T
	n := &t.nodes[h]
	n.left, n.right = Nil, Nil
	n.height = 0
	n.payload = zero
	n.parent = t.free
	t.free = h
}

// ensure sets up the sentinel slot, making the zero Tree usable.
func (t *Tree[T]) ensure() {
	if len(t.nodes) == 0 {
		t.nodes = make([]node[T], 1, min(t.cfg.Capacity, maxPrealloc)+1)
		t.cfg = t.cfg.normalized()
	}
}

// live reports whether h addresses a node currently in use.
func (t *Tree[T]) live(h Handle) bool {
	return h != Nil && int(h) < len(t.nodes) && !t.nodes[h].isFree()
}
