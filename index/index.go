package index

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/avl"
)

// Policy decides what happens when a key is put a second time.
type Policy int8

const (
	// Replace overwrites the value of an existing key.
	Replace Policy = iota
	// Keep leaves an existing entry untouched.
	Keep
	// Multi stores equal keys side by side, in insertion order.
	Multi
)

func (p Policy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Keep:
		return "keep"
	case Multi:
		return "multi"
	}
	return fmt.Sprintf("Policy(%d)", int8(p))
}

// Config configures an index.
type Config struct {
	Duplicates Policy
	Capacity   int // pre-allocated tree nodes
}

func (cfg Config) validate() error {
	if cfg.Duplicates < Replace || cfg.Duplicates > Multi {
		return fmt.Errorf("%w: unknown duplicates policy %d", avl.ErrInvalidConfig, cfg.Duplicates)
	}
	return nil
}

// Entry is a key/value pair stored in an index.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Index is an ordered key/value index.
type Index[K, V any] struct {
	tree   *avl.Tree[Entry[K, V]]
	cmp    func(a, b K) int
	policy Policy
}

// New creates an index ordering keys with compare, which must return a
// negative number, zero or a positive number when a < b, a == b, a > b.
func New[K, V any](compare func(a, b K) int, cfg Config) (*Index[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", avl.ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tree, err := avl.New(avl.Config[Entry[K, V]]{Capacity: cfg.Capacity})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("index: new index, duplicates policy %s", cfg.Duplicates)
	return &Index[K, V]{tree: tree, cmp: compare, policy: cfg.Duplicates}, nil
}

// NewOrdered creates an index for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any](cfg Config) (*Index[K, V], error) {
	return New[K, V](cmp.Compare[K], cfg)
}

// Len returns the number of entries.
func (idx *Index[K, V]) Len() int {
	return idx.tree.Len()
}

// IsEmpty reports whether the index has no entries.
func (idx *Index[K, V]) IsEmpty() bool {
	return idx.tree.IsEmpty()
}

// Policy returns the duplicates policy of the index.
func (idx *Index[K, V]) Policy() Policy {
	return idx.policy
}

// Tree gives access to the underlying tree, e.g. for dumping it. Clients
// must not modify the tree.
func (idx *Index[K, V]) Tree() *avl.Tree[Entry[K, V]] {
	return idx.tree
}

func (idx *Index[K, V]) key(n avl.Handle) K {
	e, ok := idx.tree.Value(n)
	if !ok {
		panic("index: dangling tree handle")
	}
	return e.Key
}

// Put stores value under key. It returns true if a new entry has been
// added, false if an existing entry has been replaced or kept.
func (idx *Index[K, V]) Put(key K, value V) bool {
	parent, side := avl.Nil, avl.Left
	for n := idx.tree.Root(); n != avl.Nil; {
		c := idx.cmp(key, idx.key(n))
		if c == 0 && idx.policy != Multi {
			if idx.policy == Replace {
				_ = idx.tree.Set(n, Entry[K, V]{Key: key, Value: value})
			}
			return false
		}
		parent = n
		if c < 0 {
			side, n = avl.Left, idx.tree.Left(n)
		} else { // equal keys go right
			side, n = avl.Right, idx.tree.Right(n)
		}
	}
	_, err := idx.tree.Insert(parent, side, Entry[K, V]{Key: key, Value: value})
	if err != nil {
		panic(fmt.Sprintf("index: insert failed: %v", err))
	}
	return true
}

// lowerBound returns the first node with a key not less than key.
func (idx *Index[K, V]) lowerBound(key K) avl.Handle {
	found := avl.Nil
	for n := idx.tree.Root(); n != avl.Nil; {
		if idx.cmp(idx.key(n), key) >= 0 {
			found, n = n, idx.tree.Left(n)
		} else {
			n = idx.tree.Right(n)
		}
	}
	return found
}

// upperBound returns the last node with a key not greater than key.
func (idx *Index[K, V]) upperBound(key K) avl.Handle {
	found := avl.Nil
	for n := idx.tree.Root(); n != avl.Nil; {
		if idx.cmp(idx.key(n), key) <= 0 {
			found, n = n, idx.tree.Right(n)
		} else {
			n = idx.tree.Left(n)
		}
	}
	return found
}

func (idx *Index[K, V]) find(key K) avl.Handle {
	n := idx.lowerBound(key)
	if n == avl.Nil || idx.cmp(idx.key(n), key) != 0 {
		return avl.Nil
	}
	return n
}

// Get returns the value stored under key. For Multi indexes this is the
// value put first.
func (idx *Index[K, V]) Get(key K) (value V, found bool) {
	n := idx.find(key)
	if n == avl.Nil {
		return value, false
	}
	e, _ := idx.tree.Value(n)
	return e.Value, true
}

// Has reports whether key is present.
func (idx *Index[K, V]) Has(key K) bool {
	return idx.find(key) != avl.Nil
}

// Values returns an iterator over all values stored under key, in insertion
// order.
func (idx *Index[K, V]) Values(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := idx.find(key); n != avl.Nil; n = idx.tree.Next(n) {
			e, _ := idx.tree.Value(n)
			if idx.cmp(e.Key, key) != 0 || !yield(e.Value) {
				return
			}
		}
	}
}

// Delete removes the entry for key and returns its value. For Multi
// indexes only the entry put first is removed.
func (idx *Index[K, V]) Delete(key K) (value V, found bool) {
	n := idx.find(key)
	if n == avl.Nil {
		return value, false
	}
	e, _, err := idx.tree.Erase(n)
	if err != nil {
		panic(fmt.Sprintf("index: erase failed: %v", err))
	}
	return e.Value, true
}

// DeleteAll removes all entries for key and returns how many were removed.
func (idx *Index[K, V]) DeleteAll(key K) int {
	count := 0
	for n := idx.find(key); n != avl.Nil && idx.cmp(idx.key(n), key) == 0; count++ {
		var err error
		if _, n, err = idx.tree.Erase(n); err != nil {
			panic(fmt.Sprintf("index: erase failed: %v", err))
		}
	}
	tracer().Debugf("index: deleted %d entries", count)
	return count
}

// Min returns the entry with the lowest key.
func (idx *Index[K, V]) Min() (e Entry[K, V], found bool) {
	return idx.tree.Value(idx.tree.First())
}

// Max returns the entry with the highest key. For Multi indexes this is the
// entry put last among equal keys.
func (idx *Index[K, V]) Max() (e Entry[K, V], found bool) {
	return idx.tree.Value(idx.tree.Last())
}

// Floor returns the entry with the greatest key not greater than key.
func (idx *Index[K, V]) Floor(key K) (e Entry[K, V], found bool) {
	return idx.tree.Value(idx.upperBound(key))
}

// Ceil returns the entry with the least key not less than key.
func (idx *Index[K, V]) Ceil(key K) (e Entry[K, V], found bool) {
	return idx.tree.Value(idx.lowerBound(key))
}

// All returns an iterator over all entries in ascending key order.
func (idx *Index[K, V]) All() iter.Seq2[K, V] {
	return idx.from(idx.tree.First(), nil)
}

// Backward returns an iterator over all entries in descending key order.
func (idx *Index[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range idx.tree.Backward() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Ascend returns an iterator over all entries with keys not less than from.
func (idx *Index[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return idx.from(idx.lowerBound(from), nil)
}

// Range returns an iterator over all entries with lo <= key < hi.
func (idx *Index[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return idx.from(idx.lowerBound(lo), func(k K) bool {
		return idx.cmp(k, hi) < 0
	})
}

func (idx *Index[K, V]) from(start avl.Handle, while func(K) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := start; n != avl.Nil; n = idx.tree.Next(n) {
			e, _ := idx.tree.Value(n)
			if while != nil && !while(e.Key) {
				return
			}
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Check validates the tree invariants and the key order.
func (idx *Index[K, V]) Check() error {
	if err := idx.tree.Check(); err != nil {
		return err
	}
	return idx.tree.CheckOrder(func(a, b Entry[K, V]) int {
		return idx.cmp(a.Key, b.Key)
	}, idx.policy != Multi)
}
