package avl

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
)

// Guarded owns a tree and serializes access to it. Mutations run under an
// exclusive lock, reads (including traversals, which follow links a
// concurrent rotation could change) under a shared lock.
//
// After every successful Update a Revision is broadcast to all watchers.
// With concurrent writers revisions may arrive out of order; Seq tells.
type Guarded[T any] struct {
	mx   sync.RWMutex
	tree *Tree[T]
	rev  uint64
	cast *caster.Caster
}

// Revision describes the state of a guarded tree after an update.
type Revision struct {
	Seq uint64 // number of successful updates so far
	Len int    // number of nodes after the update
}

// NewGuarded takes ownership of tree. A nil tree is replaced by an empty one.
// Clients must not access tree directly afterwards.
func NewGuarded[T any](tree *Tree[T]) *Guarded[T] {
	if tree == nil {
		tree = &Tree[T]{}
	}
	return &Guarded[T]{
		tree: tree,
		cast: caster.New(nil), // we will broadcast revisions to watchers
	}
}

// Update runs fn with exclusive access to the tree. If fn returns an error,
// no revision is published; changes fn made to the tree are not undone.
func (g *Guarded[T]) Update(fn func(*Tree[T]) error) error {
	r, err := g.update(fn)
	if err != nil {
		return err
	}
	g.cast.Pub(r) // outside the lock, watchers may be slow
	return nil
}

func (g *Guarded[T]) update(fn func(*Tree[T]) error) (Revision, error) {
	g.mx.Lock()
	defer g.mx.Unlock()
	if err := fn(g.tree); err != nil {
		return Revision{}, err
	}
	g.rev++
	return Revision{Seq: g.rev, Len: g.tree.Len()}, nil
}

// View runs fn with shared access to the tree. fn must not modify the tree.
func (g *Guarded[T]) View(fn func(*Tree[T])) {
	g.mx.RLock()
	defer g.mx.RUnlock()
	fn(g.tree)
}

// Revision returns the current revision.
func (g *Guarded[T]) Revision() Revision {
	g.mx.RLock()
	defer g.mx.RUnlock()
	return Revision{Seq: g.rev, Len: g.tree.Len()}
}

// Watch subscribes to revisions until ctx is done or g is closed, whichever
// comes first. The returned channel is closed then.
func (g *Guarded[T]) Watch(ctx context.Context) <-chan Revision {
	out := make(chan Revision, 1)
	sub, ok := g.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for {
			select {
			case m, ok := <-sub:
				if !ok {
					return
				}
				select {
				case out <- m.(Revision):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Close stops broadcasting revisions and closes all watcher channels.
func (g *Guarded[T]) Close() {
	g.cast.Close()
}
