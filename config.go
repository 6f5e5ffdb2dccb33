package avl

import "fmt"

// Config configures a tree.
type Config[T any] struct {
	// Capacity is the expected number of nodes. It is a hint: at most 65536
	// slots are allocated up front, the arena grows beyond on demand.
	Capacity int
	// Move transfers the payload of an in-order successor into the slot of a
	// node being erased (the two-children case of Erase). src is released
	// right afterwards. If Move is nil, the payload is copied by assignment.
	//
	// Clients which keep handles inside their payloads can use Move to
	// re-point them.
	Move func(dst, src *T)
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Move == nil {
		cfg.Move = func(dst, src *T) {
			*dst = *src
		}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, is %d", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.Capacity > maxSlots {
		return fmt.Errorf("%w: capacity %d exceeds handle range", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
