package bst

import (
	"fmt"
)

// Reports whether an equal value is stored in the tree.
func (t *Tree[T]) Contains(val T) bool {
	return t.root.find(val, t.compare) != nil
}

// Returns the smallest value in the tree, or an error wrapping ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.root.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("min: %w", ErrEmptyTree)
	}
	return t.root.leftmost().value, nil
}

// Returns the largest value in the tree, or an error wrapping ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.root.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("max: %w", ErrEmptyTree)
	}
	return t.root.rightmost().value, nil
}

// Looks for the node holding a value equal to `val`. Returns nil if not found, including when the descent runs off the end of a branch.
func (n *Node[T]) find(val T, compare CompareFunc[T]) *Node[T] {
	for n != nil && !n.empty {
		order := compare(val, n.value)
		switch {
		case order == 0:
			return n
		case order < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}
