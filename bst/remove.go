package bst

import (
	"fmt"
)

// Removes a value from the tree.
//
// If the value is not present, the tree is left unmodified and an error wrapping ErrNotFound is returned.
func (t *Tree[T]) Remove(val T) error {
	if t.root.IsEmpty() {
		return fmt.Errorf("remove: %w", ErrNotFound)
	}
	out, removed := t.root.remove(val, t.compare)
	if !removed {
		return fmt.Errorf("remove: %w", ErrNotFound)
	}
	if out == nil {
		// removed the last value; go back to sentinel root
		out = newSentinel[T]()
	}
	t.root = out
	t.length--
	return nil
}

// Removes `val` from the sub-tree, returning the new top of the sub-tree (which may be nil) and whether anything was removed. If the value is not found, returns the unmodified sub-tree.
//
// n: Node at top of sub-tree to operate on. May be nil.
func (n *Node[T]) remove(val T, compare CompareFunc[T]) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	order := compare(val, n.value)
	if order < 0 {
		out, removed := n.left.remove(val, compare)
		n.left = out
		return n, removed
	}
	if order > 0 {
		out, removed := n.right.remove(val, compare)
		n.right = out
		return n, removed
	}

	// found it!
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// two children: pull up the in-order successor, then drop it from the right sub-tree
	succ := n.right.leftmost()
	n.value = succ.value
	out, _ := n.right.remove(succ.value, compare)
	n.right = out
	return n, true
}
