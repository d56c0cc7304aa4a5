package bst

// Represents a node in a binary search tree. A node with no value is the "sentinel" root of an empty tree.
//
// Child nodes are owned exclusively by their parent; there are no back-references.
type Node[T any] struct {
	value T
	// if true, this node carries no value (sentinel root of an empty tree)
	empty bool
	left  *Node[T]
	right *Node[T]
}

func newNode[T any](val T) *Node[T] {
	return &Node[T]{value: val}
}

func newSentinel[T any]() *Node[T] {
	return &Node[T]{empty: true}
}

// Returns the value held by the node. The boolean is false for a sentinel (or nil) node.
func (n *Node[T]) Value() (T, bool) {
	if n == nil || n.empty {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (n *Node[T]) IsEmpty() bool {
	return n == nil || n.empty
}

// Left child, or nil if absent
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right child, or nil if absent
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// left-most node of the sub-tree (smallest value)
func (n *Node[T]) leftmost() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// right-most node of the sub-tree (largest value)
func (n *Node[T]) rightmost() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// number of levels in the sub-tree; zero for nil or sentinel
func (n *Node[T]) height() int {
	if n.IsEmpty() {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
