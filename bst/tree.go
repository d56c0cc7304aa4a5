package bst

import (
	"cmp"
	"errors"
	"fmt"
)

// Three-way comparison: negative if a sorts before b, zero if equal, positive if after.
type CompareFunc[T any] func(a, b T) int

type Tree[T any] struct {
	// never nil. a sentinel node when the tree is empty
	root    *Node[T]
	length  int
	compare CompareFunc[T]
}

var ErrEmptyTree = errors.New("binary search tree is empty")

var ErrNotFound = errors.New("value not found in binary search tree")

var ErrNoChild = errors.New("node has no child on that side")

// Creates a tree with no values, for any builtin ordered type.
func NewEmptyTree[T cmp.Ordered]() *Tree[T] {
	return NewEmptyTreeFunc(cmp.Compare[T])
}

// Creates a tree with `val` as the root node.
func NewTree[T cmp.Ordered](val T) *Tree[T] {
	return NewTreeFunc(cmp.Compare[T], val)
}

// Creates an empty tree ordered by the provided comparison function. Panics if `compare` is nil.
func NewEmptyTreeFunc[T any](compare CompareFunc[T]) *Tree[T] {
	if compare == nil {
		panic("bst: nil compare function")
	}
	return &Tree[T]{
		root:    newSentinel[T](),
		compare: compare,
	}
}

// Creates a tree ordered by the provided comparison function, with `val` as the root node. Panics if `compare` is nil.
func NewTreeFunc[T any](compare CompareFunc[T], val T) *Tree[T] {
	t := NewEmptyTreeFunc(compare)
	t.root = newNode(val)
	t.length = 1
	return t
}

// Number of values in the tree
func (t *Tree[T]) Len() int {
	return t.length
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root.IsEmpty()
}

// Returns the root node. For an empty tree this is the sentinel node (never nil).
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Number of levels in the tree; zero when empty.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// Reports whether the node has no children.
func (t *Tree[T]) IsLeaf(n *Node[T]) bool {
	return n.IsLeaf()
}

// Returns the left child of the root node.
//
// Returns an error wrapping ErrEmptyTree if the tree is empty, or ErrNoChild if the root has no left child.
func (t *Tree[T]) LeftChild() (*Node[T], error) {
	if t.root.IsEmpty() {
		return nil, fmt.Errorf("left child: %w", ErrEmptyTree)
	}
	if t.root.left == nil {
		return nil, fmt.Errorf("left child of root: %w", ErrNoChild)
	}
	return t.root.left, nil
}

// Returns the right child of the root node.
//
// Returns an error wrapping ErrEmptyTree if the tree is empty, or ErrNoChild if the root has no right child.
func (t *Tree[T]) RightChild() (*Node[T], error) {
	if t.root.IsEmpty() {
		return nil, fmt.Errorf("right child: %w", ErrEmptyTree)
	}
	if t.root.right == nil {
		return nil, fmt.Errorf("right child of root: %w", ErrNoChild)
	}
	return t.root.right, nil
}

func (t *Tree[T]) TryLeftChild() (*Node[T], bool) {
	return t.root.left, t.root.left != nil
}

func (t *Tree[T]) TryRightChild() (*Node[T], bool) {
	return t.root.right, t.root.right != nil
}
