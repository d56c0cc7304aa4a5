package bst

import (
	"fmt"
	"io"
	"os"

	"github.com/xlab/treeprint"
)

// Writes the node's value to `w`, followed by a newline. Returns an error wrapping ErrEmptyTree for a sentinel or nil node.
func Visit[T any](w io.Writer, n *Node[T]) error {
	val, ok := n.Value()
	if !ok {
		return fmt.Errorf("visit: %w", ErrEmptyTree)
	}
	_, err := fmt.Fprintf(w, "%v\n", val)
	return err
}

// Same as Visit, writing to stdout
func VisitStdout[T any](n *Node[T]) error {
	return Visit(os.Stdout, n)
}

// Renders the shape of the tree, for debugging. Missing left children are shown as "(none)" when the right child is present, so the two sides can't be confused.
func DebugPrintTree[T any](w io.Writer, t *Tree[T]) error {
	var out treeprint.Tree
	if t.root.IsEmpty() {
		out = treeprint.NewWithRoot("(empty)")
	} else {
		out = treeprint.NewWithRoot(fmt.Sprintf("%v", t.root.value))
		addBranches(out, t.root)
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func addBranches[T any](tree treeprint.Tree, n *Node[T]) {
	if n.IsLeaf() {
		return
	}
	for _, child := range []*Node[T]{n.left, n.right} {
		if child == nil {
			tree.AddNode("(none)")
			continue
		}
		label := fmt.Sprintf("%v", child.value)
		if child.IsLeaf() {
			tree.AddNode(label)
		} else {
			addBranches(tree.AddBranch(label), child)
		}
	}
}
