package bst

// Adds a value to the tree. Returns true if a new node was created, or false if an equal value was already present (in which case the tree is not modified).
func (t *Tree[T]) Add(val T) bool {
	if t.root.IsEmpty() {
		t.root = newNode(val)
		t.length++
		return true
	}
	if !t.root.insert(val, t.compare) {
		return false
	}
	t.length++
	return true
}

// Attaches a new leaf holding `val` at the correct position in the sub-tree. Returns false if the value already exists.
//
// n: non-sentinel Node at top of sub-tree to operate on. Must not be nil.
func (n *Node[T]) insert(val T, compare CompareFunc[T]) bool {
	for {
		order := compare(val, n.value)
		switch {
		case order == 0:
			return false
		case order < 0:
			if n.left == nil {
				n.left = newNode(val)
				return true
			}
			n = n.left
		default:
			if n.right == nil {
				n.right = newNode(val)
				return true
			}
			n = n.right
		}
	}
}
