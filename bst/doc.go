/*
Generic, unbalanced binary search tree (BST).

## Terminology

node: holds a single value and up to two owned child nodes ("left" and "right"). every value in the left sub-tree sorts lower than the node value, every value in the right sub-tree sorts higher

sentinel: a node with no value. only ever used as the root of an empty tree; it never has children

leaf: a node with no children

## Tricky Bits

- the tree is not balanced. strictly increasing (or decreasing) insertion order produces a linked list, so lookups walk the tree with loops instead of recursion
- duplicate values (compare == 0) are not stored twice, and do not change the tree length
- removing a node with two children copies the in-order successor value up into the node, then removes the successor from the right sub-tree
- removing the last value puts the sentinel root back

Tree is not safe for concurrent use. Wrap it in a SyncTree when sharing between goroutines.
*/
package bst
