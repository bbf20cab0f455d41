package arbor

import "fmt"

// Node is a single keyed entry in a Tree. Key and Value may be read freely;
// Value may also be written through a handle returned by Find or a traversal.
// Key must not be modified through a handle, since the tree's ordering is
// built on it.
type Node[K Key, V any] struct {
	// Key orders the node within the tree.
	Key K

	// Value is the payload carried by the node. Opaque to the tree.
	Value V

	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V] // back-reference to the parent, nil at the root
}

// NewNode creates a detached node holding the given key and value.
// A detached node can serve as the root argument to NewWithRoot.
func NewNode[K Key, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{Key: key, Value: value}
}

// Left returns the node's left child, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the node's right child, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the node's parent, or nil at the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Depth returns the number of ancestors above the node: 0 at the root,
// 1 for a child of the root, and so on.
func (n *Node[K, V]) Depth() int {
	if n.parent == nil {
		return 0
	}
	return n.parent.Depth() + 1
}

// IsExternal reports whether the node is a leaf (no children).
func (n *Node[K, V]) IsExternal() bool {
	return n.left == nil && n.right == nil
}

// IsInternal reports whether the node has at least one child.
func (n *Node[K, V]) IsInternal() bool {
	return !n.IsExternal()
}

// String returns a debug representation of the node's key and value.
func (n *Node[K, V]) String() string {
	return fmt.Sprintf("Node(%v, %v)", n.Key, n.Value)
}
