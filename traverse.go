package arbor

import "iter"

// Traversal sequences are lazy: nodes are visited as the sequence is
// consumed, and each call builds a fresh traversal, so a sequence may be
// ranged over more than once. The sequences hold live handles into the
// tree; mutating the tree while one is still being consumed is not
// allowed.

// Inorder returns the tree's nodes in ascending key order
// (left subtree, node, right subtree).
func (t *Tree[K, V]) Inorder() iter.Seq[*Node[K, V]] {
	return InorderFrom(t.root)
}

// Preorder returns the tree's nodes in preorder
// (node, left subtree, right subtree).
func (t *Tree[K, V]) Preorder() iter.Seq[*Node[K, V]] {
	return PreorderFrom(t.root)
}

// Postorder returns the tree's nodes in postorder
// (left subtree, right subtree, node).
func (t *Tree[K, V]) Postorder() iter.Seq[*Node[K, V]] {
	return PostorderFrom(t.root)
}

// All returns the tree's default iteration order, which is Preorder from
// the root.
func (t *Tree[K, V]) All() iter.Seq[*Node[K, V]] {
	return t.Preorder()
}

// InorderFrom returns the inorder sequence of the subtree rooted at
// start. A nil start yields an empty sequence.
func InorderFrom[K Key, V any](start *Node[K, V]) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		inorderInternal(start, yield)
	}
}

// PreorderFrom returns the preorder sequence of the subtree rooted at
// start. A nil start yields an empty sequence.
func PreorderFrom[K Key, V any](start *Node[K, V]) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		preorderInternal(start, yield)
	}
}

// PostorderFrom returns the postorder sequence of the subtree rooted at
// start. A nil start yields an empty sequence.
func PostorderFrom[K Key, V any](start *Node[K, V]) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		postorderInternal(start, yield)
	}
}

// The recursive walkers return false once yield does, unwinding the whole
// traversal.

func inorderInternal[K Key, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return inorderInternal(n.left, yield) && yield(n) && inorderInternal(n.right, yield)
}

func preorderInternal[K Key, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return yield(n) && preorderInternal(n.left, yield) && preorderInternal(n.right, yield)
}

func postorderInternal[K Key, V any](n *Node[K, V], yield func(*Node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return postorderInternal(n.left, yield) && postorderInternal(n.right, yield) && yield(n)
}
