package arbor

import (
	"cmp"
	"fmt"
	"strings"
)

// Key is the constraint satisfied by tree key types: any ordered scalar.
type Key interface {
	cmp.Ordered
}

// Tree is an unbalanced binary search tree mapping keys to values.
// Duplicate keys are rejected. The zero value is not usable; construct
// with New or NewWithRoot.
//
// A Tree is not safe for concurrent use. Callers needing shared access
// must synchronize externally. Mutating the tree while a traversal
// sequence is still being consumed is not allowed.
type Tree[K Key, V any] struct {
	root *Node[K, V]
	size int

	// comparisons counts key comparisons made by Insert, Find, Get and
	// Remove. Instrumentation only; never consulted for correctness.
	comparisons uint64
}

// New creates an empty tree.
func New[K Key, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewWithRoot creates a tree wrapping a single pre-existing root node.
// The node must be detached (no parent or children). A nil root yields
// an empty tree.
func NewWithRoot[K Key, V any](root *Node[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{root: root}
	if root != nil {
		t.size = 1
	}
	return t
}

// Size returns the number of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Root returns the tree's root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Comparisons returns the number of key comparisons made so far.
func (t *Tree[K, V]) Comparisons() uint64 {
	return t.comparisons
}

// ResetComparisons resets the comparison counter to zero.
func (t *Tree[K, V]) ResetComparisons() {
	t.comparisons = 0
}

// compare orders two keys and records the comparison.
func (t *Tree[K, V]) compare(a, b K) int {
	t.comparisons++
	return cmp.Compare(a, b)
}

// orderedKey reports whether a key satisfies the total ordering contract.
// The only cmp.Ordered value that fails is a floating-point NaN, which is
// unequal even to itself and would corrupt the tree's ordering.
func orderedKey[K Key](key K) bool {
	return key == key
}

// Insert places a new node holding key and value into the tree.
// It returns ErrInvalidKey if the key is not totally ordered, or
// ErrDuplicateKey if the key is already present. On failure the tree is
// unchanged; on success the size grows by exactly one.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if !orderedKey(key) {
		return ErrInvalidKey
	}
	if t.root == nil {
		t.root = &Node[K, V]{Key: key, Value: value}
		t.size++
		return nil
	}
	return t.insertInternal(t.root, key, value)
}

// insertInternal descends from n to the vacant slot where key belongs.
func (t *Tree[K, V]) insertInternal(n *Node[K, V], key K, value V) error {
	switch c := t.compare(key, n.Key); {
	case c == 0:
		return ErrDuplicateKey
	case c < 0:
		if n.left == nil {
			n.left = &Node[K, V]{Key: key, Value: value, parent: n}
			t.size++
			return nil
		}
		return t.insertInternal(n.left, key, value)
	default:
		if n.right == nil {
			n.right = &Node[K, V]{Key: key, Value: value, parent: n}
			t.size++
			return nil
		}
		return t.insertInternal(n.right, key, value)
	}
}

// Find returns the node holding key. It returns ErrInvalidKey if the key
// is not totally ordered, or ErrKeyNotFound if no node holds it. The
// returned handle is live: its Value may be read or rewritten, but its
// Key must not be changed.
func (t *Tree[K, V]) Find(key K) (*Node[K, V], error) {
	if !orderedKey(key) {
		return nil, ErrInvalidKey
	}
	n := t.findInternal(t.root, key)
	if n == nil {
		return nil, ErrKeyNotFound
	}
	return n, nil
}

// findInternal is the recursive binary search below n.
func (t *Tree[K, V]) findInternal(n *Node[K, V], key K) *Node[K, V] {
	if n == nil {
		return nil
	}
	switch c := t.compare(key, n.Key); {
	case c == 0:
		return n
	case c < 0:
		return t.findInternal(n.left, key)
	default:
		return t.findInternal(n.right, key)
	}
}

// Get returns the value held under key. Errors as Find.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n, err := t.Find(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return n.Value, nil
}

// Remove deletes the node holding key while preserving the search order.
// It returns ErrInvalidKey or ErrKeyNotFound analogous to Find; on failure
// the tree is unchanged, on success the size shrinks by exactly one.
//
// A node with two children is not physically unlinked: it takes over the
// key and value of its in-order successor (the minimum of its right
// subtree), and the successor is removed instead. Callers must not assume
// a key stays at a particular node handle across Remove calls.
func (t *Tree[K, V]) Remove(key K) error {
	if !orderedKey(key) {
		return ErrInvalidKey
	}
	root, removed := t.removeInternal(t.root, key)
	if !removed {
		return ErrKeyNotFound
	}
	t.root = root
	if t.root != nil {
		t.root.parent = nil
	}
	t.size--
	return nil
}

// removeInternal deletes key from the subtree rooted at n, returning the
// subtree's replacement root and whether a node was removed. Parent links
// are re-wired on every splice so Depth stays correct.
func (t *Tree[K, V]) removeInternal(n *Node[K, V], key K) (*Node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	switch c := t.compare(key, n.Key); {
	case c < 0:
		child, removed := t.removeInternal(n.left, key)
		n.left = child
		if child != nil {
			child.parent = n
		}
		return n, removed
	case c > 0:
		child, removed := t.removeInternal(n.right, key)
		n.right = child
		if child != nil {
			child.parent = n
		}
		return n, removed
	default:
		if n.left != nil && n.right != nil {
			// Two children: take over the in-order successor, then
			// remove the successor from the right subtree. The
			// successor has no left child, so that removal bottoms
			// out in a splice.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.Key, n.Value = succ.Key, succ.Value
			child, _ := t.removeInternal(n.right, succ.Key)
			n.right = child
			if child != nil {
				child.parent = n
			}
			return n, true
		}

		// Leaf or single child: splice the child (possibly nil) into
		// n's slot. The caller wires the child's parent link.
		child := n.left
		if child == nil {
			child = n.right
		}
		return child, true
	}
}

// Minimum returns the node with the smallest key, or nil for an empty
// tree.
func (t *Tree[K, V]) Minimum() *Node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// IsValid reports whether every node's key lies strictly within the open
// interval induced by its ancestors, i.e. whether the tree is a well
// formed binary search tree.
func (t *Tree[K, V]) IsValid() bool {
	return isValidInternal(t.root, nil, nil)
}

// isValidInternal checks the subtree at n against open bounds; a nil
// bound is unbounded.
func isValidInternal[K Key, V any](n *Node[K, V], lower, upper *K) bool {
	if n == nil {
		return true
	}
	if lower != nil && n.Key <= *lower {
		return false
	}
	if upper != nil && n.Key >= *upper {
		return false
	}
	return isValidInternal(n.left, lower, &n.Key) &&
		isValidInternal(n.right, &n.Key, upper)
}

// SearchComparisons reports how many key comparisons a linear scan of the
// tree's preorder key list needs to locate key, against how many the tree
// descent needs. Errors as Find. The tree's comparison counter is not
// touched.
func (t *Tree[K, V]) SearchComparisons(key K) (linear, tree int, err error) {
	if !orderedKey(key) {
		return 0, 0, ErrInvalidKey
	}

	found := false
	for n := range t.Preorder() {
		linear++
		if n.Key == key {
			found = true
			break
		}
	}
	if !found {
		return 0, 0, ErrKeyNotFound
	}

	for n := t.root; n != nil; {
		tree++
		switch c := cmp.Compare(key, n.Key); {
		case c == 0:
			return linear, tree, nil
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return linear, tree, nil
}

// String returns a debug representation listing the tree's nodes in
// sorted (inorder) order.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Tree(")
	first := true
	for n := range t.Inorder() {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n)
		first = false
	}
	sb.WriteByte(')')
	return sb.String()
}
