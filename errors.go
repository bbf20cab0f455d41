// Package arbor provides an unbalanced binary search tree with keyed
// insertion, lookup, deletion, and lazy ordered traversals. It is a
// didactic structure: no rebalancing is performed, so operation cost is
// bounded by tree height, not by log(size).
package arbor

import "errors"

// Key errors
var (
	// ErrInvalidKey indicates that a key does not satisfy the total
	// ordering contract (for floating-point key types, a NaN).
	ErrInvalidKey = errors.New("key is not totally ordered")

	// ErrDuplicateKey indicates that an inserted key is already present.
	ErrDuplicateKey = errors.New("key already present in tree")

	// ErrKeyNotFound indicates that no node holds the requested key.
	ErrKeyNotFound = errors.New("key not found in tree")
)
