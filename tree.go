// Package art provides an Adaptive Radix Tree: a space-efficient,
// sorted, prefix-compressed associative structure keyed by byte slices.
//
// # Overview
//
// An ART node grows through four shapes — Node4, Node16, Node48, Node256
// — as the number of distinct children at that point in the tree grows,
// and shrinks back down the same ladder as children are removed. Growth
// and shrinkage only ever happen lazily, when an operation actually needs
// the extra room or has just freed enough of it, so a tree sitting near a
// threshold never thrashes between shapes. Runs of nodes with only one
// child are never created: inner nodes are built only to distinguish
// between two or more leaves (lazy expansion), and collapse back into
// their sole surviving child the moment a deletion leaves them with just
// one (path compression).
//
// # Keys
//
// Every key inserted into a Tree must be prefix-free with respect to
// every other key already in it: neither key may be a proper prefix of
// the other. This is what lets every stored key terminate in a leaf
// rather than ambiguously at an internal node. Package key provides
// encoders for strings, byte strings and both signed and unsigned
// fixed-width integers that establish this property by construction; see
// its documentation before reaching for raw byte slices.
//
// # Node types
//
//   - Node4: 2 to 4 children, sorted parallel arrays, a linear scan beats
//     anything fancier at this size.
//   - Node16: 5 to 16 children, same sorted-array layout at four times
//     the capacity.
//   - Node48: 17 to 48 children, a 256-entry byte index into a dense
//     48-slot child array.
//   - Node256: 49 to 256 children, direct indexing with no search at all.
//
// # Thread safety
//
// A Tree is not safe for concurrent use. Package shared provides a
// persistent, copy-on-write variant built for exactly that: readers take
// an O(1) snapshot and never block a concurrent writer.
package art

import (
	"github.com/aradix-go/art/internal/debug"
	"github.com/aradix-go/art/node"
	"github.com/aradix-go/art/tree"
)

// Tree is an Adaptive Radix Tree mapping prefix-free byte-slice keys to
// values of type T. The zero value is an empty, ready-to-use tree.
type Tree[T any] struct {
	root node.Node[T]
	size int
}

// New returns an empty Tree. Using the zero value directly works just as
// well; New exists for symmetry with map-like constructors.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Len reports the number of key/value pairs stored in the tree.
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no key/value pairs.
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// Search returns the leaf stored at key, or nil if key is absent.
func (t *Tree[T]) Search(key []byte) *node.Leaf[T] {
	return tree.Search(t.root, key)
}

// Get returns the value stored at key and whether key was present.
func (t *Tree[T]) Get(key []byte) (T, bool) {
	if l := t.Search(key); l != nil {
		return l.Value, true
	}

	var zero T

	return zero, false
}

// GetMut returns a pointer to the value stored at key, or nil if key is
// absent. Mutating through the returned pointer is safe and does not
// disturb the tree's structure, since a leaf's key never changes once
// stored.
func (t *Tree[T]) GetMut(key []byte) *T {
	if l := t.Search(key); l != nil {
		return &l.Value
	}

	return nil
}

// Minimum returns the leaf holding the lexicographically smallest key in
// the tree, or nil if the tree is empty.
func (t *Tree[T]) Minimum() *node.Leaf[T] {
	if t.root == nil {
		return nil
	}

	return t.root.Minimum()
}

// Maximum returns the leaf holding the lexicographically largest key in
// the tree, or nil if the tree is empty.
func (t *Tree[T]) Maximum() *node.Leaf[T] {
	if t.root == nil {
		return nil
	}

	return t.root.Maximum()
}

// Insert stores value at key, replacing any existing value. It returns
// the previous value and whether one existed.
func (t *Tree[T]) Insert(key []byte, value T) (T, bool) {
	return t.insert(key, value, true)
}

// InsertNoReplace stores value at key only if key is not already
// present. It returns the existing value and true if key was already
// present, leaving the tree untouched.
func (t *Tree[T]) InsertNoReplace(key []byte, value T) (T, bool) {
	return t.insert(key, value, false)
}

func (t *Tree[T]) insert(key []byte, value T, replace bool) (T, bool) {
	debug.Assert(len(key) > 0, "insert: key must not be empty")

	root, old, hadOld := tree.Insert(t.root, key, value, replace)
	t.root = root

	if !hadOld {
		t.size++
	}

	debug.Log("insert", "key=%x replace=%v hadOld=%v size=%d", key, replace, hadOld, t.size)

	return old, hadOld
}

// Remove deletes key from the tree, returning the removed value and
// whether key was present.
func (t *Tree[T]) Remove(key []byte) (T, bool) {
	root, old, removed := tree.Delete(t.root, key)
	t.root = root

	if removed {
		t.size--
	}

	debug.Log("remove", "key=%x removed=%v size=%d", key, removed, t.size)

	return old, removed
}

// Visit walks every key/value pair in ascending key order, calling fn for
// each. It stops as soon as fn returns false, and reports whether the
// walk was interrupted that way.
func (t *Tree[T]) Visit(fn func(key []byte, value *T) bool) bool {
	return tree.Visit(t.root, func(leaf *node.Leaf[T]) bool {
		return fn(leaf.Key, &leaf.Value)
	})
}

// VisitPrefix walks every key/value pair whose key starts with prefix, in
// ascending key order, stopping early on fn returning false.
func (t *Tree[T]) VisitPrefix(prefix []byte, fn func(key []byte, value *T) bool) bool {
	return tree.VisitPrefix(t.root, prefix, func(leaf *node.Leaf[T]) bool {
		return fn(leaf.Key, &leaf.Value)
	})
}
