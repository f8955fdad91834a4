// Package shared provides a persistent, copy-on-write Adaptive Radix Tree
// built for one writer and any number of concurrent readers.
//
// A single atomic pointer holds the tree's current state (root node plus
// size). Writes run under an internal lock, clone every node on the path
// from the root down to the node they need to change, and finish by
// swapping the atomic pointer to the new state in one store. A Snapshot
// taken before that store keeps observing the old state's nodes exactly
// as they were — nothing it can reach is ever mutated after the fact —
// so readers never take a lock and never see a partial update.
//
// This trades the manual per-node refcounting and epoch-based reclamation
// a non-garbage-collected implementation needs for the same guarantee
// Go's garbage collector already provides: a node stays alive for exactly
// as long as some Snapshot (or the live Tree) still references it, and is
// reclaimed automatically once none do.
package shared

import (
	"sync"
	"sync/atomic"

	"github.com/aradix-go/art/node"
	"github.com/aradix-go/art/tree"
)

type state[T any] struct {
	root node.Node[T]
	size int
}

// Tree is a persistent Adaptive Radix Tree. The zero value is an empty,
// ready-to-use tree. Mutating methods may be called from any number of
// goroutines; an internal lock runs them one at a time. Snapshot and the
// read-only methods on Snapshot are safe for any number of concurrent
// callers, including callers running concurrently with a writer.
type Tree[T any] struct {
	current  atomic.Pointer[state[T]]
	writeMu  sync.Mutex
	initOnce sync.Once
}

func (t *Tree[T]) init() {
	t.initOnce.Do(func() {
		if t.current.Load() == nil {
			t.current.Store(&state[T]{})
		}
	})
}

// Snapshot is an immutable, point-in-time view of a Tree, obtained in
// O(1) regardless of tree size since it only ever copies a single
// pointer.
type Snapshot[T any] struct {
	state *state[T]
}

// Snapshot returns an immutable view of the tree as of this call. It
// never blocks, and never blocks a concurrent writer.
func (t *Tree[T]) Snapshot() *Snapshot[T] {
	t.init()
	return &Snapshot[T]{state: t.current.Load()}
}

// Len reports the number of key/value pairs in the snapshot.
func (s *Snapshot[T]) Len() int { return s.state.size }

// IsEmpty reports whether the snapshot holds no key/value pairs.
func (s *Snapshot[T]) IsEmpty() bool { return s.state.size == 0 }

// Get returns the value stored at key in this snapshot and whether key
// was present.
func (s *Snapshot[T]) Get(key []byte) (T, bool) {
	if l := tree.Search(s.state.root, key); l != nil {
		return l.Value, true
	}

	var zero T

	return zero, false
}

// Visit walks every key/value pair in this snapshot in ascending key
// order, calling fn for each, stopping early if fn returns false.
func (s *Snapshot[T]) Visit(fn func(key []byte, value *T) bool) bool {
	return tree.Visit(s.state.root, func(leaf *node.Leaf[T]) bool {
		return fn(leaf.Key, &leaf.Value)
	})
}

// VisitPrefix walks every key/value pair in this snapshot whose key
// starts with prefix, in ascending key order.
func (s *Snapshot[T]) VisitPrefix(prefix []byte, fn func(key []byte, value *T) bool) bool {
	return tree.VisitPrefix(s.state.root, prefix, func(leaf *node.Leaf[T]) bool {
		return fn(leaf.Key, &leaf.Value)
	})
}

// Len reports the number of key/value pairs currently in the tree.
func (t *Tree[T]) Len() int {
	t.init()
	return t.current.Load().size
}

// Get returns the value currently stored at key and whether it was
// present. It is equivalent to t.Snapshot().Get(key) but skips the extra
// indirection.
func (t *Tree[T]) Get(key []byte) (T, bool) {
	t.init()

	st := t.current.Load()
	if l := tree.Search(st.root, key); l != nil {
		return l.Value, true
	}

	var zero T

	return zero, false
}

// Insert stores value at key, replacing any existing value, and returns
// the previous value plus whether one existed. Every node on the path
// from the root to key is cloned before being touched; everything else in
// the tree is shared, unmodified, with every Snapshot taken before this
// call returns.
func (t *Tree[T]) Insert(key []byte, value T) (T, bool) {
	return t.write(key, value, true)
}

// InsertNoReplace stores value at key only if key is not already present.
func (t *Tree[T]) InsertNoReplace(key []byte, value T) (T, bool) {
	return t.write(key, value, false)
}

func (t *Tree[T]) write(key []byte, value T, replace bool) (T, bool) {
	t.init()

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	old := t.current.Load()

	newRoot, oldVal, hadOld := insert(old.root, key, value, 0, replace)

	newSize := old.size
	if !hadOld {
		newSize++
	}

	t.current.Store(&state[T]{root: newRoot, size: newSize})

	return oldVal, hadOld
}

// Remove deletes key from the tree, returning the removed value and
// whether key was present. As with Insert, only the path to key is
// cloned.
func (t *Tree[T]) Remove(key []byte) (T, bool) {
	t.init()

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	old := t.current.Load()

	newRoot, oldVal, removed := remove(old.root, key, 0)

	newSize := old.size
	if removed {
		newSize--
	}

	t.current.Store(&state[T]{root: newRoot, size: newSize})

	return oldVal, removed
}
