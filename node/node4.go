package node

import "github.com/aradix-go/art/internal/debug"

// Node4 is the smallest branch shape, holding up to 4 children in two
// parallel arrays kept in ascending key-byte order. It is the shape every
// branch starts life as: lazy expansion only ever creates an N4 to
// distinguish two leaves or to split a mismatched prefix.
type Node4[T any] struct {
	Base

	Keys     [4]byte
	Children [4]Node[T]
}

var _ Node[any] = (*Node4[any])(nil)

// Kind always reports KindNode4.
func (n *Node4[T]) Kind() Kind { return KindNode4 }

// Full reports whether all 4 slots are occupied.
func (n *Node4[T]) Full() bool { return n.numChildren == 4 }

// Minimum descends through the first child, which holds the smallest key
// byte since Keys is kept sorted.
func (n *Node4[T]) Minimum() *Leaf[T] {
	if n.numChildren == 0 {
		return nil
	}

	return n.Children[0].Minimum()
}

// Maximum descends through the last occupied child, which holds the
// largest key byte since Keys is kept sorted.
func (n *Node4[T]) Maximum() *Leaf[T] {
	if n.numChildren == 0 {
		return nil
	}

	return n.Children[n.numChildren-1].Maximum()
}

// FindChild linearly scans the sorted key array; at this size a scan beats
// any fancier search, and it keeps every access inside one cache line.
func (n *Node4[T]) FindChild(b byte) Node[T] {
	for i := 0; i < n.numChildren; i++ {
		if n.Keys[i] == b {
			return n.Children[i]
		}
	}

	return nil
}

// AddChild installs child at b, inserting at the position that keeps Keys
// sorted and shifting the tail of both arrays right to make room. If b is
// already present, the existing child is replaced in place.
func (n *Node4[T]) AddChild(b byte, child Node[T]) {
	var i int
	for ; i < n.numChildren; i++ {
		if n.Keys[i] == b {
			n.Children[i] = child
			return
		}

		if b < n.Keys[i] {
			break
		}
	}

	debug.Assert(!n.Full(), "node4: AddChild called on a full node")

	copy(n.Keys[i+1:], n.Keys[i:n.numChildren])
	copy(n.Children[i+1:], n.Children[i:n.numChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.numChildren++
}

// RemoveChild deletes the child at b, shifting the remaining tail left to
// close the gap and keep Keys sorted.
func (n *Node4[T]) RemoveChild(b byte) {
	for i := 0; i < n.numChildren; i++ {
		if n.Keys[i] == b {
			copy(n.Keys[i:], n.Keys[i+1:n.numChildren])
			copy(n.Children[i:], n.Children[i+1:n.numChildren])
			n.Children[n.numChildren-1] = nil
			n.numChildren--

			return
		}
	}
}

// Clone returns a shallow copy of this node: independent Keys and
// Children arrays holding the same children.
func (n *Node4[T]) Clone() Node[T] {
	out := *n
	return &out
}

// Each calls fn for every child in ascending key-byte order, since Keys is
// kept sorted.
func (n *Node4[T]) Each(fn func(b byte, child Node[T]) bool) {
	for i := 0; i < n.numChildren; i++ {
		if !fn(n.Keys[i], n.Children[i]) {
			return
		}
	}
}

// Grow converts to a Node16 holding the same children.
func (n *Node4[T]) Grow() Node[T] {
	out := &Node16[T]{Base: n.Base}

	copy(out.Keys[:], n.Keys[:n.numChildren])
	copy(out.Children[:], n.Children[:n.numChildren])
	out.numChildren = n.numChildren

	return out
}

// Shrink folds this node into its sole remaining child when population has
// dropped to 1 — an N4 can never shrink into anything smaller than itself,
// so collapsing the node entirely is the only transition available. The
// child absorbs this node's prefix and the one surviving key byte; if the
// child is a leaf, its key already stands for that whole path and no
// further merge is needed.
//
// Called with more than one child, Shrink is a no-op: N4 has no population
// floor above 1.
func (n *Node4[T]) Shrink() Node[T] {
	if n.numChildren != 1 {
		return n
	}

	child := n.Children[0]

	if child.Kind() != KindLeaf {
		// Clone before mutating: child may still be referenced, unchanged,
		// by an older persistent snapshot (see package shared).
		child = child.Clone()
		child.SetPrefix(child.Prefix().Prepend(n.prefix.Bytes(), n.Keys[0]))
	}

	return child
}
