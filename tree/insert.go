// Package tree implements the recursive insert, delete, search and
// traversal algorithms that drive the node.Node shapes. Every operation
// takes the node occupying a slot and returns the node that should occupy
// it afterward, so a leaf splitting into a Node4 (or a Node4 folding back
// into a leaf) is just a different return value, not a special case the
// caller has to detect up front.
//
// Keys handed to this package must already be prefix-free encoded (see
// package key). Insert panics if it discovers two keys where one is a
// proper prefix of the other, since that violates the one precondition
// the whole tree depends on. Delete and Search report such a key as
// absent instead.
package tree

import "github.com/aradix-go/art/node"

// Insert installs value at key under root, returning the node that should
// replace root in its parent slot (or become the new tree root), the
// previous value stored at key if any, and whether one existed. When
// replace is false and key is already present, the existing value is left
// untouched but hadOld is still reported true.
func Insert[T any](root node.Node[T], key []byte, value T, replace bool) (node.Node[T], T, bool) {
	return insert(root, key, value, 0, replace)
}

func insert[T any](n node.Node[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	if n == nil {
		return node.NewLeaf(key, value), zero, false
	}

	if n.Kind() == node.KindLeaf {
		return insertToLeaf(n.(*node.Leaf[T]), key, value, depth, replace)
	}

	return insertToNode(n, key, value, depth, replace)
}

func insertToLeaf[T any](leaf *node.Leaf[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	if leaf.Matches(key) {
		old := leaf.Value
		if replace {
			leaf.Value = value
		}

		return leaf, old, true
	}

	i := longestCommonPrefix(leaf.Key, key, depth)
	if i == len(leaf.Key) || i == len(key) {
		panic("art: key is not prefix-free with respect to an existing key")
	}

	split := &node.Node4[T]{}
	if i > depth {
		split.SetPrefix(node.NewPrefix(key[depth:], i-depth))
	}

	split.AddChild(leaf.Key[i], leaf)
	split.AddChild(key[i], node.NewLeaf(key, value))

	return split, zero, false
}

func insertToNode[T any](n node.Node[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	prefix := n.Prefix()
	if !prefix.Empty() {
		match := prefix.CommonPrefixLen(key, depth)
		if match < prefix.Len() {
			if depth+match >= len(key) {
				panic("art: key is not prefix-free with respect to an existing key")
			}

			split := &node.Node4[T]{}
			split.SetPrefix(node.NewPrefix(prefix.Bytes(), match))

			branch := prefix.At(match)
			n.SetPrefix(prefix.DropPrefix(match + 1))

			split.AddChild(branch, n)
			split.AddChild(key[depth+match], node.NewLeaf(key, value))

			return split, zero, false
		}

		depth += prefix.Len()
	}

	if depth >= len(key) {
		panic("art: key is not prefix-free with respect to an existing key")
	}

	b := key[depth]

	child := n.FindChild(b)
	if child == nil {
		return addChild(n, b, node.NewLeaf(key, value)), zero, false
	}

	newChild, old, hadOld := insert(child, key, value, depth+1, replace)
	n.AddChild(b, newChild)

	return n, old, hadOld
}

// addChild installs child at b, growing n first if it has no free slot.
func addChild[T any](n node.Node[T], b byte, child node.Node[T]) node.Node[T] {
	if n.Full() {
		n = n.Grow()
	}

	n.AddChild(b, child)

	return n
}

func longestCommonPrefix(a, b []byte, depth int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := depth
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
