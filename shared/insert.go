package shared

import "github.com/aradix-go/art/node"

// insert mirrors package tree's insert, with one difference: every branch
// node it is about to mutate is cloned first, so the previous state's
// nodes are left exactly as a concurrent Snapshot saw them.
func insert[T any](n node.Node[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	if n == nil {
		return node.NewLeaf(key, value), zero, false
	}

	if n.Kind() == node.KindLeaf {
		return insertToLeaf(n.(*node.Leaf[T]), key, value, depth, replace)
	}

	return insertToNode(n.Clone(), key, value, depth, replace)
}

func insertToLeaf[T any](leaf *node.Leaf[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	if leaf.Matches(key) {
		old := leaf.Value

		if !replace {
			return leaf, old, true
		}

		clone := leaf.Clone().(*node.Leaf[T])
		clone.Value = value

		return clone, old, true
	}

	i := longestCommonPrefix(leaf.Key, key, depth)
	if i == len(leaf.Key) || i == len(key) {
		panic("art: key is not prefix-free with respect to an existing key")
	}

	split := &node.Node4[T]{}
	if i > depth {
		split.SetPrefix(node.NewPrefix(key[depth:], i-depth))
	}

	// leaf is unchanged by this insert and is safe to share with every
	// snapshot that already reaches it; only the new branch is fresh.
	split.AddChild(leaf.Key[i], leaf)
	split.AddChild(key[i], node.NewLeaf(key, value))

	return split, zero, false
}

// insertToNode operates on n, a node already cloned by the caller and
// therefore safe to mutate in place.
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
