package shared

import "github.com/aradix-go/art/node"

// remove mirrors package tree's remove, cloning every branch node before
// mutating it so the previous state is left untouched for any concurrent
// Snapshot.
func remove[T any](n node.Node[T], key []byte, depth int) (node.Node[T], T, bool) {
	var zero T

	if n == nil {
		return nil, zero, false
	}

	if n.Kind() == node.KindLeaf {
		leaf := n.(*node.Leaf[T])
		if leaf.Matches(key) {
			return nil, leaf.Value, true
		}

		return n, zero, false
	}

	prefix := n.Prefix()
	if !prefix.Empty() {
		if prefix.CommonPrefixLen(key, depth) != prefix.Len() {
			return n, zero, false
		}

		depth += prefix.Len()
	}

	if depth >= len(key) {
		return n, zero, false
	}

	b := key[depth]

	child := n.FindChild(b)
	if child == nil {
		return n, zero, false
	}

	newChild, old, removed := remove(child, key, depth+1)
	if !removed {
		return n, zero, false
	}

	clone := n.Clone()

	if newChild == nil {
		clone.RemoveChild(b)
	} else {
		clone.AddChild(b, newChild)
	}

	return clone.Shrink(), old, true
}
