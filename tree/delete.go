package tree

import "github.com/aradix-go/art/node"

// Delete removes key from root, returning the node that should replace
// root in its parent slot (nil if the subtree is now empty), the removed
// value if any, and whether a match was found.
func Delete[T any](root node.Node[T], key []byte) (node.Node[T], T, bool) {
	return remove(root, key, 0)
}

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

	if newChild == nil {
		n.RemoveChild(b)
	} else if newChild != child {
		n.AddChild(b, newChild)
	}

	return n.Shrink(), old, true
}
