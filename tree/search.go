package tree

import "github.com/aradix-go/art/node"

// Search returns the leaf stored at key under root, or nil if absent.
func Search[T any](root node.Node[T], key []byte) *node.Leaf[T] {
	n := root
	depth := 0

	for n != nil {
		if n.Kind() == node.KindLeaf {
			leaf := n.(*node.Leaf[T])
			if leaf.Matches(key) {
				return leaf
			}

			return nil
		}

		prefix := n.Prefix()
		if !prefix.Empty() {
			if prefix.CommonPrefixLen(key, depth) != prefix.Len() {
				return nil
			}

			depth += prefix.Len()
		}

		if depth >= len(key) {
			return nil
		}

		n = n.FindChild(key[depth])
		depth++
	}

	return nil
}

// SearchPrefix returns the subtree rooted at the node whose path exactly
// covers prefix, or nil if no key under root starts with prefix. Descent
// stops the moment the accumulated path covers prefix.
func SearchPrefix[T any](root node.Node[T], prefix []byte) node.Node[T] {
	n := root
	depth := 0

	for n != nil {
		if depth >= len(prefix) {
			return n
		}

		if n.Kind() == node.KindLeaf {
			leaf := n.(*node.Leaf[T])
			if leaf.MatchesPrefix(prefix) {
				return leaf
			}

			return nil
		}

		p := n.Prefix()
		if !p.Empty() {
			matched := p.CommonPrefixLen(prefix, depth)

			remaining := len(prefix) - depth
			if remaining <= p.Len() {
				if matched == remaining {
					return n
				}

				return nil
			}

			if matched != p.Len() {
				return nil
			}

			depth += p.Len()
		}

		if depth >= len(prefix) {
			return n
		}

		n = n.FindChild(prefix[depth])
		depth++
	}

	return nil
}
