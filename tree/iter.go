package tree

import "github.com/aradix-go/art/node"

// Visit walks every leaf reachable from n in ascending key order, calling
// fn for each. It stops as soon as fn returns false, and reports whether
// the walk was interrupted that way.
func Visit[T any](n node.Node[T], fn func(leaf *node.Leaf[T]) bool) bool {
	if n == nil {
		return false
	}

	if n.Kind() == node.KindLeaf {
		return !fn(n.(*node.Leaf[T]))
	}

	stopped := false

	n.Each(func(_ byte, child node.Node[T]) bool {
		stopped = Visit(child, fn)
		return !stopped
	})

	return stopped
}

// VisitPrefix walks every leaf under root whose key starts with prefix,
// in ascending key order, stopping early on fn returning false.
func VisitPrefix[T any](root node.Node[T], prefix []byte, fn func(leaf *node.Leaf[T]) bool) bool {
	sub := SearchPrefix(root, prefix)
	if sub == nil {
		return false
	}

	return Visit(sub, func(leaf *node.Leaf[T]) bool {
		if !leaf.MatchesPrefix(prefix) {
			return true
		}

		return fn(leaf)
	})
}

// ChildAfter returns the child with the smallest key byte strictly
// greater than after, along with that byte, or ok = false if n has none.
// It is the forward-traversal primitive a stateful cursor uses to resume
// descent into a branch node once it has finished with an earlier child,
// without having to re-scan from the start of the node.
//
// This is a narrower contract than an inclusive "smallest byte >= after":
// a child sitting exactly at after is never returned. Nothing in this
// package needs the inclusive form (Visit and VisitPrefix walk every
// child instead of resuming from a byte), so the simpler exclusive form
// is what's implemented; see DESIGN.md for the deliberate narrowing.
func ChildAfter[T any](n node.Node[T], after byte) (b byte, child node.Node[T], ok bool) {
	n.Each(func(cb byte, cn node.Node[T]) bool {
		if cb <= after {
			return true
		}

		b, child, ok = cb, cn, true

		return false
	})

	return b, child, ok
}
