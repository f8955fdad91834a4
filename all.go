//go:build go1.23

package art

import "iter"

// All returns a Go 1.23+ iterator over every key/value pair in the tree,
// in ascending key order. The iteration is lazy and can be interrupted
// with break, same as ranging over a map.
//
//	for key, value := range tree.All() {
//		fmt.Printf("%x -> %v\n", key, *value)
//	}
//
// Use Visit instead if the module targets an earlier Go version.
func (t *Tree[T]) All() iter.Seq2[[]byte, *T] {
	return func(yield func([]byte, *T) bool) {
		t.Visit(func(key []byte, value *T) bool {
			return yield(key, value)
		})
	}
}

// AllPrefix returns a Go 1.23+ iterator over every key/value pair whose
// key starts with prefix, in ascending key order.
//
//	for key, value := range tree.AllPrefix([]byte("user:")) {
//		fmt.Printf("%x -> %v\n", key, *value)
//	}
func (t *Tree[T]) AllPrefix(prefix []byte) iter.Seq2[[]byte, *T] {
	return func(yield func([]byte, *T) bool) {
		t.VisitPrefix(prefix, func(key []byte, value *T) bool {
			return yield(key, value)
		})
	}
}
