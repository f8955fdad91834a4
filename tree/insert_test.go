package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/aradix-go/art/key"
	"github.com/aradix-go/art/node"
	"github.com/aradix-go/art/tree"
)

func TestInsert(t *testing.T) {
	Convey("Given an empty root", t, func() {
		var root node.Node[int]

		Convey("When inserting the first key", func() {
			root, _, hadOld := tree.Insert(root, key.String("hello"), 1, true)

			Convey("Then the root becomes a leaf and hadOld is false", func() {
				So(root.Kind(), ShouldEqual, node.KindLeaf)
				So(hadOld, ShouldBeFalse)
			})

			Convey("When a second, divergent key is inserted", func() {
				root, _, hadOld = tree.Insert(root, key.String("help"), 2, true)

				Convey("Then the root becomes a Node4 splitting on the common prefix", func() {
					So(root.Kind(), ShouldEqual, node.KindNode4)
					So(hadOld, ShouldBeFalse)
					So(root.NumChildren(), ShouldEqual, 2)
				})

				Convey("Then both original keys are still reachable", func() {
					So(tree.Search(root, key.String("hello")).Value, ShouldEqual, 1)
					So(tree.Search(root, key.String("help")).Value, ShouldEqual, 2)
				})
			})

			Convey("When the same key is inserted again with replace=true", func() {
				newRoot, old, hadOld := tree.Insert(root, key.String("hello"), 99, true)

				Convey("Then the old value is returned and the new one replaces it", func() {
					So(hadOld, ShouldBeTrue)
					So(old, ShouldEqual, 1)
					So(tree.Search(newRoot, key.String("hello")).Value, ShouldEqual, 99)
				})
			})

			Convey("When the same key is inserted again with replace=false", func() {
				newRoot, old, hadOld := tree.Insert(root, key.String("hello"), 99, false)

				Convey("Then the old value is returned and the tree is untouched", func() {
					So(hadOld, ShouldBeTrue)
					So(old, ShouldEqual, 1)
					So(tree.Search(newRoot, key.String("hello")).Value, ShouldEqual, 1)
				})
			})
		})
	})

	Convey("Given a tree growing through every node shape", t, func() {
		var root node.Node[int]

		for i := 0; i < 64; i++ {
			root, _, _ = tree.Insert(root, key.Uint8(uint8(i)), i, true)
		}

		Convey("Then it has grown past Node48 into a Node256", func() {
			So(root.Kind(), ShouldEqual, node.KindNode256)
		})

		Convey("Then every inserted key is still reachable", func() {
			for i := 0; i < 64; i++ {
				l := tree.Search(root, key.Uint8(uint8(i)))
				So(l, ShouldNotBeNil)
				So(l.Value, ShouldEqual, i)
			}
		})
	})

	Convey("Given a key that is a proper prefix of another already in the tree", t, func() {
		var root node.Node[int]
		root, _, _ = tree.Insert(root, []byte("ab"), 1, true)

		Convey("Then inserting a prefix of it panics", func() {
			So(func() {
				tree.Insert(root, []byte("a"), 2, true)
			}, ShouldPanic)
		})
	})
}
