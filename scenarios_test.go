package art_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	art "github.com/aradix-go/art"
	"github.com/aradix-go/art/key"
)

// TestScenario_StringBasic is scenario 1 from the testable-properties list:
// a handful of keys sharing overlapping prefixes of different lengths,
// including one long enough to force a heap-spilled prefix.
func TestScenario_StringBasic(t *testing.T) {
	Convey("Given a handful of keys with overlapping and divergent prefixes", t, func() {
		tr := art.New[int]()

		entries := []struct {
			k string
			v int
		}{
			{"hello world", 1},
			{"hello moon ", 2},
			{"h", 3},
			{"hello foo", 4},
			{"hello boo", 5},
			{"hello voo", 6},
			{"hello voa", 7},
			{"hello very long prefix that doesn't fit inline.", 8},
			{"hello world\x00 null", 9},
		}

		for _, e := range entries {
			tr.Insert(key.String(e.k), e.v)
		}

		Convey("Then every key resolves to its value", func() {
			for _, e := range entries {
				v, ok := tr.Get(key.String(e.k))
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, e.v)
			}
		})

		Convey("Then a missing key is absent", func() {
			_, ok := tr.Get(key.String("missing"))
			So(ok, ShouldBeFalse)
		})

		Convey("Then removing a missing key reports nothing removed", func() {
			_, removed := tr.Remove(key.String("missing"))
			So(removed, ShouldBeFalse)
		})

		Convey("Then removing an existing key returns its value once", func() {
			v, removed := tr.Remove(key.String("hello voa"))
			So(removed, ShouldBeTrue)
			So(v, ShouldEqual, 7)

			_, removedAgain := tr.Remove(key.String("hello voa"))
			So(removedAgain, ShouldBeFalse)
		})
	})
}

// TestScenario_IntegerSequence is scenario 2: enough sequential integer
// keys, inserted out of order, to push node shapes through every variant.
func TestScenario_IntegerSequence(t *testing.T) {
	Convey("Given 20000 sequential uint32 keys inserted in random order", t, func() {
		const n = 20000

		tr := art.New[int]()

		order := rand.New(rand.NewSource(1)).Perm(n)
		for _, i := range order {
			tr.Insert(key.Uint32(uint32(i)), i)
		}

		Convey("Then every key resolves under a different random order of lookups", func() {
			lookup := rand.New(rand.NewSource(2)).Perm(n)
			for _, i := range lookup {
				v, ok := tr.Get(key.Uint32(uint32(i)))
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, i)
			}
		})

		Convey("Then Len matches the number of distinct keys inserted", func() {
			So(tr.Len(), ShouldEqual, n)
		})
	})
}

// TestScenario_GrowThenShrink is scenario 3: two disjoint families of
// integer keys built from different byte shifts, then the first family
// fully removed, leaving only the second.
func TestScenario_GrowThenShrink(t *testing.T) {
	Convey("Given two disjoint 256-key families sharing a tree", t, func() {
		tr := art.New[uint32]()

		var firstSet, secondSet []uint32
		for i := 0; i < 256; i++ {
			firstSet = append(firstSet, uint32(i)<<24)
		}
		for i := 0; i < 256; i++ {
			secondSet = append(secondSet, uint32(i)<<16|1)
		}

		for _, k := range firstSet {
			tr.Insert(key.Uint32(k), k)
		}
		for _, k := range secondSet {
			tr.Insert(key.Uint32(k), k)
		}

		Convey("When every key in the first family is removed", func() {
			for _, k := range firstSet {
				_, removed := tr.Remove(key.Uint32(k))
				So(removed, ShouldBeTrue)
			}

			Convey("Then only the second family remains", func() {
				So(tr.Len(), ShouldEqual, len(secondSet))

				for _, k := range secondSet {
					v, ok := tr.Get(key.Uint32(k))
					So(ok, ShouldBeTrue)
					So(v, ShouldEqual, k)
				}

				for _, k := range firstSet {
					_, ok := tr.Get(key.Uint32(k))
					So(ok, ShouldBeFalse)
				}
			})
		})
	})
}

// TestScenario_ReplacementReturnsOld is scenario 4.
func TestScenario_ReplacementReturnsOld(t *testing.T) {
	Convey("Given a fresh tree", t, func() {
		tr := art.New[int]()

		Convey("Then the first insert of a key reports no previous value", func() {
			_, hadOld := tr.Insert(key.String("a"), 1)
			So(hadOld, ShouldBeFalse)

			Convey("Then a second insert of the same key returns the first value", func() {
				old, hadOld := tr.Insert(key.String("a"), 2)
				So(hadOld, ShouldBeTrue)
				So(old, ShouldEqual, 1)

				v, _ := tr.Get(key.String("a"))
				So(v, ShouldEqual, 2)
			})
		})
	})
}

// TestScenario_Fold is scenario 5: removing all but one sibling under a
// branch node folds that branch away entirely.
func TestScenario_Fold(t *testing.T) {
	Convey("Given three keys sharing the prefix abc", t, func() {
		tr := art.New[int]()
		tr.Insert(key.String("abc1"), 1)
		tr.Insert(key.String("abc2"), 2)
		tr.Insert(key.String("abc3"), 3)

		Convey("When the first and last are removed", func() {
			tr.Remove(key.String("abc1"))
			tr.Remove(key.String("abc3"))

			Convey("Then only abc2 remains, resolvable as a single compressed path", func() {
				So(tr.Len(), ShouldEqual, 1)

				v, ok := tr.Get(key.String("abc2"))
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 2)

				var keys []string
				tr.Visit(func(k []byte, _ *int) bool {
					keys = append(keys, string(k))
					return true
				})
				So(keys, ShouldResemble, []string{string(key.String("abc2"))})
			})
		})
	})
}
