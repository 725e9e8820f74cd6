package goarrays

import (
	"testing"

	"github.com/matryer/is"
)

func TestIntoIter(t *testing.T) {
	is := is.New(t)

	prod := IntoIter(Of[N3](1, 2, 3))

	is.Equal(prod.next(), 1)
	is.Equal(prod.next(), 2)
	is.Equal(prod.next(), 3)
}

func TestIntoIter_DiscardReleasesUnpulled(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	prod := IntoIter(tr.array())

	first := prod.next()
	second := prod.next()

	prod.discard()

	is.Equal(tr.released, map[int]int{2: 1, 3: 1})

	first.Release()
	second.Release()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})

	prod.discard()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
}

func TestIntoIter_DiscardUntouched(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	IntoIter(tr.array()).discard()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
}

func TestIntoIter_DiscardDrained(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	prod := IntoIter(tr.array())

	elems := []tracked{}
	for i := 0; i < 4; i++ {
		elems = append(elems, prod.next())
	}

	prod.discard()

	is.Equal(tr.released, map[int]int{})
	is.Equal(len(elems), 4)
	is.Equal(elems[3].tag, 3)
}

func TestIntoIter_ZeroArray(t *testing.T) {
	is := is.New(t)

	result := Collect(IntoIter(Array[N3, int]{}))

	is.Equal(result.Slice(), []int{0, 0, 0})
}

func TestCollect_OwnedTakesStorage(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	result := Collect(IntoIter(tr.array()))

	is.Equal(tr.released, map[int]int{})
	is.Equal(result.At(0).tag, 0)
	is.Equal(result.At(3).tag, 3)

	result.Release()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
}

func TestBorrow(t *testing.T) {
	is := is.New(t)

	arr := Of[N4](1, 2, 3, 4)

	result := Collect(Map(Borrow(&arr), func(ref Ref[int]) int {
		return ref.Get() * 2
	}))

	is.Equal(result.Slice(), []int{2, 4, 6, 8})
	is.Equal(arr.Slice(), []int{1, 2, 3, 4})
}

func TestBorrow_NeverReleases(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	arr := tr.array()

	func() {
		defer func() {
			is.Equal(recover(), "tag too large")
		}()

		Collect(Map(Borrow(&arr), func(ref Ref[tracked]) int {
			if ref.Get().tag >= 2 {
				panic("tag too large")
			}

			return ref.Get().tag
		}))
	}()

	is.Equal(tr.released, map[int]int{})

	arr.Release()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
}

func TestBorrow_PanicCollectingRefs(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	arr := tr.array()

	func() {
		defer func() {
			is.Equal(recover(), "tag too large")
		}()

		Collect(Map(Borrow(&arr), func(ref Ref[tracked]) Ref[tracked] {
			if ref.Get().tag == 3 {
				panic("tag too large")
			}

			return ref
		}))
	}()

	is.Equal(tr.released, map[int]int{})

	arr.Release()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})
}

func TestBorrowMut_PanicZipped(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	borrowed := tr.arrayFrom(10)

	pairs := Map(Zip(IntoIter(tr.arrayFrom(0)), BorrowMut(&borrowed)), func(pair Pair[tracked, Mut[tracked]]) tracked {
		if pair.First.tag == 2 {
			pair.First.Release()
			panic("tag too large")
		}

		return pair.First
	})

	func() {
		defer func() {
			is.Equal(recover(), "tag too large")
		}()

		Collect(pairs)
	}()

	is.Equal(tr.released, map[int]int{0: 1, 1: 1, 2: 1, 3: 1})

	borrowed.Release()

	is.Equal(tr.released, map[int]int{
		0: 1, 1: 1, 2: 1, 3: 1,
		10: 1, 11: 1, 12: 1, 13: 1,
	})
}

func TestBorrowMut_Replace(t *testing.T) {
	is := is.New(t)

	a := Of[N4](0, 1, 2, 3)
	b := Of[N4](5, 6, 7, 8)

	result := Collect(Map(Zip(IntoIter(a), BorrowMut(&b)), func(pair Pair[int, Mut[int]]) int {
		return pair.Second.Replace(pair.First)
	}))

	is.Equal(result.Slice(), []int{5, 6, 7, 8})
	is.Equal(b.Slice(), []int{0, 1, 2, 3})
}

func TestBorrowMut_NeverReleases(t *testing.T) {
	is := is.New(t)

	tr := newTracker()

	arr := tr.array()

	tags := Collect(Map(BorrowMut(&arr), func(mut Mut[tracked]) int {
		mut.Ptr().tag += 10
		return mut.Get().tag
	}))

	is.Equal(tags.Slice(), []int{10, 11, 12, 13})
	is.Equal(tr.released, map[int]int{})
}

func TestMut_Set(t *testing.T) {
	is := is.New(t)

	arr := Of[N2]("a", "b")

	Each(BorrowMut(&arr), func(mut Mut[string], index int) {
		mut.Set(mut.Get() + mut.Get())
	})

	is.Equal(arr.Slice(), []string{"aa", "bb"})
}

// tracker records how often each tracked element has been released.
type tracker struct {
	released map[int]int
}

type tracked struct {
	tag     int
	tracker *tracker
}

func newTracker() *tracker {
	return &tracker{
		released: map[int]int{},
	}
}

func (tr *tracker) elem(tag int) tracked {
	return tracked{
		tag:     tag,
		tracker: tr,
	}
}

// array returns elements tagged 0 to 3.
func (tr *tracker) array() Array[N4, tracked] {
	return tr.arrayFrom(0)
}

// arrayFrom returns elements tagged first to first+3.
func (tr *tracker) arrayFrom(first int) Array[N4, tracked] {
	return Of[N4](tr.elem(first), tr.elem(first+1), tr.elem(first+2), tr.elem(first+3))
}

func (d tracked) Release() {
	d.tracker.released[d.tag]++
}
