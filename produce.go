package goarrays

import (
	"github.com/deadlyengineer/array-streams-with-go/internal/builder"
	"github.com/deadlyengineer/array-streams-with-go/internal/contract"
)

// Producer yields exactly N elements of type T, one per pull, in order.
//
// Producers are constructed by IntoIter, Borrow, BorrowMut, Map, MapIndex and Zip, and are
// drained by terminal consumers. A producer must be drained at most once; passing the same
// producer to a second consumer, or to two combinators, breaks its contract and the result
// is undefined. Build with the goarrays_debug tag to have such misuse panic.
type Producer[N Len, T any] interface {
	// next returns ownership of the next element.
	// It must be called at most N times.
	next() T

	// discard releases every element the producer still owns.
	discard()
}

// Ref is a read-only reference to an element of a borrowed Array.
// The borrowed Array keeps ownership of the element. A value obtained through Get is
// borrowed as well: it must not be released, nor be handed to Collect or Unzip, whose
// teardown releases what they gathered if the chain panics.
type Ref[T any] struct {
	p *T
}

// Mut is an exclusive reference to an element of a borrowed Array.
// As with Ref, a value obtained through Get stays owned by the borrowed Array.
// Only Replace hands ownership of an element to the caller.
type Mut[T any] struct {
	p *T
}

// ownedProducer moves elements out of an Array.
// Slots [0, pos) have been pulled, slots [pos, len(slots)) are still owned.
type ownedProducer[N Len, T any] struct {
	slots []T
	pos   int
}

// refProducer yields references to the elements of a borrowed Array.
type refProducer[N Len, T any] struct {
	elems []T
	pos   int
}

// mutProducer yields exclusive references to the elements of a borrowed Array.
type mutProducer[N Len, T any] struct {
	elems []T
	pos   int
}

// IntoIter returns a producer that moves the elements out of arr, in order.
// Ownership of all elements passes to the producer: arr must not be used afterwards.
// Elements that are never pulled are released when the producer is discarded.
func IntoIter[N Len, T any](arr Array[N, T]) Producer[N, T] {
	return &ownedProducer[N, T]{
		slots: arr.storage(),
	}
}

// Borrow returns a producer that produces read-only references to the elements of arr, in order.
// The producer never releases the referenced elements.
func Borrow[N Len, T any](arr *Array[N, T]) Producer[N, Ref[T]] {
	return &refProducer[N, T]{
		elems: arr.ensure(),
	}
}

// BorrowMut returns a producer that produces exclusive references to the elements of arr, in order.
// The producer never releases the referenced elements.
// arr must not be accessed by other means until the chain has been drained.
func BorrowMut[N Len, T any](arr *Array[N, T]) Producer[N, Mut[T]] {
	return &mutProducer[N, T]{
		elems: arr.ensure(),
	}
}

func (p *ownedProducer[N, T]) next() T {
	contract.Assert(p.pos < len(p.slots), "next called more than N times")

	elem := p.slots[p.pos]

	var zero T
	p.slots[p.pos] = zero

	p.pos++

	return elem
}

// discard releases the slots that have not been pulled.
// The range is taken from the live cursor, so discarding mid-drain releases exactly the suffix.
func (p *ownedProducer[N, T]) discard() {
	if p.pos >= len(p.slots) {
		return
	}

	rest := p.slots[p.pos:]
	p.pos = len(p.slots)

	builder.ReleaseAll(rest)
}

// take hands the untouched storage to the caller, leaving the producer empty.
func (p *ownedProducer[N, T]) take() []T {
	contract.Assert(p.pos == 0 && len(p.slots) == lengthOf[N](), "producer drained after next")

	slots := p.slots
	p.slots = nil
	p.pos = 0

	return slots
}

func (p *refProducer[N, T]) next() Ref[T] {
	contract.Assert(p.pos < len(p.elems), "next called more than N times")

	ref := Ref[T]{p: &p.elems[p.pos]}
	p.pos++

	return ref
}

func (p *refProducer[N, T]) discard() {}

func (p *mutProducer[N, T]) next() Mut[T] {
	contract.Assert(p.pos < len(p.elems), "next called more than N times")

	mut := Mut[T]{p: &p.elems[p.pos]}
	p.pos++

	return mut
}

func (p *mutProducer[N, T]) discard() {}

// Get returns a copy of the referenced element.
// The copy is borrowed, the Array still owns the element.
func (r Ref[T]) Get() T {
	return *r.p
}

// Get returns a copy of the referenced element.
// The copy is borrowed, the Array still owns the element.
func (m Mut[T]) Get() T {
	return *m.p
}

// Set overwrites the referenced element with v.
// The previous element is not released.
func (m Mut[T]) Set(v T) {
	*m.p = v
}

// Replace overwrites the referenced element with v and returns ownership of the previous element.
func (m Mut[T]) Replace(v T) T {
	old := *m.p
	*m.p = v

	return old
}

// Ptr returns a pointer to the referenced element.
// The pointer must not be retained after the chain has been drained.
func (m Mut[T]) Ptr() *T {
	return m.p
}
