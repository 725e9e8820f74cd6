package goarrays

import "github.com/deadlyengineer/array-streams-with-go/internal/builder"

// Collect drains prod and returns its elements as a new Array, in order.
// If a function in the chain panics, the elements collected so far are released, prod is
// discarded, and the panic propagates.
func Collect[N Len, T any](prod Producer[N, T]) Array[N, T] {
	if owned, ok := prod.(*ownedProducer[N, T]); ok {
		return Array[N, T]{elems: owned.take()}
	}

	b := builder.New[T](lengthOf[N]())

	finalized := false

	defer func() {
		if !finalized {
			b.Discard()
		}
	}()

	drain(prod, func(elem T, _ int) {
		b.Push(elem)
	})

	elems := b.FinalizeUnchecked()
	finalized = true

	return Array[N, T]{elems: elems}
}

// Unzip drains prod and returns the first and second components of its pairs as two new Arrays, in order.
// If a function in the chain panics, the components collected so far are released, prod is
// discarded, and the panic propagates.
func Unzip[N Len, A any, B any](prod Producer[N, Pair[A, B]]) (Array[N, A], Array[N, B]) {
	n := lengthOf[N]()

	firsts := builder.New[A](n)
	seconds := builder.New[B](n)

	finalized := false

	defer func() {
		if !finalized {
			defer seconds.Discard()
			firsts.Discard()
		}
	}()

	drain(prod, func(elem Pair[A, B], _ int) {
		firsts.Push(elem.First)
		seconds.Push(elem.Second)
	})

	a := Array[N, A]{elems: firsts.FinalizeUnchecked()}
	b := Array[N, B]{elems: seconds.FinalizeUnchecked()}
	finalized = true

	return a, b
}
