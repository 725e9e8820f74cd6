package goarrays

import "golang.org/x/exp/constraints"

// ConsumerFunc consumes element elem, taking ownership of it.
// The index is the 0-based position of elem in the Array.
type ConsumerFunc[T any] func(elem T, index int)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based position of elem in the Array.
type AccumulatorFunc[T any, A any] func(acc A, elem T, index int) A

// Each calls each for each element produced by prod, in order.
func Each[N Len, T any](prod Producer[N, T], each ConsumerFunc[T]) {
	drain(prod, each)
}

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc, returning the final accumulator.
func Reduce[N Len, T any, A any](prod Producer[N, T], acc A, reduce AccumulatorFunc[T, A]) A {
	drain(prod, func(elem T, index int) {
		acc = reduce(acc, elem, index)
	})

	return acc
}

// Sum returns the sum of the elements produced by prod.
func Sum[N Len, T constraints.Integer | constraints.Float](prod Producer[N, T]) T {
	var zero T

	return Reduce(prod, zero, func(acc T, elem T, _ int) T {
		return acc + elem
	})
}

// drain pulls exactly N elements from prod, in order, passing each to each.
// prod is discarded afterwards, also if each or prod panic.
func drain[N Len, T any](prod Producer[N, T], each ConsumerFunc[T]) {
	defer prod.discard()

	n := lengthOf[N]()

	for index := 0; index < n; index++ {
		each(prod.next(), index)
	}
}
