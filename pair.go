package goarrays

import "github.com/deadlyengineer/array-streams-with-go/internal/builder"

// Pair is an element produced by Zip and consumed by Unzip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// MakePair returns a pair of a and b.
func MakePair[A any, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Release releases both components, the first one first.
func (p Pair[A, B]) Release() {
	defer builder.Release(p.Second)

	builder.Release(p.First)
}
