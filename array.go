package goarrays

import (
	"fmt"

	"github.com/deadlyengineer/array-streams-with-go/internal/builder"
	"golang.org/x/exp/slices"
)

// Releaser is implemented by elements that own resources.
// Every element moved into a chain is released exactly once, either by the chain when it
// is done with the element, or by whoever the chain handed the element to.
type Releaser interface {
	Release()
}

// Array is a sequence of exactly N elements of type T.
// An Array value owns its elements. Construct Arrays using New, Of, or FromSlice.
//
// Unlike a Go array, copying an Array value shares its elements: Set, IntoIter and Release
// on one copy are visible through every other copy. Arrays are move-only, so after a copy
// only one of the copies may be used, and only that one may be released or moved into IntoIter.
type Array[N Len, T any] struct {
	elems []T
}

// A LengthError is returned when the number of elements given to construct an Array
// does not match its length.
type LengthError struct {
	// Want is the length of the Array.
	Want int

	// Got is the number of elements given.
	Got int
}

// New returns an Array of N zero values.
func New[N Len, T any]() Array[N, T] {
	return Array[N, T]{
		elems: make([]T, lengthOf[N]()),
	}
}

// Of returns an Array of the given elements, in order.
// It panics with a *LengthError if the number of elements is not N.
func Of[N Len, T any](elems ...T) Array[N, T] {
	arr, err := FromSlice[N](elems)
	if err != nil {
		panic(err)
	}

	return arr
}

// FromSlice returns an Array of a copy of the elements of s, in order.
// If len(s) is not N, it returns a *LengthError.
func FromSlice[N Len, T any](s []T) (Array[N, T], error) {
	if want := lengthOf[N](); len(s) != want {
		return Array[N, T]{}, &LengthError{
			Want: want,
			Got:  len(s),
		}
	}

	elems := slices.Clone(s)
	if elems == nil {
		elems = []T{}
	}

	return Array[N, T]{elems: elems}, nil
}

// Equal returns true if a and b contain equal elements, in the same order.
func Equal[N Len, T comparable](a Array[N, T], b Array[N, T]) bool {
	return slices.Equal(a.storage(), b.storage())
}

// Len returns N.
func (a Array[N, T]) Len() int {
	return lengthOf[N]()
}

// At returns the element at index i.
func (a Array[N, T]) At(i int) T {
	return a.storage()[i]
}

// Set replaces the element at index i with v.
// The previous element is not released.
func (a *Array[N, T]) Set(i int, v T) {
	a.ensure()[i] = v
}

// Slice returns a copy of the elements.
func (a Array[N, T]) Slice() []T {
	return slices.Clone(a.storage())
}

// Release releases all elements. The Array must not be used afterwards.
func (a *Array[N, T]) Release() {
	elems := a.elems
	a.elems = nil

	builder.ReleaseAll(elems)
}

// String implements fmt.Stringer.
func (a Array[N, T]) String() string {
	return fmt.Sprint(a.storage())
}

// storage returns the backing elements, or N zero values for the zero Array.
func (a Array[N, T]) storage() []T {
	if a.elems == nil {
		return make([]T, lengthOf[N]())
	}

	return a.elems
}

// ensure returns the backing elements, allocating them for the zero Array.
func (a *Array[N, T]) ensure() []T {
	if a.elems == nil {
		a.elems = make([]T, lengthOf[N]())
	}

	return a.elems
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: want %d elements, got %d", e.Want, e.Got)
}
