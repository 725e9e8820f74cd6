// Package builder accumulates a fixed number of elements and hands them out as a
// completed backing slice.
package builder

import "github.com/deadlyengineer/array-streams-with-go/internal/contract"

// releaser matches goarrays.Releaser without importing it.
type releaser interface {
	Release()
}

// A Builder collects up to a fixed capacity of pushed elements.
// The zero Builder has capacity 0.
type Builder[T any] struct {
	items []T
}

// New returns an empty builder for exactly capacity elements.
func New[T any](capacity int) *Builder[T] {
	return &Builder[T]{
		items: make([]T, 0, capacity),
	}
}

// Push takes ownership of v.
// Pushing more than capacity elements breaks the builder's contract.
func (b *Builder[T]) Push(v T) {
	contract.Assert(len(b.items) < cap(b.items), "push past builder capacity")

	b.items = append(b.items, v)
}

// Len returns the number of elements pushed so far.
func (b *Builder[T]) Len() int {
	return len(b.items)
}

// FinalizeUnchecked hands ownership of all pushed elements to the caller and leaves
// the builder empty. It must only be called after exactly capacity pushes.
func (b *Builder[T]) FinalizeUnchecked() []T {
	contract.Assert(len(b.items) == cap(b.items), "finalize before builder is full")

	items := b.items
	b.items = nil

	return items
}

// Discard releases exactly the elements pushed so far and leaves the builder empty.
func (b *Builder[T]) Discard() {
	items := b.items
	b.items = nil

	ReleaseAll(items)
}

// Release releases v if it implements Release() and does nothing otherwise.
func Release[T any](v T) {
	if r, ok := any(v).(releaser); ok {
		r.Release()
	}
}

// ReleaseAll releases every element of items, in order, and zeroes the slots.
// A panicking Release does not stop the remaining elements from being released.
func ReleaseAll[T any](items []T) {
	if len(items) == 0 {
		return
	}

	defer ReleaseAll(items[1:])

	v := items[0]

	var zero T
	items[0] = zero

	Release(v)
}
