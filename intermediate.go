package goarrays

import "github.com/deadlyengineer/array-streams-with-go/internal/builder"

// Function returns the result of applying an operation to elem.
// It takes ownership of elem.
type Function[T any, U any] func(elem T) U

// IndexFunction returns the result of applying an operation to elem.
// The index is the 0-based position of elem in the Array.
// It takes ownership of elem.
type IndexFunction[T any, U any] func(elem T, index int) U

type mapProducer[N Len, T any, U any] struct {
	prod Producer[N, T]
	mapp Function[T, U]
}

type mapIndexProducer[N Len, T any, U any] struct {
	prod  Producer[N, T]
	mapp  IndexFunction[T, U]
	index int
}

type zipProducer[N Len, A any, B any] struct {
	a Producer[N, A]
	b Producer[N, B]
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
// mapp is called exactly once per element, in order, and only while the chain is being drained.
func Map[N Len, T any, U any](prod Producer[N, T], mapp Function[T, U]) Producer[N, U] {
	return &mapProducer[N, T, U]{
		prod: prod,
		mapp: mapp,
	}
}

// MapIndex is like Map, but also passes the index of each element to mapp.
func MapIndex[N Len, T any, U any](prod Producer[N, T], mapp IndexFunction[T, U]) Producer[N, U] {
	return &mapIndexProducer[N, T, U]{
		prod: prod,
		mapp: mapp,
	}
}

// Zip returns a producer that produces pairs of the elements produced by a and b, in order.
// For every index, a is pulled before b.
func Zip[N Len, A any, B any](a Producer[N, A], b Producer[N, B]) Producer[N, Pair[A, B]] {
	return &zipProducer[N, A, B]{
		a: a,
		b: b,
	}
}

// Identity returns a function that returns the same element it receives.
func Identity[T any]() Function[T, T] {
	return func(elem T) T {
		return elem
	}
}

func (p *mapProducer[N, T, U]) next() U {
	return p.mapp(p.prod.next())
}

func (p *mapProducer[N, T, U]) discard() {
	p.prod.discard()
}

func (p *mapIndexProducer[N, T, U]) next() U {
	index := p.index
	p.index++

	return p.mapp(p.prod.next(), index)
}

func (p *mapIndexProducer[N, T, U]) discard() {
	p.prod.discard()
}

// next holds the element pulled from a until b has produced its counterpart.
// If pulling b panics, that element is released before the panic continues.
func (p *zipProducer[N, A, B]) next() Pair[A, B] {
	first := p.a.next()

	paired := false

	defer func() {
		if !paired {
			builder.Release(first)
		}
	}()

	second := p.b.next()
	paired = true

	return Pair[A, B]{First: first, Second: second}
}

func (p *zipProducer[N, A, B]) discard() {
	defer p.b.discard()

	p.a.discard()
}
