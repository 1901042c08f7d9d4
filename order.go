package seqquery

import (
	"cmp"
	"context"
	"iter"

	"golang.org/x/exp/slices"
)

// CompareFunc returns a negative number if a is less than b, a positive number if a is greater than b,
// and zero if a and b are equal.
type CompareFunc[T any] func(a T, b T) int

// Direction is the direction in which a sort key is ordered.
type Direction int

const (
	// Ascending orders elements from the smallest key to the largest.
	Ascending Direction = iota

	// Descending orders elements from the largest key to the smallest.
	Descending
)

// Ordered is a sorted stream. Further sort keys can be added using ThenBy or ThenByFunc.
// An Ordered is immutable: adding sort keys returns a new Ordered.
type Ordered[T any] struct {
	source ProducerFunc[T]
	keys   []sortKey[T]
}

// sortKey computes the keys of all elems, and returns a function comparing the elements at indexes i and j.
// It returns nil if the stream's context has been canceled.
type sortKey[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elems []T) func(i int, j int) int

// OrderBy returns a stream that produces the elements of prod sorted by the keys returned by key.
// The sort is stable: elements with equal keys are produced in the order produced by prod.
func OrderBy[T any, K cmp.Ordered](prod ProducerFunc[T], key MapperFunc[T, K], dir Direction) *Ordered[T] {
	return OrderByFunc(prod, key, cmp.Compare[K], dir)
}

// OrderByFunc works like OrderBy, comparing keys using compare.
func OrderByFunc[T any, K any](prod ProducerFunc[T], key MapperFunc[T, K], compare CompareFunc[K], dir Direction) *Ordered[T] {
	return &Ordered[T]{
		source: prod,
		keys:   []sortKey[T]{newSortKey(key, compare, dir)},
	}
}

// ThenBy returns a stream that orders elements with equal keys in ord by the keys returned by key.
func ThenBy[T any, K cmp.Ordered](ord *Ordered[T], key MapperFunc[T, K], dir Direction) *Ordered[T] {
	return ThenByFunc(ord, key, cmp.Compare[K], dir)
}

// ThenByFunc works like ThenBy, comparing keys using compare.
func ThenByFunc[T any, K any](ord *Ordered[T], key MapperFunc[T, K], compare CompareFunc[K], dir Direction) *Ordered[T] {
	return &Ordered[T]{
		source: ord.source,
		keys:   append(slices.Clone(ord.keys), newSortKey(key, compare, dir)),
	}
}

// Producer returns a producer that consumes all elements of the upstream producer, sorts them, and produces
// them in sorted order.
// The keys of each element are computed once per pass, the index passed to the key mappers is the element's
// index in the order produced by the upstream producer.
func (o *Ordered[T]) Producer() ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			elems := []T{}

			for elem := range o.source(ctx, cancel) {
				elems = append(elems, elem)
			}

			if contextDone(ctx) {
				return
			}

			compares := make([]func(i int, j int) int, len(o.keys))

			for i, key := range o.keys {
				compares[i] = key(ctx, cancel, elems)

				if contextDone(ctx) {
					return
				}
			}

			order := make([]int, len(elems))
			for i := range order {
				order[i] = i
			}

			slices.SortStableFunc(order, func(a int, b int) bool {
				for _, compare := range compares {
					if c := compare(a, b); c != 0 {
						return c < 0
					}
				}

				return false
			})

			for _, i := range order {
				if !yield(elems[i]) {
					return
				}
			}
		}
	}
}

// Reverse returns a producer that consumes all elements of prod and produces them in reverse order.
func Reverse[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			elems := []T{}

			for elem := range prod(ctx, cancel) {
				elems = append(elems, elem)
			}

			if contextDone(ctx) {
				return
			}

			for i := len(elems) - 1; i >= 0; i-- {
				if !yield(elems[i]) {
					return
				}
			}
		}
	}
}

func newSortKey[T any, K any](key MapperFunc[T, K], compare CompareFunc[K], dir Direction) sortKey[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elems []T) func(i int, j int) int {
		keys := make([]K, len(elems))

		for i, elem := range elems {
			keys[i] = key(ctx, cancel, elem, uint64(i))

			if contextDone(ctx) {
				return nil
			}
		}

		if dir == Descending {
			return func(i int, j int) int {
				return compare(keys[j], keys[i])
			}
		}

		return func(i int, j int) int {
			return compare(keys[i], keys[j])
		}
	}
}
