package seqquery

import (
	"context"
	"iter"
)

// Distinct returns a producer that produces the distinct elements of prod, in order of first occurrence.
func Distinct[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DistinctWith(prod, DefaultEqualityComparer[T]())
}

// DistinctWith returns a producer that produces the distinct elements of prod according to cmp, in order of first occurrence.
func DistinctWith[T any](prod ProducerFunc[T], cmp EqualityComparer[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := newKeyIndex(cmp)

			for elem := range prod(ctx, cancel) {
				if _, added := seen.add(elem); !added {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Union returns a producer that produces the distinct elements of a, followed by the distinct elements of b
// that were not already produced.
func Union[T comparable](a ProducerFunc[T], b ProducerFunc[T]) ProducerFunc[T] {
	return UnionWith(a, b, DefaultEqualityComparer[T]())
}

// UnionWith works like Union, using cmp to compare elements.
func UnionWith[T any](a ProducerFunc[T], b ProducerFunc[T], cmp EqualityComparer[T]) ProducerFunc[T] {
	return DistinctWith(Concat(a, b), cmp)
}

// Intersect returns a producer that produces the distinct elements of a that are also produced by b, in a's order.
// b is consumed completely before the first element is produced.
func Intersect[T comparable](a ProducerFunc[T], b ProducerFunc[T]) ProducerFunc[T] {
	return IntersectWith(a, b, DefaultEqualityComparer[T]())
}

// IntersectWith works like Intersect, using cmp to compare elements.
func IntersectWith[T any](a ProducerFunc[T], b ProducerFunc[T], cmp EqualityComparer[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			others, ok := indexAll(ctx, cancel, b, cmp)
			if !ok {
				return
			}

			emitted := newKeyIndex(cmp)

			for elem := range a(ctx, cancel) {
				if _, found := others.find(elem); !found {
					continue
				}

				if _, added := emitted.add(elem); !added {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Except returns a producer that produces the distinct elements of a that are not produced by b, in a's order.
// b is consumed completely before the first element is produced.
func Except[T comparable](a ProducerFunc[T], b ProducerFunc[T]) ProducerFunc[T] {
	return ExceptWith(a, b, DefaultEqualityComparer[T]())
}

// ExceptWith works like Except, using cmp to compare elements.
func ExceptWith[T any](a ProducerFunc[T], b ProducerFunc[T], cmp EqualityComparer[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen, ok := indexAll(ctx, cancel, b, cmp)
			if !ok {
				return
			}

			for elem := range a(ctx, cancel) {
				if _, added := seen.add(elem); !added {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// SequenceEqual returns true if a and b produce the same number of elements, and the elements are pairwise equal.
func SequenceEqual[T comparable](ctx context.Context, a ProducerFunc[T], b ProducerFunc[T]) (bool, error) {
	return SequenceEqualWith(ctx, a, b, DefaultEqualityComparer[T]())
}

// SequenceEqualWith works like SequenceEqual, using cmp to compare elements.
// It stops consuming both producers at the first difference.
func SequenceEqualWith[T any](ctx context.Context, a ProducerFunc[T], b ProducerFunc[T], cmp EqualityComparer[T]) (bool, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	next, stop := iter.Pull(b(ctx, cancel))
	defer stop()

	equal := true

	for elem := range a(ctx, cancel) {
		other, ok := next()
		if !ok || !cmp.Equal(elem, other) {
			equal = false
			break
		}
	}

	if equal {
		if _, ok := next(); ok {
			equal = false
		}
	}

	if err := streamError(ctx); err != nil {
		return false, err
	}

	return equal, nil
}

// indexAll adds all elements produced by prod to a new index.
// It returns false if the stream's context has been canceled.
func indexAll[T any](ctx context.Context, cancel context.CancelCauseFunc, prod ProducerFunc[T], cmp EqualityComparer[T]) (*keyIndex[T], bool) {
	idx := newKeyIndex(cmp)

	for elem := range prod(ctx, cancel) {
		idx.add(elem)
	}

	return idx, !contextDone(ctx)
}
