package seqquery

import (
	"context"
	"iter"
)

// JoinFunc returns the result of joining element outer with a matching element inner.
type JoinFunc[T any, U any, R any] func(ctx context.Context, cancel context.CancelCauseFunc, outer T, inner U) R

// GroupJoinFunc returns the result of joining element outer with all of its matching elements.
// inner produces no elements if there are no matching elements.
type GroupJoinFunc[T any, U any, R any] func(ctx context.Context, cancel context.CancelCauseFunc, outer T, inner ProducerFunc[U]) R

// Join returns a producer that produces the inner equi-join of outer and inner.
// For each element produced by outer, in order, result is called with every element produced by inner whose
// key is equal, in inner's order. Elements of outer without a matching element are dropped.
// inner is consumed completely, and grouped by key, before the first element is produced.
func Join[T any, U any, K comparable, R any](outer ProducerFunc[T], inner ProducerFunc[U], outerKey MapperFunc[T, K],
	innerKey MapperFunc[U, K], result JoinFunc[T, U, R],
) ProducerFunc[R] {
	return JoinWith(outer, inner, outerKey, innerKey, result, DefaultEqualityComparer[K]())
}

// JoinWith works like Join, using cmp to compare keys.
func JoinWith[T any, U any, K any, R any](outer ProducerFunc[T], inner ProducerFunc[U], outerKey MapperFunc[T, K],
	innerKey MapperFunc[U, K], result JoinFunc[T, U, R], cmp EqualityComparer[K],
) ProducerFunc[R] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[R] {
		return func(yield func(R) bool) {
			lookup, ok := buildLookup(ctx, cancel, inner, innerKey, cmp)
			if !ok {
				return
			}

			index := uint64(0)

			for elem := range outer(ctx, cancel) {
				key := outerKey(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				group, found := lookup.Grouping(key)
				if !found {
					continue
				}

				for _, match := range group.values {
					joined := result(ctx, cancel, elem, match)

					if contextDone(ctx) || !yield(joined) {
						return
					}
				}
			}
		}
	}
}

// GroupJoin returns a producer that calls result for each element produced by outer, in order, together with
// all elements produced by inner whose key is equal, in inner's order.
// Unlike Join, every element of outer is passed to result, even if there are no matching elements.
// inner is consumed completely, and grouped by key, before the first element is produced.
func GroupJoin[T any, U any, K comparable, R any](outer ProducerFunc[T], inner ProducerFunc[U], outerKey MapperFunc[T, K],
	innerKey MapperFunc[U, K], result GroupJoinFunc[T, U, R],
) ProducerFunc[R] {
	return GroupJoinWith(outer, inner, outerKey, innerKey, result, DefaultEqualityComparer[K]())
}

// GroupJoinWith works like GroupJoin, using cmp to compare keys.
func GroupJoinWith[T any, U any, K any, R any](outer ProducerFunc[T], inner ProducerFunc[U], outerKey MapperFunc[T, K],
	innerKey MapperFunc[U, K], result GroupJoinFunc[T, U, R], cmp EqualityComparer[K],
) ProducerFunc[R] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[R] {
		return func(yield func(R) bool) {
			lookup, ok := buildLookup(ctx, cancel, inner, innerKey, cmp)
			if !ok {
				return
			}

			index := uint64(0)

			for elem := range outer(ctx, cancel) {
				key := outerKey(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				joined := result(ctx, cancel, elem, lookup.Get(key))

				if contextDone(ctx) || !yield(joined) {
					return
				}
			}
		}
	}
}
