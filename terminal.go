package seqquery

import (
	"context"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc, returning the final accumulator.
// If prod does not produce any elements, acc is returned unchanged.
// If prod or reduce cancel the stream's context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// ReduceResult works like Reduce, but returns the result of calling result with the final accumulator.
// result is not called if the stream's context is canceled.
func ReduceResult[T any, A any, R any](ctx context.Context, prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A],
	result Function[A, R],
) (R, error) {
	acc, err := Reduce(ctx, prod, acc, reduce)
	if err != nil {
		var zero R
		return zero, err
	}

	return result(acc), nil
}

// Each calls each for each element produced by prod.
// If prod or each cancel the stream's context, it returns cause of the cancelation.
func Each[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	index := uint64(0)

	for elem := range prod(ctx, cancel) {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	return streamError(ctx)
}

// AnyMatch returns true as soon as pred returns true for an element produced by prod, that is, an element matches.
// If an element matches, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AnyMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// Any returns true if prod produces at least one element.
// It stops consuming prod after the first element.
func Any[T any](ctx context.Context, prod ProducerFunc[T]) (bool, error) {
	return AnyMatch(ctx, prod, always[T])
}

// AllMatch returns true if pred returns true for all elements produced by prod, that is, all elements match.
// If prod does not produce any elements, it returns true.
// If any element does not match, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AllMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}

// Contains returns true if prod produces an element equal to value.
func Contains[T comparable](ctx context.Context, prod ProducerFunc[T], value T) (bool, error) {
	return ContainsWith(ctx, prod, value, DefaultEqualityComparer[T]())
}

// ContainsWith returns true if prod produces an element that is equal to value according to cmp.
func ContainsWith[T any](ctx context.Context, prod ProducerFunc[T], value T, cmp EqualityComparer[T]) (bool, error) {
	return AnyMatch(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return cmp.Equal(elem, value)
	})
}

// Count returns the number of elements produced by prod.
// If prod cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func Count[T any](ctx context.Context, prod ProducerFunc[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}

// CountMatch returns the number of elements produced by prod for which pred returns true.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func CountMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			count++
		}
	})

	return count, err
}

func always[T any](_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) bool {
	return true
}
