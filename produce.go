package seqquery

import (
	"context"
	"iter"
	"math"
)

// ProducerFunc returns the sequence of elements for a stream.
// Calling it starts a new, independent pass over the stream: nothing is produced until the returned
// sequence is iterated, and every pass re-runs all upstream producers from scratch.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T]

// Produce returns a producer that produces the elements of the given slices, in order.
// The slices are not copied, but they are never modified.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, slice := range slices {
				for _, elem := range slice {
					if contextDone(ctx) || !yield(elem) {
						return
					}
				}
			}
		}
	}
}

// Empty returns a producer that produces no elements.
func Empty[T any]() ProducerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(_ func(T) bool) {}
	}
}

// Range returns a producer that produces count sequential integers, starting with start.
// If count is negative, or the last integer would overflow, the stream's context will be canceled
// with an InvalidArgumentError once the producer is iterated.
func Range(start int, count int) ProducerFunc[int] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[int] {
		return func(yield func(int) bool) {
			if count < 0 {
				cancel(&InvalidArgumentError{Name: "count", Value: count})
				return
			}

			if count > 0 && start > math.MaxInt-(count-1) {
				cancel(&InvalidArgumentError{Name: "start", Value: start})
				return
			}

			for i := 0; i < count; i++ {
				if contextDone(ctx) || !yield(start+i) {
					return
				}
			}
		}
	}
}

// Repeat returns a producer that produces value count times.
// If count is negative, the stream's context will be canceled with an InvalidArgumentError once the producer is iterated.
func Repeat[T any](value T, count int) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			if count < 0 {
				cancel(&InvalidArgumentError{Name: "count", Value: count})
				return
			}

			for i := 0; i < count; i++ {
				if contextDone(ctx) || !yield(value) {
					return
				}
			}
		}
	}
}

// Concat returns a producer that produces the elements produced by the given producers, in order.
// Duplicate elements are retained.
func Concat[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, prod := range producers {
				for elem := range prod(ctx, cancel) {
					if !yield(elem) {
						return
					}
				}

				if contextDone(ctx) {
					return
				}
			}
		}
	}
}

// DefaultIfEmpty returns a producer that produces the same elements as prod,
// or a single zero value if prod does not produce any elements.
func DefaultIfEmpty[T any](prod ProducerFunc[T]) ProducerFunc[T] {
	var zero T
	return DefaultIfEmptyValue(prod, zero)
}

// DefaultIfEmptyValue returns a producer that produces the same elements as prod,
// or value if prod does not produce any elements.
func DefaultIfEmptyValue[T any](prod ProducerFunc[T], value T) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			empty := true

			for elem := range prod(ctx, cancel) {
				empty = false

				if !yield(elem) {
					return
				}
			}

			if !empty || contextDone(ctx) {
				return
			}

			yield(value)
		}
	}
}
