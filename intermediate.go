package seqquery

import (
	"context"
	"iter"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				outElem := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) || !yield(outElem) {
					return
				}

				index++
			}
		}
	}
}

// FlatMap returns a producer that calls mapp for each element produced by prod, mapping it to an intermediate producer
// that produces elements of type U.
// The new producer produces all elements produced by the intermediate producers, in order.
func FlatMap[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, ProducerFunc[U]]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				inner := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				for innerElem := range inner(ctx, cancel) {
					if !yield(innerElem) {
						return
					}
				}

				if contextDone(ctx) {
					return
				}

				index++
			}
		}
	}
}

// Filter returns a producer that calls filter for each element produced by prod, and only produces elements for which
// filter returns true.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				filterResult := filter(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !filterResult {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				peek(ctx, cancel, elem, index)

				if contextDone(ctx) || !yield(elem) {
					return
				}

				index++
			}
		}
	}
}

// Take returns a producer that produces the same elements as prod, in order, up to num elements.
// If num <= 0, prod is never iterated.
func Take[T any](prod ProducerFunc[T], num int) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			if num <= 0 {
				return
			}

			done := 0

			for elem := range prod(ctx, cancel) {
				if !yield(elem) {
					return
				}

				done++
				if done == num {
					return
				}
			}
		}
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping the first num elements.
func Skip[T any](prod ProducerFunc[T], num int) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			done := 0

			for elem := range prod(ctx, cancel) {
				if done < num {
					done++
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// TakeWhile returns a producer that produces the elements of prod, in order, as long as pred returns true.
// The first element for which pred returns false ends the stream, pred is not called again.
func TakeWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				take := pred(ctx, cancel, elem, index)

				if contextDone(ctx) || !take || !yield(elem) {
					return
				}

				index++
			}
		}
	}
}

// SkipWhile returns a producer that skips the elements of prod as long as pred returns true,
// then produces the remaining elements, in order.
// Once pred has returned false, it is not called again.
func SkipWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			skipping := true
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				if skipping {
					skip := pred(ctx, cancel, elem, index)

					if contextDone(ctx) {
						return
					}

					index++

					if skip {
						continue
					}

					skipping = false
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}
