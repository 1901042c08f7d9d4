package seqquery

import (
	"cmp"
	"context"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be summed and averaged.
type Number interface {
	constraints.Integer | constraints.Float
}

// Aggregate folds the elements produced by prod using acc, starting with the first element as the accumulator.
// acc is called for the second and all further elements.
// If prod does not produce any elements, it returns ErrEmptySequence. Use Reduce to start with a seed instead.
// If prod or acc cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func Aggregate[T any](ctx context.Context, prod ProducerFunc[T], acc AccumulatorFunc[T, T]) (T, error) {
	var result T

	empty := true

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if empty {
			result = elem
			empty = false

			return
		}

		result = acc(ctx, cancel, elem, index, result)
	})

	if err != nil {
		var zero T
		return zero, err
	}

	if empty {
		return result, ErrEmptySequence
	}

	return result, nil
}

// Sum returns the sum of all elements produced by prod.
// If prod does not produce any elements, it returns zero.
// Use Map to sum a projection of the elements.
func Sum[T Number](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return Reduce(ctx, prod, 0, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc T) T {
		return acc + elem
	})
}

// Average returns the arithmetic mean of all elements produced by prod.
// If prod does not produce any elements, it returns ErrEmptySequence.
func Average[T Number](ctx context.Context, prod ProducerFunc[T]) (float64, error) {
	sum := float64(0)
	count := 0

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		sum += float64(elem)
		count++
	})

	if err != nil {
		return 0, err
	}

	if count == 0 {
		return 0, ErrEmptySequence
	}

	return sum / float64(count), nil
}

// Max returns the largest element produced by prod.
// If prod does not produce any elements, it returns ErrEmptySequence.
func Max[T cmp.Ordered](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return MaxFunc(ctx, prod, cmp.Compare[T])
}

// MaxFunc returns the largest element produced by prod, according to compare.
// An element replaces the current largest element only if compare reports it as greater.
// If prod does not produce any elements, it returns ErrEmptySequence.
func MaxFunc[T any](ctx context.Context, prod ProducerFunc[T], compare CompareFunc[T]) (T, error) {
	return Aggregate(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc T) T {
		if compare(elem, acc) > 0 {
			return elem
		}

		return acc
	})
}

// Min returns the smallest element produced by prod.
// If prod does not produce any elements, it returns ErrEmptySequence.
func Min[T cmp.Ordered](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return MinFunc(ctx, prod, cmp.Compare[T])
}

// MinFunc returns the smallest element produced by prod, according to compare.
// An element replaces the current smallest element only if compare reports it as less.
// If prod does not produce any elements, it returns ErrEmptySequence.
func MinFunc[T any](ctx context.Context, prod ProducerFunc[T], compare CompareFunc[T]) (T, error) {
	return Aggregate(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc T) T {
		if compare(elem, acc) < 0 {
			return elem
		}

		return acc
	})
}

// MaxBy returns the first element produced by prod with the largest key returned by key.
// If prod does not produce any elements, it returns ErrEmptySequence.
func MaxBy[T any, K cmp.Ordered](ctx context.Context, prod ProducerFunc[T], key MapperFunc[T, K]) (T, error) {
	return extremeBy(ctx, prod, key, 1)
}

// MinBy returns the first element produced by prod with the smallest key returned by key.
// If prod does not produce any elements, it returns ErrEmptySequence.
func MinBy[T any, K cmp.Ordered](ctx context.Context, prod ProducerFunc[T], key MapperFunc[T, K]) (T, error) {
	return extremeBy(ctx, prod, key, -1)
}

// extremeBy returns the first element whose key compares to all other keys with the sign of want.
func extremeBy[T any, K cmp.Ordered](ctx context.Context, prod ProducerFunc[T], key MapperFunc[T, K], want int) (T, error) {
	type withKey struct {
		elem T
		key  K
	}

	best, err := Aggregate(ctx,
		Map(prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) withKey {
			return withKey{
				elem: elem,
				key:  key(ctx, cancel, elem, index),
			}
		}),
		func(_ context.Context, _ context.CancelCauseFunc, elem withKey, _ uint64, acc withKey) withKey {
			if cmp.Compare(elem.key, acc.key) == want {
				return elem
			}

			return acc
		})

	return best.elem, err
}
