package seqquery

import "context"

// First returns the first element produced by prod.
// If prod does not produce any elements, it returns ErrNoMatch.
func First[T any](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return FirstMatch(ctx, prod, always[T])
}

// FirstMatch returns the first element produced by prod for which pred returns true.
// It stops consuming prod after the first match.
// If no element matches, it returns ErrNoMatch.
func FirstMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (T, error) {
	return orNoMatch(FirstMatchOrDefault(ctx, prod, pred))
}

// FirstOrDefault works like First, but returns an absent Optional instead of ErrNoMatch.
func FirstOrDefault[T any](ctx context.Context, prod ProducerFunc[T]) (Optional[T], error) {
	return FirstMatchOrDefault(ctx, prod, always[T])
}

// FirstMatchOrDefault works like FirstMatch, but returns an absent Optional instead of ErrNoMatch.
func FirstMatchOrDefault[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (Optional[T], error) {
	first := None[T]()

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) || contextDone(ctx) {
			return
		}

		first = Some(elem)

		cancel(ErrShortCircuit)
	})

	return first, err
}

// Last returns the last element produced by prod.
// If prod does not produce any elements, it returns ErrNoMatch.
func Last[T any](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return LastMatch(ctx, prod, always[T])
}

// LastMatch returns the last element produced by prod for which pred returns true.
// If no element matches, it returns ErrNoMatch.
func LastMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (T, error) {
	return orNoMatch(LastMatchOrDefault(ctx, prod, pred))
}

// LastOrDefault works like Last, but returns an absent Optional instead of ErrNoMatch.
func LastOrDefault[T any](ctx context.Context, prod ProducerFunc[T]) (Optional[T], error) {
	return LastMatchOrDefault(ctx, prod, always[T])
}

// LastMatchOrDefault works like LastMatch, but returns an absent Optional instead of ErrNoMatch.
func LastMatchOrDefault[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (Optional[T], error) {
	last := None[T]()

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			last = Some(elem)
		}
	})

	return last, err
}

// Single returns the only element produced by prod.
// If prod does not produce any elements, it returns ErrNoMatch. If prod produces more than one element,
// it returns ErrMultipleMatch.
func Single[T any](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	return SingleMatch(ctx, prod, always[T])
}

// SingleMatch returns the only element produced by prod for which pred returns true.
// If no element matches, it returns ErrNoMatch. If more than one element matches, it returns ErrMultipleMatch,
// without consuming prod any further.
func SingleMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (T, error) {
	return orNoMatch(SingleMatchOrDefault(ctx, prod, pred))
}

// SingleOrDefault works like Single, but returns an absent Optional instead of ErrNoMatch.
// It still returns ErrMultipleMatch if prod produces more than one element.
func SingleOrDefault[T any](ctx context.Context, prod ProducerFunc[T]) (Optional[T], error) {
	return SingleMatchOrDefault(ctx, prod, always[T])
}

// SingleMatchOrDefault works like SingleMatch, but returns an absent Optional instead of ErrNoMatch.
// It still returns ErrMultipleMatch if more than one element matches.
func SingleMatchOrDefault[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (Optional[T], error) {
	single := None[T]()

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) || contextDone(ctx) {
			return
		}

		if single.IsPresent() {
			cancel(ErrMultipleMatch)
			return
		}

		single = Some(elem)
	})

	if err != nil {
		return None[T](), err
	}

	return single, nil
}

// ElementAt returns the element produced by prod at the 0-based index.
// It stops consuming prod after that element.
// If index is negative, or prod produces index elements or less, it returns an IndexOutOfRangeError.
func ElementAt[T any](ctx context.Context, prod ProducerFunc[T], index int) (T, error) {
	elem, count, err := elementAt(ctx, prod, index)
	if err != nil {
		var zero T
		return zero, err
	}

	value, ok := elem.Get()
	if !ok {
		return value, &IndexOutOfRangeError{
			Index: index,
			Len:   count,
		}
	}

	return value, nil
}

// ElementAtOrDefault works like ElementAt, but returns an absent Optional instead of an IndexOutOfRangeError.
func ElementAtOrDefault[T any](ctx context.Context, prod ProducerFunc[T], index int) (Optional[T], error) {
	elem, _, err := elementAt(ctx, prod, index)
	return elem, err
}

// elementAt returns the element at index, if any, and the number of elements consumed.
// If index is negative, prod is not consumed, and the count is -1.
func elementAt[T any](ctx context.Context, prod ProducerFunc[T], index int) (Optional[T], int, error) {
	if index < 0 {
		return None[T](), -1, nil
	}

	elem := None[T]()
	count := 0

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, e T, _ uint64) {
		if count == index {
			elem = Some(e)

			cancel(ErrShortCircuit)
		}

		count++
	})

	return elem, count, err
}

func orNoMatch[T any](opt Optional[T], err error) (T, error) {
	value, ok := opt.Get()

	if err != nil {
		return value, err
	}

	if !ok {
		return value, ErrNoMatch
	}

	return value, nil
}
