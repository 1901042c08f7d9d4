package seqquery

import (
	"context"
	"iter"
)

// Variant is an element of a stream that holds one of several kinds of values,
// as told apart by its discriminant.
type Variant[D comparable] interface {
	Discriminant() D
}

// OfType returns a producer that produces the elements of prod whose discriminant equals kind, in order.
// All other elements are skipped.
func OfType[T Variant[D], D comparable](prod ProducerFunc[T], kind D) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for elem := range prod(ctx, cancel) {
				if elem.Discriminant() != kind {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}
