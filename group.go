package seqquery

import (
	"context"
	"iter"

	"golang.org/x/exp/slices"
)

// A Grouping is a key, and the elements that share that key, in the order they were produced.
// A Grouping is never modified after it has been created.
type Grouping[K any, V any] struct {
	key    K
	values []V
}

// A Lookup maps keys to groups of elements. Groups are kept in order of first appearance of their keys.
// A Lookup is never modified after it has been created.
type Lookup[K any, V any] struct {
	index  *keyIndex[K]
	groups []*Grouping[K, V]
}

// GroupBy returns a producer that groups the elements produced by prod by the keys returned by key.
// Groupings are produced in order of first appearance of their keys, elements within a grouping retain
// the order in which they were produced by prod.
// prod is consumed completely before the first grouping is produced.
func GroupBy[T any, K comparable](prod ProducerFunc[T], key MapperFunc[T, K]) ProducerFunc[*Grouping[K, T]] {
	return GroupByWith(prod, key, DefaultEqualityComparer[K]())
}

// GroupByWith works like GroupBy, using cmp to compare keys.
func GroupByWith[T any, K any](prod ProducerFunc[T], key MapperFunc[T, K], cmp EqualityComparer[K]) ProducerFunc[*Grouping[K, T]] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[*Grouping[K, T]] {
		return func(yield func(*Grouping[K, T]) bool) {
			lookup, ok := buildLookup(ctx, cancel, prod, key, cmp)
			if !ok {
				return
			}

			for _, group := range lookup.groups {
				if !yield(group) {
					return
				}
			}
		}
	}
}

// ToLookup consumes all elements produced by prod and groups them by the keys returned by key, like GroupBy does.
// Unlike GroupBy, the work is done immediately.
// If prod or key cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func ToLookup[T any, K comparable](ctx context.Context, prod ProducerFunc[T], key MapperFunc[T, K]) (*Lookup[K, T], error) {
	return ToLookupWith(ctx, prod, key, DefaultEqualityComparer[K]())
}

// ToLookupWith works like ToLookup, using cmp to compare keys.
func ToLookupWith[T any, K any](ctx context.Context, prod ProducerFunc[T], key MapperFunc[T, K],
	cmp EqualityComparer[K],
) (*Lookup[K, T], error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	lookup, _ := buildLookup(ctx, cancel, prod, key, cmp)

	return lookup, streamError(ctx)
}

// buildLookup consumes all elements produced by prod and groups them by key.
// It returns false if the stream's context has been canceled.
func buildLookup[T any, K any](ctx context.Context, cancel context.CancelCauseFunc, prod ProducerFunc[T],
	key MapperFunc[T, K], cmp EqualityComparer[K],
) (*Lookup[K, T], bool) {
	lookup := &Lookup[K, T]{
		index: newKeyIndex(cmp),
	}

	index := uint64(0)

	for elem := range prod(ctx, cancel) {
		elemKey := key(ctx, cancel, elem, index)

		if contextDone(ctx) {
			return lookup, false
		}

		pos, added := lookup.index.add(elemKey)
		if added {
			lookup.groups = append(lookup.groups, &Grouping[K, T]{key: elemKey})
		}

		group := lookup.groups[pos]
		group.values = append(group.values, elem)

		index++
	}

	return lookup, !contextDone(ctx)
}

// Key returns the key shared by the elements of g.
func (g *Grouping[K, V]) Key() K {
	return g.key
}

// Len returns the number of elements in g.
func (g *Grouping[K, V]) Len() int {
	return len(g.values)
}

// Values returns a copy of the elements of g.
func (g *Grouping[K, V]) Values() []V {
	return slices.Clone(g.values)
}

// Elements returns a producer that produces the elements of g, in order.
func (g *Grouping[K, V]) Elements() ProducerFunc[V] {
	return Produce(g.values)
}

// Len returns the number of groups in l.
func (l *Lookup[K, V]) Len() int {
	return len(l.groups)
}

// Keys returns the keys of l, in order of first appearance.
func (l *Lookup[K, V]) Keys() []K {
	return slices.Clone(l.index.keys)
}

// Contains returns true if l has a group for key.
func (l *Lookup[K, V]) Contains(key K) bool {
	_, ok := l.index.find(key)
	return ok
}

// Grouping returns the group for key, if there is one.
func (l *Lookup[K, V]) Grouping(key K) (*Grouping[K, V], bool) {
	pos, ok := l.index.find(key)
	if !ok {
		return nil, false
	}

	return l.groups[pos], true
}

// Get returns a producer that produces the elements of the group for key.
// If there is no such group, the producer does not produce any elements.
func (l *Lookup[K, V]) Get(key K) ProducerFunc[V] {
	group, ok := l.Grouping(key)
	if !ok {
		return Empty[V]()
	}

	return group.Elements()
}

// Groupings returns a producer that produces the groups of l, in order of first appearance of their keys.
func (l *Lookup[K, V]) Groupings() ProducerFunc[*Grouping[K, V]] {
	return Produce(l.groups)
}
