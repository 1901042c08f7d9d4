package seqquery

import "github.com/dolthub/swiss"

// keyIndex assigns positions to distinct keys, in the order they were first added.
// Keys are bucketed by hash, and compared using the comparer's Equal within a bucket.
type keyIndex[K any] struct {
	cmp     EqualityComparer[K]
	buckets *swiss.Map[uint64, []int]
	keys    []K
}

func newKeyIndex[K any](cmp EqualityComparer[K]) *keyIndex[K] {
	return &keyIndex[K]{
		cmp:     cmp,
		buckets: swiss.NewMap[uint64, []int](8),
	}
}

// find returns the position of key, if it has been added.
func (x *keyIndex[K]) find(key K) (int, bool) {
	return x.lookup(key, x.cmp.Hash(key))
}

// add adds key if it has not been added yet.
// It returns the position of key, and true if key was added by this call.
func (x *keyIndex[K]) add(key K) (int, bool) {
	hash := x.cmp.Hash(key)

	if pos, ok := x.lookup(key, hash); ok {
		return pos, false
	}

	pos := len(x.keys)
	x.keys = append(x.keys, key)

	positions, _ := x.buckets.Get(hash)
	x.buckets.Put(hash, append(positions, pos))

	return pos, true
}

func (x *keyIndex[K]) lookup(key K, hash uint64) (int, bool) {
	positions, ok := x.buckets.Get(hash)
	if !ok {
		return -1, false
	}

	for _, pos := range positions {
		if x.cmp.Equal(x.keys[pos], key) {
			return pos, true
		}
	}

	return -1, false
}

func (x *keyIndex[K]) len() int {
	return len(x.keys)
}
