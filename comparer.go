package seqquery

import (
	"github.com/dolthub/maphash"
	"golang.org/x/text/cases"
)

// EqualityComparer decides whether two values are the same, for set, grouping, and join operations.
// Hash must return the same value for any two values that Equal considers equal.
type EqualityComparer[T any] struct {
	Equal func(a T, b T) bool
	Hash  func(v T) uint64
}

// DefaultEqualityComparer returns a comparer that uses Go's == operator.
// Values of pointer type are thus compared by identity, and structs by value.
func DefaultEqualityComparer[T comparable]() EqualityComparer[T] {
	hasher := maphash.NewHasher[T]()

	return EqualityComparer[T]{
		Equal: func(a T, b T) bool {
			return a == b
		},
		Hash: hasher.Hash,
	}
}

// KeyComparer returns a comparer that considers two values equal if key maps them to equal keys.
func KeyComparer[T any, K comparable](key Function[T, K]) EqualityComparer[T] {
	keys := DefaultEqualityComparer[K]()

	return EqualityComparer[T]{
		Equal: func(a T, b T) bool {
			return key(a) == key(b)
		},
		Hash: func(v T) uint64 {
			return keys.Hash(key(v))
		},
	}
}

// EqualFoldComparer returns a comparer for strings that ignores case, using Unicode case folding.
func EqualFoldComparer() EqualityComparer[string] {
	strs := DefaultEqualityComparer[string]()

	return EqualityComparer[string]{
		Equal: func(a string, b string) bool {
			return fold(a) == fold(b)
		},
		Hash: func(v string) uint64 {
			return strs.Hash(fold(v))
		},
	}
}

// fold returns the case folded form of s.
func fold(s string) string {
	return cases.Fold().String(s)
}
