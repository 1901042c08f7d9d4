package seqquery

import (
	"errors"
	"fmt"
)

var (
	// ErrShortCircuit is a generic error used to short-circuit a stream by canceling its context.
	// Terminal operations do not report it as an error.
	ErrShortCircuit = errors.New("short circuit")

	// ErrEmptySequence is returned by operations that need at least one element, such as Aggregate, Average, Max, and Min.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrNoMatch is returned by First, Last, and Single if no element matches.
	ErrNoMatch = errors.New("sequence contains no matching element")

	// ErrMultipleMatch is returned by Single and SingleOrDefault if more than one element matches.
	ErrMultipleMatch = errors.New("sequence contains more than one matching element")

	// ErrIndexOutOfRange is matched by IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateKey is matched by DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidArgument is matched by InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// A DuplicateKeyError is used to short-circuit a stream by canceling its context to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the upstream producer's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// An IndexOutOfRangeError is returned by ElementAt if the index is negative,
// or not less than the number of elements produced.
type IndexOutOfRangeError struct {
	Index int

	// Len is the number of elements seen, or -1 if the index was negative and the stream was not consumed.
	Len int
}

// An InvalidArgumentError is used to cancel a stream whose operator was constructed with an invalid argument.
type InvalidArgumentError struct {
	Name  string
	Value any
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// Is reports whether target is ErrDuplicateKey.
func (e *DuplicateKeyError[T, K]) Is(target error) bool {
	return target == ErrDuplicateKey
}

// Error implements error.
func (e *IndexOutOfRangeError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("index out of range: %d", e.Index)
	}

	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.Name, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
