package seqquery

import "fmt"

// Optional is a value that may be absent. It is returned by the OrDefault operations, so that an absent element
// can be told apart from a produced zero value.
// The zero value is an absent Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and true, or the zero value and false if o is absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent returns true if o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value held by o, or other if o is absent.
func (o Optional[T]) OrElse(other T) T {
	if !o.present {
		return other
	}

	return o.value
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
