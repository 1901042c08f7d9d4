package seqquery

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaultEqualityComparer(t *testing.T) {
	is := is.New(t)

	cmp := DefaultEqualityComparer[string]()

	is.True(cmp.Equal("one", "one"))
	is.True(!cmp.Equal("one", "One"))
	is.Equal(cmp.Hash("one"), cmp.Hash("one"))
}

func TestDefaultEqualityComparer_Pointers(t *testing.T) {
	is := is.New(t)

	type student struct {
		name string
	}

	a := &student{name: "John"}
	b := &student{name: "John"}

	cmp := DefaultEqualityComparer[*student]()

	is.True(cmp.Equal(a, a))
	is.True(!cmp.Equal(a, b))

	// structs are compared by value
	structs := DefaultEqualityComparer[student]()

	is.True(structs.Equal(*a, *b))
	is.Equal(structs.Hash(*a), structs.Hash(*b))
}

func TestKeyComparer(t *testing.T) {
	is := is.New(t)

	cmp := KeyComparer(func(s string) int {
		return len(s)
	})

	is.True(cmp.Equal("one", "two"))
	is.True(!cmp.Equal("one", "three"))
	is.Equal(cmp.Hash("one"), cmp.Hash("six"))
}

func TestEqualFoldComparer(t *testing.T) {
	is := is.New(t)

	cmp := EqualFoldComparer()

	is.True(cmp.Equal("three", "THREE"))
	is.True(!cmp.Equal("three", "four"))
	is.Equal(cmp.Hash("three"), cmp.Hash("ThReE"))
}
