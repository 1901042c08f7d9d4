package seqquery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

type keyed struct {
	key  int
	name string
}

func keyOf(k keyed) int {
	return k.key
}

func nameOf(k keyed) string {
	return k.name
}

func TestOrderBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	names := Produce([]string{"John", "Steve", "Bill", "Ram", "Ron"})

	asc, _ := ToSlice(ctx, OrderBy(names, Identity[string](), Ascending).Producer())
	is.Equal(asc, []string{"Bill", "John", "Ram", "Ron", "Steve"})

	desc, _ := ToSlice(ctx, OrderBy(names, Identity[string](), Descending).Producer())
	is.Equal(desc, []string{"Steve", "Ron", "Ram", "John", "Bill"})
}

func TestOrderBy_Stable(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	elems := Produce([]keyed{{1, "a"}, {2, "b"}, {1, "c"}})

	asc, _ := ToSlice(ctx, OrderBy(elems, FuncMapper(keyOf), Ascending).Producer())
	is.Equal(asc, []keyed{{1, "a"}, {1, "c"}, {2, "b"}})

	// equal keys keep their relative order in both directions
	desc, _ := ToSlice(ctx, OrderBy(elems, FuncMapper(keyOf), Descending).Producer())
	is.Equal(desc, []keyed{{2, "b"}, {1, "a"}, {1, "c"}})

	// which is why reversing an ascending sort is not the same as sorting in descending order
	reversed, _ := ToSlice(ctx, Reverse(OrderBy(elems, FuncMapper(keyOf), Ascending).Producer()))
	is.Equal(reversed, []keyed{{2, "b"}, {1, "c"}, {1, "a"}})
}

func TestOrderBy_DistinctKeysReverse(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{4, 1, 3, 5, 2})

	reversed := Reverse(OrderBy(ints, Identity[int](), Ascending).Producer())
	desc := OrderBy(ints, Identity[int](), Descending).Producer()

	equal, err := SequenceEqual(ctx, reversed, desc)

	is.NoErr(err)
	is.True(equal)
}

func TestOrderBy_Empty(t *testing.T) {
	is := is.New(t)

	result, err := ToSlice(context.Background(), OrderBy(Empty[int](), Identity[int](), Ascending).Producer())

	is.NoErr(err)
	is.Equal(len(result), 0)
}

func TestOrderBy_Deferred(t *testing.T) {
	is := is.New(t)

	calls := 0

	key := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) int {
		is.Equal(index, uint64(elem-1))
		calls++

		return -elem
	}

	sorted := OrderBy(Produce([]int{1, 2, 3}), key, Ascending).Producer()

	is.Equal(calls, 0)

	result, _ := ToSlice(context.Background(), sorted)

	is.Equal(result, []int{3, 2, 1})
	is.Equal(calls, 3)
}

func TestOrderBy_Cancel(t *testing.T) {
	is := is.New(t)

	key := func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) int {
		if elem == 2 {
			cancel(ErrShortCircuit)
		}

		return elem
	}

	_, err := ToSlice(context.Background(), OrderBy(Produce([]int{3, 2, 1}), key, Ascending).Producer())

	// the stream was canceled before anything was produced
	is.NoErr(err)

	failing := func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) int {
		cancel(ErrNoMatch)
		return elem
	}

	_, err = ToSlice(context.Background(), OrderBy(Produce([]int{3, 2, 1}), failing, Ascending).Producer())

	is.True(errors.Is(err, ErrNoMatch))
}

func TestThenBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	elems := Produce([]keyed{
		{121, "name1"},
		{321, "sdname1"},
		{721, "4rername1"},
		{251, "asdname1"},
		{321, "nsadame1"},
	})

	byAge := OrderBy(elems, FuncMapper(keyOf), Ascending)

	asc, _ := ToSlice(ctx, Map(ThenBy(byAge, FuncMapper(nameOf), Ascending).Producer(), FuncMapper(nameOf)))
	is.Equal(asc, []string{"name1", "asdname1", "nsadame1", "sdname1", "4rername1"})

	desc, _ := ToSlice(ctx, Map(ThenBy(byAge, FuncMapper(nameOf), Descending).Producer(), FuncMapper(nameOf)))
	is.Equal(desc, []string{"name1", "asdname1", "sdname1", "nsadame1", "4rername1"})

	// adding keys to a sort does not change it
	plain, _ := ToSlice(ctx, Map(byAge.Producer(), FuncMapper(nameOf)))
	is.Equal(plain, []string{"name1", "asdname1", "sdname1", "nsadame1", "4rername1"})
}

func TestThenByFunc(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	elems := Produce([]keyed{{2, "b"}, {1, "B"}, {1, "a"}, {1, "b"}, {1, "A"}})

	caseInsensitive := func(a string, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}

	sorted := ThenByFunc(OrderBy(elems, FuncMapper(keyOf), Ascending), FuncMapper(nameOf), caseInsensitive, Ascending)

	result, _ := ToSlice(ctx, sorted.Producer())

	// ties after all keys keep source order
	is.Equal(result, []keyed{{1, "a"}, {1, "A"}, {1, "B"}, {1, "b"}, {2, "b"}})
}
