package seqquery

import (
	"context"
	"errors"
	"strconv"
	"iter"
	"testing"

	"github.com/matryer/is"
)

func TestReduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64, acc int) int {
		is.Equal(index, uint64(elem-1))

		return acc + elem
	}

	result, _ := Reduce(ctx, ints, 0, summer)

	is.Equal(result, 15)
}

func TestReduce_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64, acc int) int {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return acc
		}

		return acc + elem
	}

	result, err := Reduce(ctx, ints, 0, summer)

	is.Equal(result, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestReduce_CollectMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 3, 4, 5})

	result, err := Reduce(ctx, ints, map[string]int{}, CollectMapNoDuplicateKeys(itoa, Identity[int]()))

	is.Equal(result, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	var cause *DuplicateKeyError[int, string]

	is.True(errors.As(err, &cause))
	is.Equal(cause.Element, 3)
	is.Equal(cause.Key, "3")
}

func TestEach(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	}

	_ = Each(ctx, ints, summer)

	is.Equal(sum, 15)
}

func TestEach_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return
		}

		sum += elem
	}

	err := Each(ctx, ints, summer)

	is.Equal(sum, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestAnyMatch(t *testing.T) {
	tests := []struct {
		given                []int
		want                 bool
		wantProducerCanceled bool
	}{
		{
			given:                []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:                 false,
			wantProducerCanceled: false,
		},
		{
			given:                []int{1, 2, 100, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:                 true,
			wantProducerCanceled: true,
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			producerCanceled := false

			ints := stoppable(test.given, &producerCanceled)

			expectedIndex := uint64(0)

			greaterThan10 := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem > 10
			}

			result, _ := AnyMatch(ctx, ints, greaterThan10)

			is.Equal(result, test.want)
			is.Equal(producerCanceled, test.wantProducerCanceled)
		})
	}
}

func TestAllMatch(t *testing.T) {
	tests := []struct {
		given                []int
		want                 bool
		wantProducerCanceled bool
	}{
		{
			given:                []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:                 true,
			wantProducerCanceled: false,
		},
		{
			given:                []int{1, 2, 100, 4, 5, 1, 2, 3, 4, 5, 1, 2, 3, 4, 5},
			want:                 false,
			wantProducerCanceled: true,
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			producerCanceled := false

			ints := stoppable(test.given, &producerCanceled)

			expectedIndex := uint64(0)

			lessThan10 := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem < 10
			}

			result, _ := AllMatch(ctx, ints, lessThan10)

			is.Equal(result, test.want)
			is.Equal(producerCanceled, test.wantProducerCanceled)
		})
	}
}

func TestCount(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	strs := Produce([]string{"foo", "bar", "baz"})

	result, _ := Count(ctx, strs)

	is.Equal(result, uint64(3))
}

func TestCountMatch(t *testing.T) {
	is := is.New(t)

	result, err := CountMatch(context.Background(), Range(1, 10), even)

	is.NoErr(err)
	is.Equal(result, uint64(5))
}

func TestAny(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := Any(ctx, Empty[int]())

	is.NoErr(err)
	is.True(!result)

	producerCanceled := false

	result, err = Any(ctx, stoppable([]int{1, 2, 3}, &producerCanceled))

	is.NoErr(err)
	is.True(result)
	is.True(producerCanceled)
}

func TestAllMatch_Empty(t *testing.T) {
	is := is.New(t)

	result, err := AllMatch(context.Background(), Empty[int](), even)

	is.NoErr(err)
	is.True(result)
}

func TestContains(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	strs := Produce([]string{"One", "Two", "Three"})

	result, _ := Contains(ctx, strs, "Two")
	is.True(result)

	result, _ = Contains(ctx, strs, "two")
	is.True(!result)

	result, _ = ContainsWith(ctx, strs, "two", EqualFoldComparer())
	is.True(result)
}

func TestReduceResult(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64, acc int) int {
		return acc + elem
	}

	result, err := ReduceResult(ctx, Produce([]int{1, 2, 3}), 0, summer, strconv.Itoa)

	is.NoErr(err)
	is.Equal(result, "6")

	_, err = ReduceResult(ctx, Range(0, -1), 0, summer, strconv.Itoa)

	is.True(errors.Is(err, ErrInvalidArgument))
}

func TestReduce_EmptySeed(t *testing.T) {
	is := is.New(t)

	summer := func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64, acc int) int {
		return acc + elem
	}

	result, err := Reduce(context.Background(), Empty[int](), 0, summer)

	is.NoErr(err)
	is.Equal(result, 0)
}

// stoppable returns a producer for given that records whether it was stopped before producing all elements.
func stoppable(given []int, stopped *bool) ProducerFunc[int] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, i := range given {
				if contextDone(ctx) || !yield(i) {
					*stopped = true
					return
				}
			}
		}
	}
}
