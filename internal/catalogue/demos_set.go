package catalogue

import (
	"context"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/deadlyengineer/seqquery"
)

// wordPair returns the two named word lists.
func wordPair(data *Fixture, a string, b string) (seqquery.ProducerFunc[string], seqquery.ProducerFunc[string], error) {
	first, err := data.WordList(a)
	if err != nil {
		return nil, nil, err
	}

	second, err := data.WordList(b)
	if err != nil {
		return nil, nil, err
	}

	return first, second, nil
}

func sequenceEqual(ctx context.Context, data *Fixture, out *Output) error {
	strList1, strList3, err := wordPair(data, "lower", "mismatched")
	if err != nil {
		return err
	}

	strList2, err := data.WordList("lower")
	if err != nil {
		return err
	}

	isEqual, err := seqquery.SequenceEqual(ctx, strList1, strList2)
	if err != nil {
		return err
	}

	out.Printf("is strList1 and strList2 equal? %t", isEqual)

	isEqual2, err := seqquery.SequenceEqual(ctx, strList1, strList3)
	if err != nil {
		return err
	}

	out.Printf("is strList1 and strList3 equal? %t", isEqual2)

	return nil
}

func concat(ctx context.Context, data *Fixture, out *Output) error {
	collection1, collection2, err := wordPair(data, "concatFirst", "concatSecond")
	if err != nil {
		return err
	}

	if err := printAll(ctx, out, seqquery.Concat(collection1, collection2)); err != nil {
		return err
	}

	collection11, err := data.NumberList("first")
	if err != nil {
		return err
	}

	collection22, err := data.NumberList("second")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Concat(collection11, collection22))
}

func defaultIfEmpty(ctx context.Context, _ *Fixture, out *Output) error {
	emptyList := seqquery.Empty[*string]()

	none := "None"

	for _, list := range []seqquery.ProducerFunc[*string]{
		seqquery.DefaultIfEmpty(emptyList),
		seqquery.DefaultIfEmptyValue(emptyList, &none),
	} {
		count, err := seqquery.Count(ctx, list)
		if err != nil {
			return err
		}

		out.Printf("Count: %d", count)

		value, err := seqquery.ElementAt(ctx, list, 0)
		if err != nil {
			return err
		}

		out.Printf("Value: %s", deref(value))
	}

	return nil
}

func empty(ctx context.Context, _ *Fixture, out *Output) error {
	counts := []func() (uint64, bool, error){
		emptyCount[string](ctx),
		emptyCount[Student](ctx),
	}

	for _, count := range counts {
		n, anyElems, err := count()
		if err != nil {
			return err
		}

		out.Printf("Count: %d", n)
		out.Printf("Any: %t", anyElems)
	}

	return nil
}

func emptyCount[T any](ctx context.Context) func() (uint64, bool, error) {
	return func() (uint64, bool, error) {
		emptyCollection := seqquery.Empty[T]()

		n, err := seqquery.Count(ctx, emptyCollection)
		if err != nil {
			return 0, false, err
		}

		anyElems, err := seqquery.Any(ctx, emptyCollection)

		return n, anyElems, err
	}
}

// printIndexed prints the count of elements, then each element with its index, accessing elements by index.
func printIndexed(ctx context.Context, out *Output, ints seqquery.ProducerFunc[int]) error {
	count, err := seqquery.Count(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("Total Count: %d", count)

	for i := 0; i < int(count); i++ {
		value, err := seqquery.ElementAt(ctx, ints, i)
		if err != nil {
			return err
		}

		out.Printf("Value at index %d : %d", i, value)
	}

	return nil
}

func rangeDemo(ctx context.Context, _ *Fixture, out *Output) error {
	return printIndexed(ctx, out, seqquery.Range(10, 10))
}

func repeat(ctx context.Context, _ *Fixture, out *Output) error {
	return printIndexed(ctx, out, seqquery.Repeat(10, 10))
}

func distinct(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("repeated")
	if err != nil {
		return err
	}

	if err := printAll(ctx, out, seqquery.Distinct(strs)); err != nil {
		return err
	}

	ints, err := data.NumberList("repeated")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Distinct(ints))
}

func except(ctx context.Context, data *Fixture, out *Output) error {
	strList1, strList2, err := wordPair(data, "setFirst", "setSecond")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Except(strList1, strList2))
}

func intersect(ctx context.Context, data *Fixture, out *Output) error {
	strList1, strList2, err := wordPair(data, "setFirst", "setSecond")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Intersect(strList1, strList2))
}

func union(ctx context.Context, data *Fixture, out *Output) error {
	strList1, strList2, err := wordPair(data, "unionFirst", "unionSecond")
	if err != nil {
		return err
	}

	if err := printAll(ctx, out, seqquery.Union(strList1, strList2)); err != nil {
		return err
	}

	out.Printf("Ignoring case:")

	return printAll(ctx, out, seqquery.UnionWith(strList1, strList2, seqquery.EqualFoldComparer()))
}

func skip(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("lower")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Skip(strs, 2))
}

func skipWhile(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("skipping")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.SkipWhile(strs, seqquery.FuncPredicate(func(s string) bool {
		return len(s) < 4
	})))
}

func take(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("counting")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.Take(strs, 2))
}

func takeWhile(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("taking")
	if err != nil {
		return err
	}

	return printAll(ctx, out, seqquery.TakeWhile(strs, seqquery.FuncPredicate(func(s string) bool {
		return len(s) > 4
	})))
}

func toList(ctx context.Context, data *Fixture, out *Output) error {
	strs, err := data.WordList("listing")
	if err != nil {
		return err
	}

	strArray, err := seqquery.ToSlice(ctx, strs)
	if err != nil {
		return err
	}

	list, err := seqquery.ToSlice(ctx, seqquery.Produce(strArray))
	if err != nil {
		return err
	}

	// list is a snapshot
	strArray[0] = "Zero"

	out.Printf("Array: %s", strings.Join(strArray, ", "))
	out.Printf("List: %s", strings.Join(list, ", "))

	return nil
}

func toDictionary(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("registry")
	if err != nil {
		return err
	}

	studentID := seqquery.FuncMapper(func(s Student) int {
		return s.ID
	})

	studentDict, err := seqquery.ToMap(ctx, students, studentID, seqquery.Identity[Student]())
	if err != nil {
		return err
	}

	keys := maps.Keys(studentDict)
	slices.Sort(keys)

	for _, key := range keys {
		out.Printf("Key: %d, Value: %s", key, studentDict[key].Name)
	}

	_, err = seqquery.ToMap(ctx, students, studentAge, studentName)
	out.Printf("Keyed by age: %v", err)

	return nil
}
