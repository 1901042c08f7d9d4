package catalogue

import (
	"context"

	"github.com/deadlyengineer/seqquery"
)

// elementLists returns the number list and sparse word list used by the element access demos.
func elementLists(data *Fixture, numbers string, words string) (seqquery.ProducerFunc[int], seqquery.ProducerFunc[*string], error) {
	ints, err := data.NumberList(numbers)
	if err != nil {
		return nil, nil, err
	}

	strs, err := data.SparseList(words)
	if err != nil {
		return nil, nil, err
	}

	return ints, strs, nil
}

func elementAt(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "scores", "middle")
	if err != nil {
		return err
	}

	firstInt, err := seqquery.ElementAt(ctx, ints, 0)
	if err != nil {
		return err
	}

	out.Printf("1st Element in intList: %d", firstInt)

	firstStr, err := seqquery.ElementAt(ctx, strs, 0)
	if err != nil {
		return err
	}

	out.Printf("1st Element in strList: %s", deref(firstStr))

	return nil
}

func elementAtOrDefault(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "scores", "middle")
	if err != nil {
		return err
	}

	thirdInt, err := seqquery.ElementAtOrDefault(ctx, ints, 2)
	if err != nil {
		return err
	}

	out.Printf("3rd Element in intList: %d", thirdInt.OrElse(0))

	thirdStr, err := seqquery.ElementAtOrDefault(ctx, strs, 2)
	if err != nil {
		return err
	}

	out.Printf("3rd Element in strList: %s", deref(thirdStr.OrElse(nil)))

	tenthInt, err := seqquery.ElementAtOrDefault(ctx, ints, 9)
	if err != nil {
		return err
	}

	out.Printf("10th Element in intList: %d - default int value", tenthInt.OrElse(0))

	tenthStr, err := seqquery.ElementAtOrDefault(ctx, strs, 9)
	if err != nil {
		return err
	}

	out.Printf("10th Element in strList: %s - default string value (%s)", deref(tenthStr.OrElse(nil)), tenthStr)

	return nil
}

func first(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "sequence", "leading")
	if err != nil {
		return err
	}

	firstInt, err := seqquery.First(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("1st Element in intList: %d", firstInt)

	firstEven, err := seqquery.FirstMatch(ctx, ints, isEven)
	if err != nil {
		return err
	}

	out.Printf("1st Even Element in intList: %d", firstEven)

	firstStr, err := seqquery.First(ctx, strs)
	if err != nil {
		return err
	}

	out.Printf("1st Element in strList: %s", deref(firstStr))

	return nil
}

func firstOrDefault(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "sequence", "leading")
	if err != nil {
		return err
	}

	firstInt, err := seqquery.FirstOrDefault(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("1st Element in intList: %d", firstInt.OrElse(0))

	firstEven, err := seqquery.FirstMatchOrDefault(ctx, ints, isEven)
	if err != nil {
		return err
	}

	out.Printf("1st Even Element in intList: %d", firstEven.OrElse(0))

	firstStr, err := seqquery.FirstOrDefault(ctx, strs)
	if err != nil {
		return err
	}

	out.Printf("1st Element in strList: %s", deref(firstStr.OrElse(nil)))

	firstEmpty, err := seqquery.FirstOrDefault(ctx, seqquery.Empty[string]())
	if err != nil {
		return err
	}

	out.Printf("1st Element in emptyList: %s", firstEmpty.OrElse(""))

	return nil
}

func last(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "sequence", "leading")
	if err != nil {
		return err
	}

	lastInt, err := seqquery.Last(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("Last Element in intList: %d", lastInt)

	lastEven, err := seqquery.LastMatch(ctx, ints, isEven)
	if err != nil {
		return err
	}

	out.Printf("Last Even Element in intList: %d", lastEven)

	lastStr, err := seqquery.Last(ctx, strs)
	if err != nil {
		return err
	}

	out.Printf("Last Element in strList: %s", deref(lastStr))

	return nil
}

func lastOrDefault(ctx context.Context, data *Fixture, out *Output) error {
	ints, strs, err := elementLists(data, "sequence", "leading")
	if err != nil {
		return err
	}

	lastInt, err := seqquery.LastOrDefault(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("Last Element in intList: %d", lastInt.OrElse(0))

	lastEven, err := seqquery.LastMatchOrDefault(ctx, ints, isEven)
	if err != nil {
		return err
	}

	out.Printf("Last Even Element in intList: %d", lastEven.OrElse(0))

	lastStr, err := seqquery.LastOrDefault(ctx, strs)
	if err != nil {
		return err
	}

	out.Printf("Last Element in strList: %s", deref(lastStr.OrElse(nil)))

	lastEmpty, err := seqquery.LastOrDefault(ctx, seqquery.Empty[string]())
	if err != nil {
		return err
	}

	out.Printf("Last Element in emptyList: %s", lastEmpty.OrElse(""))

	return nil
}

func single(ctx context.Context, data *Fixture, out *Output) error {
	one, err := data.NumberList("single")
	if err != nil {
		return err
	}

	ints, err := data.NumberList("sequence")
	if err != nil {
		return err
	}

	only, err := seqquery.Single(ctx, one)
	if err != nil {
		return err
	}

	out.Printf("The only element in oneElementList: %d", only)

	onlyLess, err := seqquery.SingleMatch(ctx, ints, seqquery.FuncPredicate(func(i int) bool {
		return i < 10
	}))
	if err != nil {
		return err
	}

	out.Printf("The only element which is less than 10 in intList: %d", onlyLess)

	_, err = seqquery.Single(ctx, ints)
	out.Printf("The only Element in intList: %v", err)

	_, err = seqquery.Single(ctx, seqquery.Empty[string]())
	out.Printf("The only Element in emptyList: %v", err)

	return nil
}

func singleOrDefault(ctx context.Context, data *Fixture, out *Output) error {
	one, err := data.NumberList("single")
	if err != nil {
		return err
	}

	only, err := seqquery.SingleOrDefault(ctx, one)
	if err != nil {
		return err
	}

	out.Printf("The only element in oneElementList: %d", only.OrElse(0))

	none, err := seqquery.SingleOrDefault(ctx, seqquery.Empty[string]())
	if err != nil {
		return err
	}

	out.Printf("Element in emptyList: %s", none.OrElse(""))

	ints, err := data.NumberList("sequence")
	if err != nil {
		return err
	}

	_, err = seqquery.SingleOrDefault(ctx, ints)
	out.Printf("The only Element in intList: %v", err)

	return nil
}
