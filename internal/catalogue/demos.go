package catalogue

import (
	"context"

	"github.com/deadlyengineer/seqquery"
)

func demos() []Demo {
	return []Demo{
		{Name: "query-syntax", Description: "filter names containing a substring", Run: querySyntax},
		{Name: "method-syntax", Description: "the same filter, written as a method chain", Run: methodSyntax},
		{Name: "where", Description: "filter students that are teenagers", Run: where},
		{Name: "oftype", Description: "filter a mixed list by kind of value", Run: ofType},
		{Name: "orderby", Description: "sort students by name, ascending and descending", Run: orderBy},
		{Name: "thenby", Description: "sort students by age, then by name", Run: thenBy},
		{Name: "groupby", Description: "group students by age, deferred", Run: groupBy},
		{Name: "tolookup", Description: "group students by age, immediately", Run: toLookup},
		{Name: "join", Description: "inner join of two word lists", Run: join},
		{Name: "groupjoin", Description: "group students by the standard they are enrolled in", Run: groupJoin},
		{Name: "select", Description: "project students to their names", Run: selectNames},
		{Name: "all", Description: "check whether all students are teenagers", Run: all},
		{Name: "any", Description: "check whether any student is a teenager", Run: anyTeenager},
		{Name: "contains", Description: "check whether a list contains a number", Run: contains},
		{Name: "aggregate", Description: "fold words and student names into strings", Run: aggregate},
		{Name: "average", Description: "average age of students", Run: average},
		{Name: "count", Description: "count students, and adult students", Run: count},
		{Name: "max", Description: "largest numbers, oldest student, and student with the longest name", Run: maxDemo},
		{Name: "sum", Description: "sums of numbers and student ages", Run: sum},
		{Name: "elementat", Description: "access elements by index", Run: elementAt},
		{Name: "elementatordefault", Description: "access elements by index, with defaults for missing elements", Run: elementAtOrDefault},
		{Name: "first", Description: "first element, and first even element", Run: first},
		{Name: "firstordefault", Description: "first element, with defaults for empty lists", Run: firstOrDefault},
		{Name: "last", Description: "last element, and last even element", Run: last},
		{Name: "lastordefault", Description: "last element, with defaults for empty lists", Run: lastOrDefault},
		{Name: "single", Description: "the only element of a list", Run: single},
		{Name: "singleordefault", Description: "the only element of a list, with defaults for empty lists", Run: singleOrDefault},
		{Name: "sequenceequal", Description: "compare word lists element by element", Run: sequenceEqual},
		{Name: "concat", Description: "concatenate lists", Run: concat},
		{Name: "defaultifempty", Description: "replace an empty list with a default element", Run: defaultIfEmpty},
		{Name: "empty", Description: "empty lists", Run: empty},
		{Name: "range", Description: "generate a range of numbers", Run: rangeDemo},
		{Name: "repeat", Description: "generate a repeated number", Run: repeat},
		{Name: "distinct", Description: "remove duplicates", Run: distinct},
		{Name: "except", Description: "words of one list that are not in another", Run: except},
		{Name: "intersect", Description: "words that are in both lists", Run: intersect},
		{Name: "union", Description: "words that are in either list", Run: union},
		{Name: "skip", Description: "skip the first words", Run: skip},
		{Name: "skipwhile", Description: "skip short words", Run: skipWhile},
		{Name: "take", Description: "take the first words", Run: take},
		{Name: "takewhile", Description: "take long words", Run: takeWhile},
		{Name: "tolist", Description: "snapshot a list", Run: toList},
		{Name: "todictionary", Description: "index students by ID", Run: toDictionary},
	}
}

// forEach calls fn for each element produced by prod.
func forEach[T any](ctx context.Context, prod seqquery.ProducerFunc[T], fn func(elem T)) error {
	return seqquery.Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		fn(elem)
	})
}

// printAll prints each element produced by prod on its own line.
func printAll[T any](ctx context.Context, out *Output, prod seqquery.ProducerFunc[T]) error {
	return forEach(ctx, prod, func(elem T) {
		out.Println(elem)
	})
}

// deref returns the string s points to, or an empty string if s is nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

var (
	studentName = seqquery.FuncMapper(func(s Student) string {
		return s.Name
	})

	studentAge = seqquery.FuncMapper(func(s Student) int {
		return s.Age
	})

	isTeenager = seqquery.FuncPredicate(func(s Student) bool {
		return s.Age > 12 && s.Age < 20
	})

	isEven = seqquery.FuncPredicate(func(i int) bool {
		return i%2 == 0
	})
)
