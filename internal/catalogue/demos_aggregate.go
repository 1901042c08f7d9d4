package catalogue

import (
	"context"
	"strings"

	"github.com/deadlyengineer/seqquery"
)

func all(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("ordering")
	if err != nil {
		return err
	}

	allTeenagers, err := seqquery.AllMatch(ctx, students, isTeenager)
	if err != nil {
		return err
	}

	out.Printf("are all students teenager? %t", allTeenagers)

	return nil
}

func anyTeenager(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("ordering")
	if err != nil {
		return err
	}

	anyTeenagers, err := seqquery.AnyMatch(ctx, students, isTeenager)
	if err != nil {
		return err
	}

	out.Printf("are any students teenager? %t", anyTeenagers)

	return nil
}

func contains(ctx context.Context, data *Fixture, out *Output) error {
	ints, err := data.NumberList("small")
	if err != nil {
		return err
	}

	for _, value := range []int{10, 5} {
		found, err := seqquery.Contains(ctx, ints, value)
		if err != nil {
			return err
		}

		out.Printf("is this list contains %d? %t", value, found)
	}

	return nil
}

func aggregate(ctx context.Context, data *Fixture, out *Output) error {
	words, err := data.WordList("counting")
	if err != nil {
		return err
	}

	commaSeparated, err := seqquery.Aggregate(ctx, words,
		func(_ context.Context, _ context.CancelCauseFunc, s2 string, _ uint64, s1 string) string {
			return s1 + ", " + s2
		})
	if err != nil {
		return err
	}

	out.Println(commaSeparated)

	students, err := data.Roster("classroom")
	if err != nil {
		return err
	}

	appendName := func(_ context.Context, _ context.CancelCauseFunc, s Student, _ uint64, str string) string {
		return str + s.Name + ","
	}

	names, err := seqquery.Reduce(ctx, students, "Student Names: ", appendName)
	if err != nil {
		return err
	}

	out.Println(names)

	trimmed, err := seqquery.ReduceResult(ctx, students, "", appendName, func(str string) string {
		return strings.TrimSuffix(str, ",")
	})
	if err != nil {
		return err
	}

	out.Println(trimmed)

	return nil
}

func average(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("classroom")
	if err != nil {
		return err
	}

	avgAge, err := seqquery.Average(ctx, seqquery.Map(students, studentAge))
	if err != nil {
		return err
	}

	out.Printf("Average Age of Student: %g", avgAge)

	return nil
}

func count(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("census")
	if err != nil {
		return err
	}

	total, err := seqquery.Count(ctx, students)
	if err != nil {
		return err
	}

	out.Printf("Total Students: %d", total)

	adults, err := seqquery.CountMatch(ctx, students, seqquery.FuncPredicate(func(s Student) bool {
		return s.Age >= 18
	}))
	if err != nil {
		return err
	}

	out.Printf("Number of Adult Students: %d", adults)

	ages, err := seqquery.Count(ctx, seqquery.Map(students, studentAge))
	if err != nil {
		return err
	}

	out.Printf("count operator in query syntax: %d", ages)

	return nil
}

// longerOrEqualName reports a as greater if its name is at least as long as b's, and never reports it as less.
// It is not a valid ordering. Passed to MaxFunc, it makes the last of the longest names win.
func longerOrEqualName(a Student, b Student) int {
	if len(a.Name) >= len(b.Name) {
		return 1
	}

	return 0
}

func evenOrZero(i int) int {
	if i%2 == 0 {
		return i
	}

	return 0
}

func maxDemo(ctx context.Context, data *Fixture, out *Output) error {
	ints, err := data.NumberList("scores")
	if err != nil {
		return err
	}

	largest, err := seqquery.Max(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("Largest Element: %d", largest)

	largestEven, err := seqquery.Max(ctx, seqquery.Map(ints, seqquery.FuncMapper(evenOrZero)))
	if err != nil {
		return err
	}

	out.Printf("Largest Even Element: %d", largestEven)

	students, err := data.Roster("naming")
	if err != nil {
		return err
	}

	oldest, err := seqquery.Max(ctx, seqquery.Map(students, studentAge))
	if err != nil {
		return err
	}

	out.Printf("Oldest Student Age: %d", oldest)

	longestName, err := seqquery.MaxFunc(ctx, students, longerOrEqualName)
	if err != nil {
		return err
	}

	out.Printf("Student ID: %d, Student Name: %s", longestName.ID, longestName.Name)

	return nil
}

func sum(ctx context.Context, data *Fixture, out *Output) error {
	ints, err := data.NumberList("scores")
	if err != nil {
		return err
	}

	total, err := seqquery.Sum(ctx, ints)
	if err != nil {
		return err
	}

	out.Printf("Sum: %d", total)

	evenTotal, err := seqquery.Sum(ctx, seqquery.Map(ints, seqquery.FuncMapper(evenOrZero)))
	if err != nil {
		return err
	}

	out.Printf("Sum of Even Elements: %d", evenTotal)

	students, err := data.Roster("classroom")
	if err != nil {
		return err
	}

	ages, err := seqquery.Sum(ctx, seqquery.Map(students, studentAge))
	if err != nil {
		return err
	}

	out.Printf("Sum of all student's age: %d", ages)

	adults, err := seqquery.Sum(ctx, seqquery.Map(students, seqquery.FuncMapper(func(s Student) int {
		if s.Age >= 18 {
			return 1
		}

		return 0
	})))
	if err != nil {
		return err
	}

	out.Printf("Total Adult Students: %d", adults)

	return nil
}
