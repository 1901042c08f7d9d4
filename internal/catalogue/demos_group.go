package catalogue

import (
	"context"

	"github.com/deadlyengineer/seqquery"
)

func orderBy(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("ordering")
	if err != nil {
		return err
	}

	out.Printf("Ascending Order:")

	asc := seqquery.OrderBy(students, studentName, seqquery.Ascending)
	if err := printAll(ctx, out, seqquery.Map(asc.Producer(), studentName)); err != nil {
		return err
	}

	out.Printf("Descending Order:")

	desc := seqquery.OrderBy(students, studentName, seqquery.Descending)

	return printAll(ctx, out, seqquery.Map(desc.Producer(), studentName))
}

func thenBy(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("ranking")
	if err != nil {
		return err
	}

	byAge := seqquery.OrderBy(students, studentAge, seqquery.Ascending)

	asc := seqquery.ThenBy(byAge, studentName, seqquery.Ascending)
	if err := printAll(ctx, out, seqquery.Map(asc.Producer(), studentName)); err != nil {
		return err
	}

	desc := seqquery.ThenBy(byAge, studentName, seqquery.Descending)

	return forEach(ctx, desc.Producer(), func(s Student) {
		out.Printf("%d , %s", s.Age, s.Name)
	})
}

func groupBy(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("cohort")
	if err != nil {
		return err
	}

	groups := seqquery.GroupBy(students, studentAge)

	return forEach(ctx, groups, func(group *seqquery.Grouping[int, Student]) {
		out.Printf("Age group: %d", group.Key())

		for _, s := range group.Values() {
			out.Printf("Student: %s", s.Name)
		}
	})
}

func toLookup(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("cohort")
	if err != nil {
		return err
	}

	lookup, err := seqquery.ToLookup(ctx, students, studentAge)
	if err != nil {
		return err
	}

	for _, age := range lookup.Keys() {
		out.Printf("Age Group: %d", age)

		err := forEach(ctx, lookup.Get(age), func(s Student) {
			out.Printf("Student Name: %s", s.Name)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func join(ctx context.Context, data *Fixture, out *Output) error {
	outer, err := data.WordList("joinOuter")
	if err != nil {
		return err
	}

	inner, err := data.WordList("joinInner")
	if err != nil {
		return err
	}

	innerJoin := seqquery.Join(outer, inner, seqquery.Identity[string](), seqquery.Identity[string](),
		func(_ context.Context, _ context.CancelCauseFunc, str1 string, _ string) string {
			return str1
		})

	return printAll(ctx, out, innerJoin)
}

type standardGroup struct {
	name     string
	students seqquery.ProducerFunc[Student]
}

func groupJoin(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("enrolled")
	if err != nil {
		return err
	}

	standards := seqquery.Produce(data.Standards)

	standardID := seqquery.FuncMapper(func(std Standard) int {
		return std.ID
	})

	enrolledIn := seqquery.FuncMapper(func(s Student) int {
		return s.StandardID
	})

	groups := seqquery.GroupJoin(standards, students, standardID, enrolledIn,
		func(_ context.Context, _ context.CancelCauseFunc, std Standard, students seqquery.ProducerFunc[Student]) standardGroup {
			return standardGroup{
				name:     std.Name,
				students: students,
			}
		})

	return seqquery.Each(ctx, groups, func(ctx context.Context, cancel context.CancelCauseFunc, group standardGroup, _ uint64) {
		out.Println(group.name)

		if err := printAll(ctx, out, seqquery.Map(group.students, studentName)); err != nil {
			cancel(err)
		}
	})
}
