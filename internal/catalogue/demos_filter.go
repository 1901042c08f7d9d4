package catalogue

import (
	"context"
	"strings"

	"github.com/deadlyengineer/seqquery"
)

func containsName1(s string) bool {
	return strings.Contains(s, "name1")
}

func querySyntax(ctx context.Context, data *Fixture, out *Output) error {
	result := seqquery.Filter(seqquery.Produce(data.Names), seqquery.FuncPredicate(containsName1))

	return forEach(ctx, result, func(name string) {
		out.Printf("result of query syntax: %s", name)
	})
}

func methodSyntax(ctx context.Context, data *Fixture, out *Output) error {
	names := seqquery.Produce(data.Names)

	return forEach(ctx, seqquery.Filter(names, seqquery.FuncPredicate(containsName1)), func(name string) {
		out.Printf("result of method syntax: %s", name)
	})
}

func where(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("classroom")
	if err != nil {
		return err
	}

	teenagers := seqquery.Filter(students, isTeenager)

	out.Printf("Teen age Students:")

	return printAll(ctx, out, seqquery.Map(teenagers, studentName))
}

func ofType(ctx context.Context, data *Fixture, out *Output) error {
	mixed := seqquery.Produce(data.Mixed)

	err := forEach(ctx, seqquery.OfType(mixed, KindString), func(item Item) {
		out.Println(item.String)
	})
	if err != nil {
		return err
	}

	err = forEach(ctx, seqquery.OfType(mixed, KindInt), func(item Item) {
		out.Println(item.Int)
	})
	if err != nil {
		return err
	}

	return forEach(ctx, seqquery.OfType(mixed, KindStudent), func(item Item) {
		if item.Student != nil {
			out.Println(item.Student.Name)
		}
	})
}

func selectNames(ctx context.Context, data *Fixture, out *Output) error {
	students, err := data.Roster("classroom")
	if err != nil {
		return err
	}

	return forEach(ctx, seqquery.Map(students, studentName), func(name string) {
		out.Printf("student name: %s", name)
	})
}
