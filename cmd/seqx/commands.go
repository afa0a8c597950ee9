package main

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/charmingruby/seqkit/seq"
)

type action func(ctx context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error)

//nolint:exhaustruct
func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "after",
			Usage:  "Elements after the first match of --target",
			Flags:  []cli.Flag{targetFlag()},
			Action: run(after),
		},
		{
			Name:   "before",
			Usage:  "Elements before the first match of --target (everything when absent)",
			Flags:  []cli.Flag{targetFlag()},
			Action: run(before),
		},
		{
			Name:   "index-of",
			Usage:  "Index of the first match of --target, or -1",
			Flags:  []cli.Flag{targetFlag()},
			Action: run(indexOf),
		},
		{
			Name:  "between",
			Usage: "Elements with index in [--from, --to]",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "from", Required: true},
				&cli.IntFlag{Name: "to", Required: true},
			},
			Action: run(between),
		},
		{
			Name:   "insert",
			Usage:  "Insert --values before the element at --index",
			Flags:  []cli.Flag{valuesFlag(), &cli.IntFlag{Name: "index", Required: true}},
			Action: run(insert),
		},
		{
			Name:   "intersperse",
			Usage:  "Place --sep between adjacent elements",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "sep", Required: true}},
			Action: run(intersperse),
		},
		{
			Name:   "duplicate",
			Usage:  "Repeat each element --times times",
			Flags:  []cli.Flag{&cli.IntFlag{Name: "times", Value: 2}},
			Action: run(duplicate),
		},
		{
			Name:   "flatten",
			Usage:  "Concatenate comma separated groups",
			Action: run(flatten),
		},
		{
			Name:   "alternate",
			Usage:  "Every other element, starting at index 0 (or 1 with --odd)",
			Flags:  []cli.Flag{&cli.BoolFlag{Name: "odd"}},
			Action: run(alternate),
		},
		{
			Name:   "pair",
			Usage:  "Cartesian product of the elements with themselves",
			Action: run(pair),
		},
		{
			Name:   "indistinct",
			Usage:  "Elements occurring more than once",
			Action: run(indistinct),
		},
		{
			Name:   "contains-any",
			Usage:  "Whether any of --values occurs in the elements",
			Flags:  []cli.Flag{valuesFlag()},
			Action: run(containsAny),
		},
		{
			Name:   "contains-all",
			Usage:  "Whether every one of --values occurs in the elements",
			Flags:  []cli.Flag{valuesFlag()},
			Action: run(containsAll),
		},
		{
			Name:   "same-elements",
			Usage:  "Whether the elements are a permutation of --values",
			Flags:  []cli.Flag{valuesFlag()},
			Action: run(sameElements),
		},
		{
			Name:   "random",
			Usage:  "Pick one element at random",
			Action: run(random),
		},
		{
			Name:   "shuffle",
			Usage:  "Randomise the order of the elements",
			Action: run(shuffle),
		},
		{
			Name:   "product",
			Usage:  "Multiply numeric elements",
			Action: run(product),
		},
		{
			Name:   "join",
			Usage:  "Concatenate elements with --sep",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "sep", Value: ""}},
			Action: run(join),
		},
	}
}

//nolint:exhaustruct
func targetFlag() cli.Flag {
	return &cli.StringFlag{Name: "target", Usage: "Element to search for", Required: true}
}

//nolint:exhaustruct
func valuesFlag() cli.Flag {
	return &cli.StringSliceFlag{Name: "values", Usage: "Comma separated values"}
}

func run(fn action) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args().Slice()
		log := loggerFrom(ctx).With().Str("command", cmd.Name).Int("elements", len(args)).Logger()

		result, err := fn(ctx, cmd, seq.Values(args))
		if nil != err {
			return fmt.Errorf("%s: %w", cmd.Name, err)
		}

		if err := json.NewEncoder(cmd.Root().Writer).Encode(result); nil != err {
			return fmt.Errorf("%s: encode result: %w", cmd.Name, err)
		}

		log.Debug().Msg("Operation completed")

		return nil
	}
}

func after(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.After(elements, cmd.String("target"))), nil
}

func before(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.Before(elements, cmd.String("target"))), nil
}

func indexOf(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.IndexOf(elements, cmd.String("target")), nil
}

func between(ctx context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	result, err := seq.Between(elements, cmd.Int("from"), cmd.Int("to"))
	if nil != err {
		return nil, err
	}

	return drain(ctx, result)
}

func insert(ctx context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	result, err := seq.Insert(elements, seq.Values(cmd.StringSlice("values")), cmd.Int("index"))
	if nil != err {
		return nil, err
	}

	return drain(ctx, result)
}

// drain pulls a fallible sequence, logging each element at trace level so a
// deferred range failure can be related to what was produced before it.
func drain(ctx context.Context, source iter.Seq2[string, error]) ([]string, error) {
	it := seq.Pull2(source)
	defer it.Stop()

	out := []string{}
	for v := range it.All() {
		loggerFrom(ctx).Trace().Int("position", len(out)).Str("value", v).Msg("Produced element")
		out = append(out, v)
	}
	if err := it.Err(); nil != err {
		return nil, err
	}

	return out, nil
}

func intersperse(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.Intersperse(elements, cmd.String("sep"))), nil
}

func duplicate(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	result, err := seq.Duplicate(elements, cmd.Int("times"))
	if nil != err {
		return nil, err
	}

	return seq.Collect(result), nil
}

func flatten(_ context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	groups := func(yield func(iter.Seq[string]) bool) {
		for group := range elements {
			if !yield(seq.Values(lo.Compact(strings.Split(group, ",")))) {
				return
			}
		}
	}

	return seq.Collect(seq.Flatten(groups)), nil
}

func alternate(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.Alternate(elements, cmd.Bool("odd"))), nil
}

func pair(_ context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	return lo.Map(seq.Collect(seq.Pairs(elements)), func(p seq.Pair[string, string], _ int) [2]string {
		return [2]string{p.First, p.Second}
	}), nil
}

func indistinct(_ context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.Indistinct(elements)), nil
}

func containsAny(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.ContainsAny(elements, seq.Values(cmd.StringSlice("values"))), nil
}

func containsAll(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.ContainsAll(elements, seq.Values(cmd.StringSlice("values"))), nil
}

func sameElements(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.SameElements(elements, seq.Values(cmd.StringSlice("values"))), nil
}

func random(ctx context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Random(elements, rngFrom(ctx))
}

func shuffle(ctx context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Collect(seq.Shuffle(elements, rngFrom(ctx))), nil
}

func product(_ context.Context, _ *cli.Command, elements iter.Seq[string]) (any, error) {
	numbers := make([]float64, 0)
	for v := range elements {
		n, err := strconv.ParseFloat(v, 64)
		if nil != err {
			return nil, fmt.Errorf("parse %q: %w", v, err)
		}
		numbers = append(numbers, n)
	}

	return seq.Product(seq.Values(numbers))
}

func join(_ context.Context, cmd *cli.Command, elements iter.Seq[string]) (any, error) {
	return seq.Join(elements, cmd.String("sep")), nil
}
