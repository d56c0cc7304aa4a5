package main

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bluesky-social/bstree/bst"

	"github.com/urfave/cli/v2"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "insert values in order, and print summary info about the resulting tree",
	ArgsUsage: "<value>...",
	Action:    typedAction(runBuild[int], runBuild[string]),
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "insert values in order, and print the shape of the resulting tree",
	ArgsUsage: "<value>...",
	Action:    typedAction(runPrint[int], runPrint[string]),
}

var cmdContains = &cli.Command{
	Name:      "contains",
	Usage:     "check whether a value is present in the tree",
	ArgsUsage: "<value>...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "value",
			Usage:    "value to look for",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "return an error if the value is not found",
		},
	},
	Action: typedAction(runContains[int], runContains[string]),
}

var cmdRemove = &cli.Command{
	Name:      "remove",
	Usage:     "remove a value from the tree, and print the shape of the result",
	ArgsUsage: "<value>...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "value",
			Usage:    "value to remove",
			Required: true,
		},
	},
	Action: typedAction(runRemove[int], runRemove[string]),
}

var cmdVisit = &cli.Command{
	Name:      "visit",
	Usage:     "print the root value, and the values of the root's children",
	ArgsUsage: "<value>...",
	Action:    typedAction(runVisit[int], runVisit[string]),
}

type valueParser[T cmp.Ordered] func(s string) (T, error)

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", s, err)
	}
	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// picks the int or string variant of a command based on the "type" flag
func typedAction(intFn func(*cli.Context, valueParser[int]) error, strFn func(*cli.Context, valueParser[string]) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		switch strings.ToLower(cctx.String("type")) {
		case "int":
			return intFn(cctx, parseInt)
		case "string":
			return strFn(cctx, parseString)
		default:
			return fmt.Errorf("unsupported value type: %q", cctx.String("type"))
		}
	}
}

// builds a tree from the positional args, inserted in order
func loadTree[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) (*bst.Tree[T], error) {
	tree := bst.NewEmptyTree[T]()
	for _, arg := range cctx.Args().Slice() {
		val, err := parse(arg)
		if err != nil {
			return nil, err
		}
		if !tree.Add(val) {
			slog.Debug("skipping duplicate value", "value", val)
		}
	}
	slog.Debug("built tree", "length", tree.Len(), "height", tree.Height())
	return tree, nil
}

func runBuild[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) error {
	tree, err := loadTree(cctx, parse)
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	fmt.Fprintf(out, "length: %d\n", tree.Len())
	fmt.Fprintf(out, "height: %d\n", tree.Height())
	if tree.IsEmpty() {
		fmt.Fprintln(out, "min: -")
		fmt.Fprintln(out, "max: -")
		return nil
	}
	lo, err := tree.Min()
	if err != nil {
		return err
	}
	hi, err := tree.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "min: %v\n", lo)
	fmt.Fprintf(out, "max: %v\n", hi)
	return nil
}

func runPrint[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) error {
	tree, err := loadTree(cctx, parse)
	if err != nil {
		return err
	}
	return bst.DebugPrintTree(cctx.App.Writer, tree)
}

func runContains[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) error {
	tree, err := loadTree(cctx, parse)
	if err != nil {
		return err
	}
	val, err := parse(cctx.String("value"))
	if err != nil {
		return err
	}
	found := tree.Contains(val)
	fmt.Fprintln(cctx.App.Writer, found)
	if !found && cctx.Bool("strict") {
		return fmt.Errorf("value %v: %w", val, bst.ErrNotFound)
	}
	return nil
}

func runRemove[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) error {
	tree, err := loadTree(cctx, parse)
	if err != nil {
		return err
	}
	val, err := parse(cctx.String("value"))
	if err != nil {
		return err
	}
	if err := tree.Remove(val); err != nil {
		if !errors.Is(err, bst.ErrNotFound) {
			return err
		}
		slog.Warn("value not in tree, nothing removed", "value", val)
	}
	return bst.DebugPrintTree(cctx.App.Writer, tree)
}

func runVisit[T cmp.Ordered](cctx *cli.Context, parse valueParser[T]) error {
	tree, err := loadTree(cctx, parse)
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	if err := bst.Visit(out, tree.Root()); err != nil {
		return err
	}
	if left, ok := tree.TryLeftChild(); ok {
		if err := bst.Visit(out, left); err != nil {
			return err
		}
	}
	if right, ok := tree.TryRightChild(); ok {
		if err := bst.Visit(out, right); err != nil {
			return err
		}
	}
	return nil
}
