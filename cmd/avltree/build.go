package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/avltree/avl"
)

type buildFlags struct {
	rewrite bool
	delete  []int
	order   string
	dump    bool
	heights bool
}

func newBuildCmd(a *app) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "Insert values in order, optionally delete some, and print the tree",
		Example: `  avltree build 40 30 20 0
  avltree build 10 20 3 7 8 9 1 6 --delete 8 --dump --heights`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.rewrite, "rewrite", false, "overwrite duplicates instead of ignoring them")
	fl.IntSliceVar(&f.delete, "delete", nil, "values to delete after inserting")
	fl.StringVar(&f.order, "order", "asc", "print order: asc or desc")
	fl.BoolVar(&f.dump, "dump", false, "draw the tree shape")
	fl.BoolVar(&f.heights, "heights", false, "annotate the drawing with subtree heights")

	return cmd
}

func (a *app) build(cmd *cobra.Command, args []string, f *buildFlags) error {
	if f.order != "asc" && f.order != "desc" {
		return fmt.Errorf("invalid --order %q: want asc or desc", f.order)
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}

	tr := avl.New(
		avl.WithRewrite[int](f.rewrite),
		avl.WithHooks(a.treeHooks()),
		avl.WithValues(values...),
	)

	p := newPrinter(cmd.OutOrStdout())
	for _, v := range f.delete {
		if err = tr.Delete(v); errors.Is(err, avl.ErrNotFound) {
			a.logger.Warn("delete missed", "value", v)
			p.warning("not found: %d", v)
		}
	}

	return p.summary(tr, view{order: f.order, dump: f.dump, heights: f.heights})
}

// parseInts converts positional arguments to ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
