package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/avltree/avl"
	"github.com/katalvlaran/avltree/scenario"
)

func newRunCmd(a *app) *cobra.Command {
	var v view

	cmd := &cobra.Command{
		Use:     "run <scenario.yaml>",
		Short:   "Replay a YAML scenario and print the result",
		Args:    cobra.ExactArgs(1),
		Example: "  avltree run demo.yaml --dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("running scenario", "path", args[0], "steps", len(s.Steps), "rewrite", s.Rewrite)

			rep, runErr := scenario.Run(s, avl.WithHooks(a.treeHooks()))
			if rep == nil {
				return runErr
			}

			p := newPrinter(cmd.OutOrStdout())
			p.heading(args[0])
			p.field("steps", rep.Steps)
			for _, m := range rep.Missing {
				p.warning("not found: %d", m)
			}
			p.found(rep.Found)
			if err = p.summary(rep.Tree, v); err != nil {
				return err
			}

			return runErr
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&v.order, "order", "asc", "print order: asc or desc")
	fl.BoolVar(&v.dump, "dump", false, "draw the tree shape")
	fl.BoolVar(&v.heights, "heights", false, "annotate the drawing with subtree heights")

	return cmd
}
