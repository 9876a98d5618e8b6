package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourplan/astar"
	"github.com/katalvlaran/tourplan/core"
)

func newSearchCmd(a *app) *cobra.Command {
	var from, to string
	var guide, forbid []string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one guided segment search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.load()
			if err != nil {
				return err
			}
			g, coords, _, err := f.Build()
			if err != nil {
				return err
			}
			opts := append(f.SearchOptions(),
				astar.WithContext(contextOf(cmd)),
				astar.WithGuidePath(core.NewGuidePath(guide...)),
				astar.WithForbidden(core.NewNodeSet(forbid...)),
				astar.WithLogger(a.logger),
			)
			res, err := astar.Search(g, coords, from, to, opts...)
			out := cmd.OutOrStdout()
			if errors.Is(err, astar.ErrNoPath) {
				fmt.Fprintf(out, "no path %s -> %s (expanded %d)\n", from, to, res.Expanded)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " "))
			fmt.Fprintf(out, "cost: %.2f\n", res.Cost)
			fmt.Fprintf(out, "expanded: %d\n", res.Expanded)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "goal node")
	cmd.Flags().StringSliceVar(&guide, "guide", nil, "guide path nodes")
	cmd.Flags().StringSliceVar(&forbid, "forbid", nil, "forbidden nodes")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
