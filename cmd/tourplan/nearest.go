package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourplan/spatial"
)

func newNearestCmd(a *app) *cobra.Command {
	var x, y float64
	var k int
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "List the nodes closest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.load()
			if err != nil {
				return err
			}
			coords := f.Coords()
			pt := orb.Point{x, y}
			ids, err := spatial.NewIndex(coords).Nearest(pt, k)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", id, planar.Distance(pt, coords[id]))
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate")
	cmd.Flags().IntVarP(&k, "count", "k", 1, "number of nodes")

	return cmd
}
