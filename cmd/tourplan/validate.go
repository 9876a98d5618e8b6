package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a mission file without planning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.load()
			if err != nil {
				return err
			}
			g, coords, m, err := f.Build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range f.Warnings() {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintf(out, "ok: %d nodes (%d placed), %d edges, %d checkpoints\n",
				g.VertexCount(), len(coords), g.EdgeCount(), len(m.Checkpoints))

			return nil
		},
	}
}
