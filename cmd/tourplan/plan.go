package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/mission"
)

func newPlanCmd(a *app) *cobra.Command {
	var asJSON, strict bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the full tour through every checkpoint",
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
			opts := append(f.MissionOptions(), mission.WithLogger(a.logger))
			plan, err := mission.Run(contextOf(cmd), g, coords, m, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				err = writePlanJSON(out, plan, coords)
			} else {
				writePlanText(out, plan, coords, m.RequiredResources)
			}
			if err != nil {
				return err
			}
			if strict && plan.Degraded() {
				return fmt.Errorf("%w: %w", errDegraded, plan.Err())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any segment fell back")

	return cmd
}

// planReport is the JSON shape of plan output.
type planReport struct {
	*mission.Plan
	Length float64    `json:"length"`
	Legs   [][]string `json:"legs"`
}

func writePlanJSON(w io.Writer, plan *mission.Plan, coords core.Coords) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(planReport{Plan: plan, Length: plan.Length(coords), Legs: plan.Legs()})
}

func writePlanText(w io.Writer, plan *mission.Plan, coords core.Coords, required int) {
	fmt.Fprintf(w, "plan %s: %s\n", plan.ID, plan.Status)
	fmt.Fprintf(w, "route: %s\n", strings.Join(plan.Route, " "))
	fmt.Fprintf(w, "length: %.2f\n", plan.Length(coords))
	fmt.Fprintf(w, "collected: [%s] (%d/%d)\n", strings.Join(plan.Collected, " "), len(plan.Collected), required)
	for _, seg := range plan.Segments {
		fmt.Fprintf(w, "  #%d %s -> %s %s: %s", seg.Index, seg.From, seg.To, seg.Outcome, strings.Join(seg.Path, " "))
		if len(seg.Guide) > 0 {
			fmt.Fprintf(w, " (guide %s)", strings.Join(seg.Guide, " "))
		}
		fmt.Fprintln(w)
	}
	for _, warn := range plan.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Message)
	}
}
