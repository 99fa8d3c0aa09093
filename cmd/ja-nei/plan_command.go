package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/ja-nei/itinerary"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the evening plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plainColors(ctx.color, out) {
				_, err := fmt.Fprint(out, itinerary.FormatText(ctx.plan))
				return err
			}
			_, err := fmt.Fprintln(out, renderPlanTable(ctx.plan))
			return err
		},
	}
}
