package main

import (
	"github.com/spf13/cobra"

	"portfolio/domain/canvas"
)

func layoutCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the resolved canvas layout as JSON",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "timeline",
			Short: "Node positions, colours and the road path of the timeline",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				doc, err := app.load(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), canvas.ComputeTimelineLayout(doc.Timeline))
			},
		},
		&cobra.Command{
			Use:   "strategy",
			Short: "Card positions of the strategy section",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				doc, err := app.load(cmd.Context())
				if err != nil {
					return err
				}
				layout := canvas.ComputeStrategyLayout(doc.Strategy.Points, doc.Strategy.PointPositions)
				return writeJSON(cmd.OutOrStdout(), layout)
			},
		},
	)

	return cmd
}
