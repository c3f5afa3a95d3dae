package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"portfolio/domain/canvas"
	"portfolio/infrastructure/render"
)

func renderCmd(app *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the timeline road as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.load(cmd.Context())
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			layout := canvas.ComputeTimelineLayout(doc.Timeline)
			render.Road(&buf, layout, render.Labels(doc.Timeline))

			if out == "" || out == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			good.Fprintf(cmd.ErrOrStderr(), "wrote %s ", out)
			subtle.Fprintf(cmd.ErrOrStderr(), "(%d nodes, %d bytes)\n", len(layout.Nodes), buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	return cmd
}
