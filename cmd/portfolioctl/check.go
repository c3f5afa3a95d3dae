package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/application/services"
	"portfolio/infrastructure/storage"
)

func checkCmd(app *cli) *cobra.Command {
	var (
		uploads string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in a content file",
		Long: "Decode the content file and list unknown phases, misaligned strategy\n" +
			"positions, duplicate ids and logos missing from the upload directory.\n" +
			"Nothing is rejected by the server for these; they only look wrong.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.load(cmd.Context())
			if err != nil {
				return err
			}

			if uploads == "" {
				uploads = app.cfg.UploadDir
			}
			images := storage.NewLocalImageStore(uploads, app.cfg.UploadURLPrefix, app.logger)

			findings := services.CheckDocument(doc, images.Exists)
			w := cmd.OutOrStdout()
			if len(findings) == 0 {
				good.Fprintf(w, "✓ %s: no problems found\n", app.content)
				return nil
			}

			for _, f := range findings {
				warn.Fprint(w, "⚠ ")
				fmt.Fprintf(w, "%s ", f.Path)
				subtle.Fprintln(w, f.Message)
			}
			fmt.Fprintf(w, "%d problem(s) in %s\n", len(findings), app.content)

			if strict {
				return fmt.Errorf("%d problem(s) found", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&uploads, "uploads", "", "upload directory (defaults to UPLOAD_DIR)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when problems are found")
	return cmd
}
