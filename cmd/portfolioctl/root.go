package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/domain/core/entities"
	"portfolio/infrastructure/config"
	"portfolio/infrastructure/di"
	"portfolio/infrastructure/persistence/file"
)

var (
	good   = color.New(color.FgGreen)
	warn   = color.New(color.FgYellow)
	bad    = color.New(color.FgRed)
	subtle = color.New(color.FgHiBlack)
)

// cli carries what every subcommand needs once flags are parsed
type cli struct {
	cfg     *config.Config
	logger  *zap.Logger
	content string
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	cmd := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Inspect and render portfolio content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := di.ProvideLogger(cfg)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.logger = logger
			if app.content == "" {
				app.content = cfg.ContentFile
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&app.content, "content", "c", "", "content file (defaults to CONTENT_FILE)")

	cmd.AddCommand(
		layoutCmd(app),
		renderCmd(app),
		checkCmd(app),
	)

	return withErrorOutput(cmd)
}

// withErrorOutput prints a subcommand's error in red before returning it.
// Cobra's own error printing is silenced on the root.
func withErrorOutput(cmd *cobra.Command) *cobra.Command {
	for _, sub := range cmd.Commands() {
		withErrorOutput(sub)
		run := sub.RunE
		if run == nil {
			continue
		}
		sub.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err != nil {
				bad.Fprintf(c.ErrOrStderr(), "portfolioctl %s: %v\n", c.Name(), err)
			}
			return err
		}
	}
	return cmd
}

func (app *cli) load(ctx context.Context) (entities.Document, error) {
	return file.NewRepository(app.content, app.logger).Load(ctx)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
