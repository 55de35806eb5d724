package cli

import (
	"context"
	"log/slog"

	"github.com/defectboard/defectboard/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:           "defectboard",
		Usage:          "Defect report dashboard",
		Version:        "0.1.0",
		Flags:          loggerCfg.Flags(),
		DefaultCommand: "serve",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdExport(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		slog.Error("CLI execution failed", "error", err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
