package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/defectboard/defectboard/pkg/cli/config"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/service/export"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		sourceCfg config.Source
		format    string
		output    string
	)

	flags := joinFlags(
		sourceCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (csv, json)",
				Value:       string(export.FormatCSV),
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (default: stdout)",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Aggregate reports and write the defect table",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			table, err := loadTable(ctx, &sourceCfg)
			if err != nil {
				return err
			}

			if output == "" {
				w := c.Root().Writer
				if w == nil {
					w = os.Stdout
				}
				if err := export.Write(w, table, export.Format(format)); err != nil {
					return goerr.Wrap(err, "failed to export table", goerr.V("format", format))
				}
			} else if err := exportToFile(output, table, export.Format(format)); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Table exported",
				slog.String("format", format),
				slog.String("output", output),
				slog.Int("records", table.Len()),
			)
			return nil
		},
	}
}

// exportToFile writes the table to path. A partially written file is removed
// when the export fails.
func exportToFile(path string, table *model.Table, format export.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = goerr.Wrap(closeErr, "failed to close output file", goerr.V("path", path))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := export.Write(f, table, format); err != nil {
		return goerr.Wrap(err, "failed to export table", goerr.V("format", format), goerr.V("path", path))
	}
	return nil
}
