package cli

import (
	"context"

	"github.com/defectboard/defectboard/pkg/cli/config"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/service/report"
	"github.com/defectboard/defectboard/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// loadTable aggregates every report of the configured directory
func loadTable(ctx context.Context, sourceCfg *config.Source) (*model.Table, error) {
	cfg, err := sourceCfg.Configure()
	if err != nil {
		return nil, err
	}

	dir, err := sourceCfg.Directory()
	if err != nil {
		return nil, err
	}

	table, err := usecase.NewAggregator(report.NewParser(cfg), cfg).Aggregate(ctx, dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load reports", goerr.V("dir", dir))
	}
	return table, nil
}
