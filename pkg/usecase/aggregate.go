package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Aggregator builds the aggregated table from a report directory
type Aggregator struct {
	parser interfaces.ReportParser
	config *model.SourceConfig
}

// NewAggregator creates a new Aggregator
func NewAggregator(parser interfaces.ReportParser, config *model.SourceConfig) *Aggregator {
	if config == nil {
		config = model.DefaultSourceConfig()
	}
	return &Aggregator{
		parser: parser,
		config: config,
	}
}

// ListReports returns the eligible report files of dir in file name order
func (a *Aggregator) ListReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list report directory", goerr.V("dir", dir))
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if a.config.Match(entry.Name()) == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// Aggregate parses every eligible file of dir and concatenates their records.
// The first file that fails to parse aborts the aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, dir string) (*model.Table, error) {
	logger := ctxlog.From(ctx)

	paths, err := a.ListReports(dir)
	if err != nil {
		return nil, err
	}

	reports := make([]*model.Report, 0, len(paths))
	for _, path := range paths {
		report, err := a.parser.ParseFile(ctx, path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to aggregate reports",
				goerr.V("dir", dir),
				goerr.V("file", path))
		}

		logger.Debug("Report parsed",
			"file", path,
			"date", report.Date,
			"records", len(report.Records),
		)
		reports = append(reports, report)
	}

	table := model.NewTable(reports)
	logger.Info("Reports aggregated",
		"dir", dir,
		"files", len(table.Sources),
		"records", table.Len(),
		"dates", len(table.Dates()),
		"table_id", table.ID,
	)

	return table, nil
}
