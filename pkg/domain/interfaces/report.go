package interfaces

//go:generate moq -out mocks/report_mock.go -pkg mocks . ReportParser

import (
	"context"

	"github.com/defectboard/defectboard/pkg/domain/model"
)

// LineReader decodes a report file into lines of text
type LineReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// ReportParser parses a single report file
type ReportParser interface {
	ParseFile(ctx context.Context, path string) (*model.Report, error)
}
