package report

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

// SheetReader decodes the first worksheet of an .xlsx workbook. Each row
// becomes one line made of its non-empty cells separated by a single space.
type SheetReader struct{}

var _ interfaces.LineReader = (*SheetReader)(nil)

// NewSheetReader creates a new spreadsheet reader
func NewSheetReader() *SheetReader {
	return &SheetReader{}
}

// ReadLines returns one line per row of the first worksheet
func (r *SheetReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "failed to open report file", goerr.V("path", path))
		}
		return nil, goerr.Wrap(model.ErrUnsupportedFormat, "failed to decode workbook",
			goerr.V("path", path),
			goerr.V("cause", err.Error()))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.Wrap(model.ErrUnsupportedFormat, "workbook has no sheet", goerr.V("path", path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read worksheet",
			goerr.V("path", path),
			goerr.V("sheet", sheets[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, joinCells(row))
	}
	return lines, nil
}

func joinCells(row []string) string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return strings.Join(cells, " ")
}
