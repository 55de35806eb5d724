package report_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/domain/types"
	"github.com/defectboard/defectboard/pkg/service/report"
	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		gt.NoError(t, err).Required()
		gt.NoError(t, f.SetSheetRow("Sheet1", cell, &row)).Required()
	}
	gt.NoError(t, f.SaveAs(path)).Required()
}

func TestSheetReader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	writeWorkbook(t, path, [][]any{
		{"SUIVI QUALITE"},
		{"Releve", "du 110124 sur", "poste B"},
		{"1%AB", 4},
		{"2%CD", "", "9"},
		{"1%EF", 2, "extra"},
	})

	t.Run("rows become space separated lines", func(t *testing.T) {
		lines, err := report.NewSheetReader().ReadLines(ctx, path)
		gt.NoError(t, err).Required()
		gt.Equal(t, lines, []string{
			"SUIVI QUALITE",
			"Releve du 110124 sur poste B",
			"1%AB 4",
			"2%CD 9",
			"1%EF 2 extra",
		})
	})

	t.Run("parser decodes workbook in sheet mode", func(t *testing.T) {
		result, err := report.NewParser(model.DefaultSourceConfig()).ParseFile(ctx, path)
		gt.NoError(t, err).Required()
		gt.Equal(t, result.Date, types.ReportDate("11/01/2024"))
		gt.Equal(t, result.Records, []model.DefectRecord{
			{Reference: "1%", Type: "AB", Recurrence: 4, Date: "11/01/2024"},
			{Reference: "2%", Type: "CD", Recurrence: 9, Date: "11/01/2024"},
		})
	})
}
