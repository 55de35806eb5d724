package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Format is an export output format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// CSVHeader is the column header written by WriteCSV
var CSVHeader = []string{"Reference", "Type", "Recurrence", "Formatted Date"}

// Write writes the table in the given format
func Write(w io.Writer, table *model.Table, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, table)
	case FormatJSON:
		return WriteJSON(w, table)
	default:
		return goerr.New("unsupported export format", goerr.V("format", format))
	}
}

// WriteCSV writes one row per record, in table order
func WriteCSV(w io.Writer, table *model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return goerr.Wrap(err, "failed to write csv header")
	}
	for _, rec := range table.Records {
		row := []string{
			rec.Reference.String(),
			rec.Type.String(),
			strconv.Itoa(rec.Recurrence),
			rec.Date.String(),
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush csv")
	}
	return nil
}

// tableDocument is the JSON representation of a table
type tableDocument struct {
	ID      string               `json:"id"`
	Sources []string             `json:"sources"`
	Records []model.DefectRecord `json:"records"`
}

// WriteJSON writes the table as an indented JSON document
func WriteJSON(w io.Writer, table *model.Table) error {
	doc := tableDocument{
		ID:      table.ID.String(),
		Sources: table.Sources,
		Records: table.Records,
	}
	if doc.Sources == nil {
		doc.Sources = []string{}
	}
	if doc.Records == nil {
		doc.Records = []model.DefectRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return goerr.Wrap(err, "failed to encode table")
	}
	return nil
}
