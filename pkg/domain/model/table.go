package model

import (
	"slices"
	"sort"

	"github.com/defectboard/defectboard/pkg/domain/types"
)

// AllDates is the selection value matching every record of the table
const AllDates = "All Dates"

// Table is the aggregated set of defect records built once at startup.
// It must not be modified after construction.
type Table struct {
	ID      types.TableID
	Sources []string
	Records []DefectRecord
}

// NewTable creates a table from the given reports, preserving report order
func NewTable(reports []*Report) *Table {
	table := &Table{
		ID: types.NewTableID(),
	}
	for _, report := range reports {
		table.Sources = append(table.Sources, report.Path)
		table.Records = append(table.Records, report.Records...)
	}
	return table
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// Dates returns every distinct record date sorted ascending as strings
func (t *Table) Dates() []types.ReportDate {
	seen := make(map[types.ReportDate]bool)
	var dates []types.ReportDate
	for _, rec := range t.Records {
		if seen[rec.Date] {
			continue
		}
		seen[rec.Date] = true
		dates = append(dates, rec.Date)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i] < dates[j]
	})
	return dates
}

// Filter returns the records matching a selection value. AllDates selects
// every record; any other value selects records with exactly that date.
// The result is a copy and may be modified by the caller.
func (t *Table) Filter(selection string) []DefectRecord {
	if selection == AllDates {
		return slices.Clone(t.Records)
	}

	var records []DefectRecord
	for _, rec := range t.Records {
		if rec.Date.String() == selection {
			records = append(records, rec)
		}
	}
	return records
}
