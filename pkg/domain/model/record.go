package model

import (
	"github.com/defectboard/defectboard/pkg/domain/types"
)

// DefectRecord is one defect code line of a report
type DefectRecord struct {
	Reference  types.Reference  `json:"reference"`
	Type       types.DefectType `json:"type"`
	Recurrence int              `json:"recurrence"`
	Date       types.ReportDate `json:"date"`
}

// Code returns the full defect code token
func (r DefectRecord) Code() string {
	return r.Reference.String() + r.Type.String()
}

// Report is the parsed content of a single report file
type Report struct {
	Path    string
	Date    types.ReportDate
	Records []DefectRecord
}
