package types

import (
	"github.com/google/uuid"
)

// Reference is the two-character prefix of a defect code (e.g. "1%")
type Reference string

// String returns the string representation
func (r Reference) String() string {
	return string(r)
}

// DefectType is the part of a defect code following its Reference
type DefectType string

// String returns the string representation
func (t DefectType) String() string {
	return string(t)
}

// ReportDate is a report date formatted as DD/MM/YYYY, or empty when the
// report header carries no date
type ReportDate string

// String returns the string representation
func (d ReportDate) String() string {
	return string(d)
}

// IsEmpty reports whether the date could not be extracted
func (d ReportDate) IsEmpty() bool {
	return d == ""
}

// TableID identifies one aggregated table built at startup
type TableID string

// String returns the string representation
func (id TableID) String() string {
	return string(id)
}

// NewTableID creates a new TableID
func NewTableID() TableID {
	return TableID(uuid.New().String())
}
