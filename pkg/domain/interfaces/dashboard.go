package interfaces

import (
	"github.com/defectboard/defectboard/pkg/domain/model"
)

// Dashboard serves the date selector and the chart computed from the aggregated table
type Dashboard interface {
	// Table returns the aggregated table
	Table() *model.Table

	// Options returns the date selector entries, "All Dates" first
	Options() []model.DateOption

	// DefaultSelection returns the initial selector value
	DefaultSelection() []string

	// Chart computes the combined chart for a selection
	Chart(selection []string) *model.Figure
}
