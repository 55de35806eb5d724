package usecase

import (
	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/defectboard/defectboard/pkg/domain/model"
)

// CombinedChartTitle is the title of every computed figure
const CombinedChartTitle = "Combined Chart"

// undatedLabel is shown in the selector for records without a report date
const undatedLabel = "(no date)"

// chartPalette is the qualitative color sequence assigned to Reference groups
var chartPalette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Dashboard computes selector options and charts from an immutable table
type Dashboard struct {
	table *model.Table
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// NewDashboard creates a dashboard over table
func NewDashboard(table *model.Table) *Dashboard {
	if table == nil {
		table = model.NewTable(nil)
	}
	return &Dashboard{table: table}
}

// Table returns the aggregated table
func (d *Dashboard) Table() *model.Table {
	return d.table
}

// Options returns "All Dates" followed by every distinct date in ascending order
func (d *Dashboard) Options() []model.DateOption {
	options := []model.DateOption{
		{Label: model.AllDates, Value: model.AllDates},
	}
	for _, date := range d.table.Dates() {
		label := date.String()
		if date.IsEmpty() {
			label = undatedLabel
		}
		options = append(options, model.DateOption{Label: label, Value: date.String()})
	}
	return options
}

// DefaultSelection returns the initial selector value
func (d *Dashboard) DefaultSelection() []string {
	return []string{model.AllDates}
}

// Chart overlays one bar trace per selected value into a single figure.
// An empty selection is treated as "All Dates". Only the first Reference
// group of each selection is drawn.
func (d *Dashboard) Chart(selection []string) *model.Figure {
	if len(selection) == 0 {
		selection = d.DefaultSelection()
	}

	fig := &model.Figure{
		Data: []model.Trace{},
		Layout: model.Layout{
			Title:   model.Title{Text: CombinedChartTitle},
			BarMode: "relative",
			XAxis:   model.Axis{Title: model.Title{Text: "Type"}},
			YAxis:   model.Axis{Title: model.Title{Text: "Recurrence"}},
		},
	}

	for _, value := range selection {
		traces := barTraces(d.table.Filter(value))
		if len(traces) == 0 {
			continue
		}
		fig.Data = append(fig.Data, traces[0])
	}

	return fig
}

// barTraces groups records by Reference in order of first appearance, with
// Type on the x axis and Recurrence on the y axis
func barTraces(records []model.DefectRecord) []model.Trace {
	var traces []model.Trace
	index := make(map[string]int)

	for _, rec := range records {
		ref := rec.Reference.String()
		i, ok := index[ref]
		if !ok {
			i = len(traces)
			index[ref] = i
			traces = append(traces, model.Trace{
				Type:         "bar",
				Name:         ref,
				LegendGroup:  ref,
				OffsetGroup:  ref,
				ShowLegend:   true,
				Orientation:  "v",
				X:            []string{},
				Y:            []int{},
				Marker:       model.Marker{Color: chartPalette[i%len(chartPalette)]},
				TextPosition: "auto",
			})
		}
		traces[i].X = append(traces[i].X, rec.Type.String())
		traces[i].Y = append(traces[i].Y, rec.Recurrence)
	}

	return traces
}
