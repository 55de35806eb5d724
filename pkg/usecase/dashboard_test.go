package usecase_test

import (
	"testing"

	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newTestDashboard() *usecase.Dashboard {
	return usecase.NewDashboard(model.NewTable([]*model.Report{
		{
			Path: "day2.txt",
			Date: "11/01/2024",
			Records: []model.DefectRecord{
				{Reference: "2%", Type: "CD", Recurrence: 4, Date: "11/01/2024"},
				{Reference: "1%", Type: "AB", Recurrence: 2, Date: "11/01/2024"},
			},
		},
		{
			Path: "day1.txt",
			Date: "10/01/2024",
			Records: []model.DefectRecord{
				{Reference: "1%", Type: "AB", Recurrence: 7, Date: "10/01/2024"},
				{Reference: "1%", Type: "EF", Recurrence: 1, Date: "10/01/2024"},
				{Reference: "2%", Type: "GH", Recurrence: 5, Date: "10/01/2024"},
			},
		},
	}))
}

func TestDashboardOptions(t *testing.T) {
	t.Run("all dates first then dates ascending", func(t *testing.T) {
		d := newTestDashboard()
		gt.Equal(t, d.Options(), []model.DateOption{
			{Label: "All Dates", Value: "All Dates"},
			{Label: "10/01/2024", Value: "10/01/2024"},
			{Label: "11/01/2024", Value: "11/01/2024"},
		})
		gt.Equal(t, d.DefaultSelection(), []string{"All Dates"})
	})

	t.Run("undated records get a readable label", func(t *testing.T) {
		d := usecase.NewDashboard(model.NewTable([]*model.Report{
			{Records: []model.DefectRecord{{Reference: "1%", Type: "AB", Recurrence: 1}}},
		}))
		gt.Equal(t, d.Options(), []model.DateOption{
			{Label: "All Dates", Value: "All Dates"},
			{Label: "(no date)", Value: ""},
		})
	})

	t.Run("nil table has only all dates", func(t *testing.T) {
		d := usecase.NewDashboard(nil)
		gt.Equal(t, len(d.Options()), 1)
	})
}

func TestDashboardChart(t *testing.T) {
	t.Run("all dates spans every record of the first reference", func(t *testing.T) {
		fig := newTestDashboard().Chart([]string{"All Dates"})

		gt.Equal(t, fig.Layout.Title.Text, "Combined Chart")
		gt.Equal(t, len(fig.Data), 1)
		trace := fig.Data[0]
		gt.Equal(t, trace.Type, "bar")
		gt.Equal(t, trace.Name, "2%")
		gt.Equal(t, trace.X, []string{"CD", "GH"})
		gt.Equal(t, trace.Y, []int{4, 5})
		gt.Equal(t, trace.Marker.Color, "#636efa")
	})

	t.Run("empty selection behaves as all dates", func(t *testing.T) {
		d := newTestDashboard()
		gt.Equal(t, *d.Chart(nil), *d.Chart([]string{"All Dates"}))
		gt.Equal(t, *d.Chart([]string{}), *d.Chart([]string{"All Dates"}))
	})

	t.Run("specific date is restricted to that date", func(t *testing.T) {
		fig := newTestDashboard().Chart([]string{"10/01/2024"})

		gt.Equal(t, len(fig.Data), 1)
		gt.Equal(t, fig.Data[0].Name, "1%")
		gt.Equal(t, fig.Data[0].X, []string{"AB", "EF"})
		gt.Equal(t, fig.Data[0].Y, []int{7, 1})
	})

	t.Run("one trace per selection in selection order", func(t *testing.T) {
		fig := newTestDashboard().Chart([]string{"11/01/2024", "10/01/2024", "All Dates"})

		gt.Equal(t, len(fig.Data), 3)
		gt.Equal(t, fig.Data[0].Name, "2%")
		gt.Equal(t, fig.Data[0].X, []string{"CD"})
		gt.Equal(t, fig.Data[1].Name, "1%")
		gt.Equal(t, fig.Data[2].Name, "2%")
		gt.Equal(t, fig.Layout.Title.Text, "Combined Chart")
	})

	t.Run("selection without records adds no trace", func(t *testing.T) {
		fig := newTestDashboard().Chart([]string{"01/01/1999"})
		gt.Equal(t, len(fig.Data), 0)
		gt.Equal(t, fig.Layout.Title.Text, "Combined Chart")
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		d := newTestDashboard()
		selection := []string{"10/01/2024", "All Dates"}
		gt.Equal(t, *d.Chart(selection), *d.Chart(selection))
	})
}

func TestBarTraces(t *testing.T) {
	traces := usecase.BarTraces([]model.DefectRecord{
		{Reference: "1%", Type: "AB", Recurrence: 7},
		{Reference: "2%", Type: "CD", Recurrence: 1},
		{Reference: "1%", Type: "EF", Recurrence: 2},
	})

	gt.Equal(t, len(traces), 2)
	gt.Equal(t, traces[0].Name, "1%")
	gt.Equal(t, traces[0].X, []string{"AB", "EF"})
	gt.Equal(t, traces[0].Y, []int{7, 2})
	gt.Equal(t, traces[1].Name, "2%")
	gt.Equal(t, traces[1].Marker.Color, "#EF553B")
}
