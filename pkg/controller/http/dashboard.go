package http

import (
	"net/http"

	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/service/export"
	"github.com/defectboard/defectboard/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// DashboardHandler serves the dashboard API
type DashboardHandler struct {
	dashboard interfaces.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard interfaces.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

type optionsResponse struct {
	Options []model.DateOption `json:"options"`
	Default []string           `json:"default"`
}

// HandleHealth handles health check requests
func (h *DashboardHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	table := h.dashboard.Table()
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "healthy",
		"service":  "defectboard",
		"table_id": table.ID,
		"records":  table.Len(),
	})
}

// HandleOptions returns the date selector entries
func (h *DashboardHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, optionsResponse{
		Options: h.dashboard.Options(),
		Default: h.dashboard.DefaultSelection(),
	})
}

// HandleChart recomputes the combined chart for the dates given as
// repeated "date" query parameters
func (h *DashboardHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	selection := r.URL.Query()["date"]
	writeJSON(w, r, http.StatusOK, h.dashboard.Chart(selection))
}

// HandleRecords returns the aggregated table as JSON
func (h *DashboardHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := export.WriteJSON(w, h.dashboard.Table()); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to write records"))
	}
}

// HandleRecordsCSV returns the aggregated table as a CSV download
func (h *DashboardHandler) HandleRecordsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="defects.csv"`)
	if err := export.WriteCSV(w, h.dashboard.Table()); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to write records csv"))
	}
}
