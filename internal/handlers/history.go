package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/history"
	"github.com/ukydev/car-maintenance/internal/models"
)

// HistoryHandler serves the filtered maintenance history.
type HistoryHandler struct {
	tasks db.TaskCollection
	now   func() time.Time
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(tasks db.TaskCollection) *HistoryHandler {
	return &HistoryHandler{tasks: tasks, now: time.Now}
}

// List returns completed tasks filtered by the "vehicle", "range", and
// (for a custom range) "start"/"end" query parameters, most recent first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vehicleID := query.Get("vehicle")
	if vehicleID == "" {
		vehicleID = history.VehicleAll
	}
	timeRange := query.Get("range")
	if timeRange == "" {
		timeRange = "3"
	}

	var custom history.CustomRange
	if timeRange == history.RangeCustom {
		start, err := models.ParseDate(query.Get("start"))
		if err != nil {
			http.Error(w, "Custom range requires a valid start date", http.StatusBadRequest)
			return
		}
		end, err := models.ParseDate(query.Get("end"))
		if err != nil {
			http.Error(w, "Custom range requires a valid end date", http.StatusBadRequest)
			return
		}
		custom = history.CustomRange{Start: start, End: end}
	}

	tasks, err := h.tasks.FindTasks(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history.Filter(tasks, vehicleID, timeRange, custom, h.now()))
}
