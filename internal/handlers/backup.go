package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-maintenance/internal/backup"
	"github.com/ukydev/car-maintenance/internal/db"
)

// BackupHandler handles export and import of the full application state.
type BackupHandler struct {
	vehicles db.VehicleCollection
	tasks    db.TaskCollection
	settings db.SettingsCollection
	store    db.StateStore
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(vehicles db.VehicleCollection, tasks db.TaskCollection, settings db.SettingsCollection, store db.StateStore) *BackupHandler {
	return &BackupHandler{
		vehicles: vehicles,
		tasks:    tasks,
		settings: settings,
		store:    store,
	}
}

// Export serves the full application state as a downloadable JSON document.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	userName, err := h.settings.LoadUserName(r.Context())
	if err != nil {
		http.Error(w, "Failed to load user name", http.StatusInternalServerError)
		return
	}
	vehicles, err := h.vehicles.FindVehicles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	tasks, err := h.tasks.FindTasks(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	data, err := backup.Export(userName, vehicles, tasks)
	if err != nil {
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", backup.FileName))
	w.Write(data)
}

// Import parses an export document and replaces the stored state wholesale.
// A malformed document is rejected before anything is touched.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	doc, err := backup.Import(body)
	if err != nil {
		if errors.Is(err, backup.ErrMalformedInput) {
			http.Error(w, "Invalid file format", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to import data", http.StatusInternalServerError)
		return
	}

	if err := h.store.ReplaceAll(r.Context(), doc.UserName, doc.Cars, doc.Tasks); err != nil {
		http.Error(w, "Failed to import data", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"vehicles": len(doc.Cars),
		"tasks":    len(doc.Tasks),
	}).Info("Data imported")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Data imported successfully",
		"vehicles": len(doc.Cars),
		"tasks":    len(doc.Tasks),
	})
}
