package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
)

// VehicleHandler handles vehicle CRUD requests.
type VehicleHandler struct {
	vehicles db.VehicleCollection
	store    db.StateStore
	now      func() time.Time
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicles db.VehicleCollection, store db.StateStore) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		store:    store,
		now:      time.Now,
	}
}

// Create adds a new vehicle.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := vehicle.Validate(h.now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicle.ID = uuid.NewString()
	vehicle.CreatedAt = h.now()

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	log.WithField("vehicle_id", vehicle.ID).Info("Vehicle created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

// List returns all vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.FindVehicles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

// Get returns one vehicle by id.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

// Update replaces a vehicle's user-editable fields. Mileage changes arrive
// through this path only; the odometer is never advanced automatically.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := vehicle.Validate(h.now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := h.vehicles.UpdateVehicle(r.Context(), id, vehicle); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	vehicle.ID = id
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

// Delete removes a vehicle and, in the same transaction, every task that
// references it.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tasksRemoved, err := h.store.DeleteVehicleCascade(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"vehicle_id":    id,
		"tasks_removed": tasksRemoved,
	}).Info("Vehicle deleted")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"tasksRemoved": tasksRemoved})
}
