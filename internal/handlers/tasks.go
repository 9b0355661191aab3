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
	"github.com/ukydev/car-maintenance/internal/status"
)

// TaskHandler handles maintenance-task requests.
type TaskHandler struct {
	tasks    db.TaskCollection
	vehicles db.VehicleCollection
	now      func() time.Time
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(tasks db.TaskCollection, vehicles db.VehicleCollection) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		vehicles: vehicles,
		now:      time.Now,
	}
}

// CompleteResponse is returned when a task is marked complete. Next is the
// follow-up task spawned for recurring tasks, when one was created.
type CompleteResponse struct {
	Task models.MaintenanceTask  `json:"task"`
	Next *models.MaintenanceTask `json:"next,omitempty"`
}

// Create adds a new maintenance task scoped to an existing vehicle.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var task models.MaintenanceTask
	if err := json.Unmarshal(body, &task); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := task.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.vehicles.FindVehicleByID(r.Context(), task.VehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to verify vehicle", http.StatusInternalServerError)
		return
	}

	task.ID = uuid.NewString()
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = h.now()

	if err := h.tasks.InsertTask(r.Context(), task); err != nil {
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"task_id":    task.ID,
		"vehicle_id": task.VehicleID,
	}).Info("Task created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

// List returns all maintenance tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.FindTasks(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// Complete marks a task as completed and stamps the completion date.
// Completing a recurring task spawns one follow-up task with its due
// mileage advanced by the recurrence interval. Completing an already
// completed task is a no-op.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	task, err := h.tasks.FindTaskByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch task", http.StatusInternalServerError)
		return
	}

	if task.Completed {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CompleteResponse{Task: *task})
		return
	}

	completedAt := models.DateOf(h.now())
	task.Completed = true
	task.CompletedAt = &completedAt

	if err := h.tasks.UpdateTask(r.Context(), id, *task); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update task", http.StatusInternalServerError)
		return
	}

	response := CompleteResponse{Task: *task}
	if task.RecurrenceMiles != nil && task.DueMileage != nil {
		nextDue := *task.DueMileage + *task.RecurrenceMiles
		next := models.MaintenanceTask{
			ID:              uuid.NewString(),
			VehicleID:       task.VehicleID,
			Title:           task.Title,
			DueMileage:      &nextDue,
			RecurrenceMiles: task.RecurrenceMiles,
			CreatedAt:       h.now(),
		}
		if err := h.tasks.InsertTask(r.Context(), next); err != nil {
			http.Error(w, "Failed to create recurring task", http.StatusInternalServerError)
			return
		}
		response.Next = &next
		log.WithFields(log.Fields{
			"task_id": task.ID,
			"next_id": next.ID,
		}).Info("Recurring task re-armed")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Delete removes a maintenance task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Task deleted"})
}

// Upcoming returns the overdue, not-yet-completed tasks across all vehicles.
func (h *TaskHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.FindTasks(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}
	vehicles, err := h.vehicles.FindVehicles(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status.Upcoming(tasks, vehicles, h.now()))
}
