package db

import (
	"context"
	"errors"

	"github.com/ukydev/car-maintenance/internal/models"
)

// ErrNotFound is returned when an operation references a record that no
// longer exists. Callers treat it as a no-op condition, never a crash.
var ErrNotFound = errors.New("record not found")

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicles(ctx context.Context) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
}

// TaskCollection defines the interface for maintenance-task data operations.
type TaskCollection interface {
	InsertTask(ctx context.Context, task models.MaintenanceTask) error
	FindTasks(ctx context.Context) ([]models.MaintenanceTask, error)
	FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error)
	UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error
	DeleteTask(ctx context.Context, id string) error
}

// SettingsCollection defines the interface for the key/value preference
// records: user name, theme, and font size.
type SettingsCollection interface {
	LoadUserName(ctx context.Context) (string, error)
	SaveUserName(ctx context.Context, name string) error
	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// StateStore defines the multi-collection operations that must be atomic:
// cascade deletion of a vehicle with its tasks, and wholesale state
// replacement on import.
type StateStore interface {
	DeleteVehicleCascade(ctx context.Context, vehicleID string) (tasksRemoved int64, err error)
	ReplaceAll(ctx context.Context, userName string, vehicles []models.Vehicle, tasks []models.MaintenanceTask) error
}
