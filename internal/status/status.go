// Package status classifies maintenance tasks as overdue, due soon, or
// scheduled. All functions are pure: the current time and the vehicle list
// are explicit inputs so callers and tests control the clock.
package status

import (
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Status is the due-status classification of a maintenance task.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusDueSoon   Status = "due_soon"
	StatusScheduled Status = "scheduled"
)

// dueSoonWindowMonths is the look-ahead window for the due-soon state.
const dueSoonWindowMonths = 3

// VehicleMileage returns the current odometer reading of the vehicle with
// the given id, or 0 when the reference is dangling. A task pointing at a
// deleted vehicle must still classify rather than fail.
func VehicleMileage(vehicles []models.Vehicle, vehicleID string) int {
	for _, v := range vehicles {
		if v.ID == vehicleID {
			return v.Mileage
		}
	}
	return 0
}

// Classify returns the status of a task given its vehicle's current mileage.
// A completed task is always StatusCompleted, regardless of stale due
// fields. An incomplete task is overdue when its due date is on or before
// today or its due mileage has been reached; either condition alone is
// enough. A task missing one measure is judged purely on the other.
func Classify(task models.MaintenanceTask, vehicleMileage int, now time.Time) Status {
	if task.Completed {
		return StatusCompleted
	}
	today := models.DateOf(now)
	if task.DueDate != nil && !task.DueDate.After(today.Time) {
		return StatusOverdue
	}
	if task.DueMileage != nil && *task.DueMileage <= vehicleMileage {
		return StatusOverdue
	}
	if task.DueDate != nil && !task.DueDate.After(today.AddDate(0, dueSoonWindowMonths, 0)) {
		return StatusDueSoon
	}
	return StatusScheduled
}

// Upcoming returns the overdue, not-yet-completed tasks across all vehicles
// in insertion order. The dashboard's "upcoming & overdue" list only
// surfaces overdue items, not the broader due-soon set.
func Upcoming(tasks []models.MaintenanceTask, vehicles []models.Vehicle, now time.Time) []models.MaintenanceTask {
	upcoming := []models.MaintenanceTask{}
	for _, t := range tasks {
		if Classify(t, VehicleMileage(vehicles, t.VehicleID), now) == StatusOverdue {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming
}
