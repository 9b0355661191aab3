package models

import (
	"errors"
	"time"
)

// MaintenanceTask represents a scheduled or completed service action tied to
// a vehicle. DueDate and DueMileage are both optional; a task with only one
// of them is judged on that measure alone.
type MaintenanceTask struct {
	ID              string    `bson:"_id" json:"id"`
	VehicleID       string    `bson:"vehicle_id" json:"vehicleId"`
	Title           string    `bson:"title" json:"title"`
	DueDate         *Date     `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	DueMileage      *int      `bson:"due_mileage,omitempty" json:"dueMileage,omitempty"`
	RecurrenceMiles *int      `bson:"recurrence_miles,omitempty" json:"recurrenceMiles,omitempty"`
	Completed       bool      `bson:"completed" json:"completed"`
	CompletedAt     *Date     `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt,omitempty"`
}

// Validate checks the user-entered task fields.
func (t *MaintenanceTask) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.VehicleID == "" {
		return errors.New("vehicleId is required")
	}
	if t.DueMileage != nil && *t.DueMileage < 0 {
		return errors.New("dueMileage cannot be negative")
	}
	if t.RecurrenceMiles != nil && *t.RecurrenceMiles < 0 {
		return errors.New("recurrenceMiles cannot be negative")
	}
	return nil
}

// HistoryDate is the date a completed task is filed under in the history
// view: the completion date when recorded, otherwise the due date. Records
// imported from old exports carry only a due date.
func (t *MaintenanceTask) HistoryDate() (Date, bool) {
	if t.CompletedAt != nil {
		return *t.CompletedAt, true
	}
	if t.DueDate != nil {
		return *t.DueDate, true
	}
	return Date{}, false
}
