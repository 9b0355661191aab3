package models

import (
	"errors"
	"fmt"
	"time"
)

// FirstAutomobileYear is the earliest accepted model year.
const FirstAutomobileYear = 1885

// Vehicle represents a tracked car.
type Vehicle struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Make      string    `bson:"make" json:"make"`
	Model     string    `bson:"model" json:"model"`
	Year      int       `bson:"year" json:"year"`
	Mileage   int       `bson:"mileage" json:"mileage"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt,omitempty"`
}

// Validate checks the user-entered vehicle fields. The model year is bounded
// below by the first automobile and above by next year's models.
func (v *Vehicle) Validate(now time.Time) error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	if v.Year < FirstAutomobileYear {
		return fmt.Errorf("year must be %d or later", FirstAutomobileYear)
	}
	if maxYear := now.Year() + 1; v.Year > maxYear {
		return fmt.Errorf("year cannot be greater than %d", maxYear)
	}
	if v.Mileage < 0 {
		return errors.New("mileage cannot be negative")
	}
	return nil
}
