// Package history filters completed maintenance tasks by vehicle and time
// range for the history view.
package history

import (
	"sort"
	"strconv"
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
)

// Time-range selectors. Any positive integer string ("3", "6", "9", "12")
// selects that many calendar months back from today.
const (
	RangeYTD    = "ytd"
	RangeCustom = "custom"
	RangeAll    = "all"
)

// VehicleAll selects tasks from every vehicle.
const VehicleAll = "all"

// defaultMonthsBack is used when the selector is not recognized.
const defaultMonthsBack = 3

// CustomRange is the explicit start/end pair for the "custom" selector.
// Both boundaries are inclusive.
type CustomRange struct {
	Start models.Date
	End   models.Date
}

// Filter returns the completed tasks matching the vehicle and time-range
// selection, most recent first. A custom range whose start is after its end
// matches nothing. Completed tasks without any recorded date only appear
// under the "all" selector.
func Filter(tasks []models.MaintenanceTask, vehicleID, timeRange string, custom CustomRange, now time.Time) []models.MaintenanceTask {
	start, end, bounded := window(timeRange, custom, now)

	filtered := []models.MaintenanceTask{}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		if vehicleID != "" && vehicleID != VehicleAll && t.VehicleID != vehicleID {
			continue
		}
		if bounded {
			d, ok := t.HistoryDate()
			if !ok || d.Before(start) || d.After(end) {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		di, _ := filtered[i].HistoryDate()
		dj, _ := filtered[j].HistoryDate()
		return dj.Before(di.Time)
	})
	return filtered
}

// window resolves a time-range selector to inclusive date bounds.
func window(timeRange string, custom CustomRange, now time.Time) (start, end time.Time, bounded bool) {
	today := models.DateOf(now).Time
	switch timeRange {
	case RangeAll:
		return time.Time{}, time.Time{}, false
	case RangeYTD:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today, true
	case RangeCustom:
		return custom.Start.Time, custom.End.Time, true
	default:
		months := defaultMonthsBack
		if n, err := strconv.Atoi(timeRange); err == nil && n > 0 {
			months = n
		}
		return today.AddDate(0, -months, 0), today, true
	}
}
