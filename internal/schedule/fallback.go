package schedule

// Fallback returns the static manufacturer-style schedule used when the
// lookup service is unavailable. Intervals follow common industry service
// groups.
func Fallback() Schedule {
	return Schedule{
		Regular: []ServiceGroup{
			{
				Interval: 5000,
				Items:    []string{"Oil and Filter Change", "Tire Rotation", "Multi-Point Inspection"},
			},
			{
				Interval: 15000,
				Items:    []string{"Cabin Air Filter Replacement", "Brake Inspection"},
			},
			{
				Interval: 30000,
				Items: []string{
					"Air Filter Replacement",
					"Power Steering Fluid Check",
					"Transmission Fluid Check",
					"Battery Test",
				},
			},
			{
				Interval: 60000,
				Items: []string{
					"Timing Belt Inspection/Replacement",
					"Coolant Flush",
					"Spark Plug Replacement",
					"Transmission Service",
				},
			},
		},
		Severe: []ServiceGroup{
			{
				Interval: 3000,
				Items:    []string{"Oil and Filter Change"},
			},
			{
				Interval: 7500,
				Items:    []string{"Tire Rotation", "Brake Inspection"},
			},
		},
	}
}

// CostRange is a rough min/max estimate in USD for a maintenance item.
type CostRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var costEstimates = map[string]CostRange{
	"Oil and Filter Change":        {Min: 30, Max: 80},
	"Tire Rotation":                {Min: 20, Max: 50},
	"Brake Inspection":             {Min: 30, Max: 100},
	"Air Filter Replacement":       {Min: 20, Max: 60},
	"Cabin Air Filter Replacement": {Min: 30, Max: 70},
	"Timing Belt Replacement":      {Min: 500, Max: 1000},
	"Transmission Service":         {Min: 80, Max: 250},
	"Coolant Flush":                {Min: 60, Max: 120},
	"Spark Plug Replacement":       {Min: 40, Max: 150},
}

// EstimateCost returns the cost estimate for a maintenance item, or a
// default range for unknown items.
func EstimateCost(item string) CostRange {
	if c, ok := costEstimates[item]; ok {
		return c
	}
	return CostRange{Min: 50, Max: 200}
}
