package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/schedule"
)

// RecommendationHandler serves manufacturer-style maintenance
// recommendations for a vehicle.
type RecommendationHandler struct {
	vehicles db.VehicleCollection
	provider schedule.Provider
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(vehicles db.VehicleCollection, provider schedule.Provider) *RecommendationHandler {
	return &RecommendationHandler{vehicles: vehicles, provider: provider}
}

type recommendedItem struct {
	Name          string             `json:"name"`
	EstimatedCost schedule.CostRange `json:"estimatedCost"`
}

type recommendationResponse struct {
	DueMileage int               `json:"dueMileage"`
	Interval   int               `json:"interval"`
	Items      []recommendedItem `json:"items"`
}

// Get returns the upcoming service groups for a vehicle with per-item cost
// estimates. The schedule lookup is best effort; an unavailable lookup
// service degrades to the static fallback schedule.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
		return
	}

	sched := h.provider.Schedule(r.Context(), vehicle.Make, vehicle.Model, vehicle.Year)
	recs := schedule.Recommended(sched, vehicle.Mileage)

	response := []recommendationResponse{}
	for _, rec := range recs {
		items := []recommendedItem{}
		for _, name := range rec.Items {
			items = append(items, recommendedItem{
				Name:          name,
				EstimatedCost: schedule.EstimateCost(name),
			})
		}
		response = append(response, recommendationResponse{
			DueMileage: rec.DueMileage,
			Interval:   rec.Interval,
			Items:      items,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
