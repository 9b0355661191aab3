package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/models"
)

// SettingsHandler handles display preferences and the user name.
type SettingsHandler struct {
	settings db.SettingsCollection
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings db.SettingsCollection) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the stored display preferences.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.LoadSettings(r.Context())
	if err != nil {
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// Update stores the display preferences.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var settings models.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := settings.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.settings.SaveSettings(r.Context(), settings); err != nil {
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

type userRequest struct {
	UserName string `json:"userName"`
}

// GetUser returns the stored user name.
func (h *SettingsHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	name, err := h.settings.LoadUserName(r.Context())
	if err != nil {
		http.Error(w, "Failed to load user name", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(userRequest{UserName: name})
}

// UpdateUser stores the user name.
func (h *SettingsHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req userRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.UserName == "" {
		http.Error(w, "userName is required", http.StatusBadRequest)
		return
	}

	if err := h.settings.SaveUserName(r.Context(), req.UserName); err != nil {
		http.Error(w, "Failed to save user name", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(req)
}
