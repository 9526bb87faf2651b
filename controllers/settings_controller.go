package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/services"
)

// SettingsController serves the operator settings store
type SettingsController struct {
	services *services.Services
}

// NewSettingsController creates a new settings controller
func NewSettingsController(services *services.Services) *SettingsController {
	return &SettingsController{services: services}
}

// GetSettings handles GET /api/settings
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.services.Settings.GetSettings(r.Context())
	if err != nil {
		log.Printf("Failed to load settings: %v", err)
		respondError(w, http.StatusInternalServerError, "Error retrieving settings", "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"settings": settings,
	})
}

// UpdateSettings handles POST /api/settings. Only the provided fields are
// written; the response echoes the full settings view.
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var form models.SettingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	settings, err := c.services.Settings.UpdateSettings(r.Context(), &form)
	if err != nil {
		log.Printf("Failed to update settings: %v", err)
		respondError(w, http.StatusInternalServerError, "Error updating settings", "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"settings": settings,
	})
}
