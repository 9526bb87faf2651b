package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/traffbase/clickmap/authenticator"
	"github.com/traffbase/clickmap/config"
	"github.com/traffbase/clickmap/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth     *AuthController
	Sync     *SyncController
	Resolve  *ResolveController
	Logs     *LogsController
	Settings *SettingsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(srvs *services.Services, auth *authenticator.Manager, cfg *config.Config) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(auth, cfg),
		Sync:     NewSyncController(srvs),
		Resolve:  NewResolveController(srvs, cfg),
		Logs:     NewLogsController(srvs),
		Settings: NewSettingsController(srvs),
	}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes the standard error envelope
func respondError(w http.ResponseWriter, status int, message, details string) {
	body := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if details != "" {
		body["details"] = details
	}
	respondJSON(w, status, body)
}
