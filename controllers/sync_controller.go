package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/services"
)

// SyncController handles the ingestion trigger and mapping reads
type SyncController struct {
	services *services.Services
}

// NewSyncController creates a new sync controller
func NewSyncController(services *services.Services) *SyncController {
	return &SyncController{services: services}
}

// ProcessClicks handles POST /api/clicks/process. It runs one full
// ingestion for the requested window; any upstream failure aborts with
// nothing committed and is surfaced verbatim to the operator.
func (c *SyncController) ProcessClicks(w http.ResponseWriter, r *http.Request) {
	var form models.SyncForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := c.services.Sync.ProcessWindow(r.Context(), &form)
	if err != nil {
		var validationErr *services.ValidationError
		var upstreamErr *services.UpstreamError

		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message, "")
		case errors.As(err, &upstreamErr):
			log.Printf("Sync failed against upstream: %v", err)
			respondError(w, http.StatusBadGateway, "Upstream fetch failed", upstreamErr.Err.Error())
		default:
			log.Printf("Sync failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to process clicks data", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Processed %d records", result.Processed),
		"runId":   result.RunID,
		"stats": map[string]interface{}{
			"totalFromAPI":     result.TotalFromUpstream,
			"processed":        result.Processed,
			"inserted":         result.Inserted,
			"updated":          result.Updated,
			"sourcesProcessed": result.SourcesProcessed,
		},
	})
}

// GetMappings handles GET /api/clicks/data, returning all current mapping
// records ordered by source
func (c *SyncController) GetMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := c.services.Sync.GetAllMappings(r.Context())
	if err != nil {
		log.Printf("Failed to load mappings: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load mappings", err.Error())
		return
	}

	if mappings == nil {
		mappings = []models.MappingRecord{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    mappings,
		"count":   len(mappings),
	})
}
