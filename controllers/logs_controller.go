package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/services"
)

// LogsController serves the audit trail: resolution logs and request logs,
// each with filtered listing, point reads and retention cleanup
type LogsController struct {
	services *services.Services
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services) *LogsController {
	return &LogsController{services: services}
}

// ListResolutionLogs handles GET /api/resolutions
func (c *LogsController) ListResolutionLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.ResolutionLogFilter{
		Source: query.Get("source"),
		Limit:  intQuery(query.Get("limit"), models.DefaultLogLimit),
		Offset: intQuery(query.Get("offset"), 0),
	}
	if raw := query.Get("found"); raw != "" {
		found := raw == "true"
		filter.Found = &found
	}

	entries, total, err := c.services.Logs.ListResolutionLogs(r.Context(), filter)
	if err != nil {
		log.Printf("Failed to list resolution logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching logs", err.Error())
		return
	}

	respondLogPage(w, entries, total, models.ClampLimit(filter.Limit), models.ClampOffset(filter.Offset))
}

// GetResolutionLog handles GET /api/resolutions/{id}
func (c *LogsController) GetResolutionLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid log ID", "")
		return
	}

	entry, err := c.services.Logs.GetResolutionLog(r.Context(), id)
	if err != nil {
		c.respondLogError(w, err)
		return
	}
	if entry == nil {
		respondError(w, http.StatusNotFound, "Log not found", "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    entry,
	})
}

// CleanupResolutionLogs handles DELETE /api/resolutions/cleanup
func (c *LogsController) CleanupResolutionLogs(w http.ResponseWriter, r *http.Request) {
	c.cleanup(w, r, c.services.Logs.CleanupResolutionLogs)
}

// ListRequestLogs handles GET /api/requests
func (c *LogsController) ListRequestLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.RequestLogFilter{
		Method:     query.Get("method"),
		StatusCode: intQuery(query.Get("statusCode"), 0),
		Path:       query.Get("path"),
		Limit:      intQuery(query.Get("limit"), models.DefaultLogLimit),
		Offset:     intQuery(query.Get("offset"), 0),
	}

	entries, total, err := c.services.Logs.ListRequestLogs(r.Context(), filter)
	if err != nil {
		log.Printf("Failed to list request logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching logs", err.Error())
		return
	}

	respondLogPage(w, entries, total, models.ClampLimit(filter.Limit), models.ClampOffset(filter.Offset))
}

// GetRequestLog handles GET /api/requests/{id}
func (c *LogsController) GetRequestLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid log ID", "")
		return
	}

	entry, err := c.services.Logs.GetRequestLog(r.Context(), id)
	if err != nil {
		c.respondLogError(w, err)
		return
	}
	if entry == nil {
		respondError(w, http.StatusNotFound, "Log not found", "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    entry,
	})
}

// CleanupRequestLogs handles DELETE /api/requests/cleanup
func (c *LogsController) CleanupRequestLogs(w http.ResponseWriter, r *http.Request) {
	c.cleanup(w, r, c.services.Logs.CleanupRequestLogs)
}

type cleanupRequest struct {
	DaysToKeep int `json:"daysToKeep"`
}

func (c *LogsController) cleanup(w http.ResponseWriter, r *http.Request, purge func(ctx context.Context, daysToKeep int) (int64, error)) {
	var req cleanupRequest
	if r.Body != nil {
		// An empty or malformed body falls back to the default retention
		json.NewDecoder(r.Body).Decode(&req)
	}

	deleted, err := purge(r.Context(), req.DaysToKeep)
	if err != nil {
		log.Printf("Failed to clean up logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Error cleaning up logs", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d old log records", deleted),
		"deletedCount": deleted,
	})
}

func intQuery(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func respondLogPage(w http.ResponseWriter, entries interface{}, total, limit, offset int) {
	returned := 0
	switch v := entries.(type) {
	case []models.ResolutionLogEntry:
		if v == nil {
			entries = []models.ResolutionLogEntry{}
		}
		returned = len(v)
	case []models.RequestLogEntry:
		if v == nil {
			entries = []models.RequestLogEntry{}
		}
		returned = len(v)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       entries,
		"pagination": models.NewPagination(total, limit, offset, returned),
	})
}

func (c *LogsController) respondLogError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, validationErr.Message, "")
		return
	}
	log.Printf("Failed to fetch log: %v", err)
	respondError(w, http.StatusInternalServerError, "Error fetching log", err.Error())
}
