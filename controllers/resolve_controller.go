package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/traffbase/clickmap/config"
	"github.com/traffbase/clickmap/middleware"
	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/services"
)

// ResolveController serves the two delivery modes of the resolution service:
// a JSON answer for server-to-server calls and a legacy redirect for the
// tracking platform.
type ResolveController struct {
	services       *services.Services
	redirectTarget string
}

// NewResolveController creates a new resolve controller
func NewResolveController(services *services.Services, cfg *config.Config) *ResolveController {
	return &ResolveController{
		services:       services,
		redirectTarget: cfg.RedirectTargetURL,
	}
}

// GetSubID handles GET/POST /api/tracker/sub_id (API mode). Parameters are
// merged from the query string and the body, body winning. Every request
// writes exactly one resolution log entry, errors included.
func (c *ResolveController) GetSubID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params := mergeParams(r)

	resolution, err := c.services.Resolve.Resolve(r.Context(), params)

	entry := c.newLogEntry(r, params, resolution, start)

	if err != nil {
		log.Printf("Resolution failed: %v", err)
		entry.Status = models.ResolutionStatusError
		entry.ErrorMessage = err.Error()
		c.services.Resolve.LogAttempt(entry)

		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"sub_id":  nil,
			"error":   err.Error(),
		})
		return
	}

	c.services.Resolve.LogAttempt(entry)

	body := map[string]interface{}{
		"success": true,
		"sub_id":  nil,
		"source":  nil,
		"found":   resolution.Found,
	}
	if resolution.Source != "" {
		body["source"] = resolution.Source
	}
	if resolution.Found {
		body["sub_id"] = resolution.SubID
	} else if resolution.Source == "" {
		// The message marks requests that carried no source-indicating
		// parameter at all; a known-but-unmapped source answers plain
		// found=false
		body["message"] = "Source not found"
	}

	respondJSON(w, http.StatusOK, body)
}

// Redirect handles GET/POST /r (redirect mode). The response is always an
// HTTP redirect carrying a sub_id parameter — the literal "null" when
// unresolved — because the downstream tracker has no error path of its own.
func (c *ResolveController) Redirect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params := mergeParams(r)

	resolution, err := c.services.Resolve.Resolve(r.Context(), params)
	if resolution == nil {
		resolution = &services.Resolution{}
	}

	redirectURL := c.services.Resolve.BuildRedirectURL(c.redirectTarget, params, resolution.SubID)

	entry := c.newLogEntry(r, params, resolution, start)
	entry.RedirectURL = redirectURL
	if err != nil {
		log.Printf("Resolution failed during redirect: %v", err)
		entry.Status = models.ResolutionStatusError
		entry.ErrorMessage = err.Error()
	}
	c.services.Resolve.LogAttempt(entry)

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (c *ResolveController) newLogEntry(r *http.Request, params url.Values, resolution *services.Resolution, start time.Time) *models.ResolutionLogEntry {
	entry := &models.ResolutionLogEntry{
		Method:     r.Method,
		URL:        r.URL.RequestURI(),
		Params:     encodeParams(params),
		Status:     models.ResolutionStatusNotFound,
		IPAddress:  middleware.ClientIP(r),
		UserAgent:  r.UserAgent(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if resolution != nil {
		entry.Source = resolution.Source
		entry.ResolvedSubID = resolution.SubID
		if resolution.Found {
			entry.Status = models.ResolutionStatusSuccess
		}
	}
	return entry
}

// mergeParams collects request parameters: the query string first, then the
// body (JSON or form-encoded), with body values overriding query values.
func mergeParams(r *http.Request) url.Values {
	params := url.Values{}
	for key, values := range r.URL.Query() {
		params[key] = append([]string(nil), values...)
	}

	if r.Method != http.MethodPost || r.Body == nil {
		return params
	}

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			for key, value := range body {
				params.Set(key, fmt.Sprintf("%v", value))
			}
		}
	default:
		if err := r.ParseForm(); err == nil {
			for key, values := range r.PostForm {
				params[key] = append([]string(nil), values...)
			}
		}
	}

	return params
}

// encodeParams renders the raw parameter bag as a JSON object for the log
func encodeParams(params url.Values) string {
	flat := make(map[string]interface{}, len(params))
	for key, values := range params {
		if len(values) == 1 {
			flat[key] = values[0]
		} else {
			flat[key] = values
		}
	}

	data, err := json.Marshal(flat)
	if err != nil {
		return "{}"
	}
	return string(data)
}
