package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/traffbase/clickmap/authenticator"
	"github.com/traffbase/clickmap/config"
	"github.com/traffbase/clickmap/userctx"
)

// AuthController issues operator tokens
type AuthController struct {
	auth          *authenticator.Manager
	adminUsername string
	adminPassword string
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *authenticator.Manager, cfg *config.Config) *AuthController {
	return &AuthController{
		auth:          auth,
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required", "")
		return
	}

	if req.Username != c.adminUsername || req.Password != c.adminPassword {
		respondError(w, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	token, err := c.auth.IssueToken(req.Username)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user": map[string]interface{}{
			"username": req.Username,
		},
	})
}

// Verify handles GET /api/auth/verify; it sits behind RequireAuth, so
// reaching it proves the token is valid
func (c *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"username": userctx.GetUsername(r.Context()),
		},
	})
}
