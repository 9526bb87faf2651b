package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/traffbase/clickmap/authenticator"
	"github.com/traffbase/clickmap/userctx"
)

// RequireAuth gates the operator endpoints behind a bearer token. On success
// the operator's username is placed in the request context.
func RequireAuth(auth *authenticator.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "Token is required")
				return
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				if errors.Is(err, authenticator.ErrTokenExpired) {
					unauthorized(w, "Token has expired")
					return
				}
				unauthorized(w, "Invalid token")
				return
			}

			ctx := userctx.SetUsername(r.Context(), claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveGate optionally protects the resolution API with a static shared
// secret taken from the X-Api-Key header, the api_key query parameter or the
// api_key body field. An empty configured key disables the gate entirely; the
// endpoint is then open. This fail-open behavior is inherited from the
// original deployment.
func ResolveGate(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-Api-Key")
			if provided == "" {
				provided = r.URL.Query().Get("api_key")
			}
			if provided == "" {
				provided = bodyAPIKey(r)
			}

			if provided != apiKey {
				unauthorized(w, "Invalid or missing API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bodyAPIKey pulls api_key out of a JSON or form body, restoring the body so
// the handler still sees it
func bodyAPIKey(r *http.Request) string {
	if r.Method != http.MethodPost || r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body map[string]interface{}
		if json.Unmarshal(data, &body) == nil {
			if value, ok := body["api_key"].(string); ok {
				return value
			}
		}
		return ""
	}

	if values, err := url.ParseQuery(string(data)); err == nil {
		return values.Get("api_key")
	}
	return ""
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "Unauthorized",
		"message": message,
	})
}
