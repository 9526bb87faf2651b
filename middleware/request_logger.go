package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories"
	"github.com/traffbase/clickmap/userctx"
)

// maxCapturedBytes caps how much request/response payload a log entry keeps
const maxCapturedBytes = 10000

// sensitiveHeaders are redacted before the header bag is persisted
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
	"password":      true,
	"token":         true,
}

// RequestLogger records every request/response pair passing through it.
// The entry is written after the response has been sent, in the background;
// a sink failure never fails or delays the request.
func RequestLogger(requestRepo repositories.RequestLogRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			body := captureRequestBody(r)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var responseBuf bytes.Buffer
			ww.Tee(limitedWriter{&responseBuf})

			next.ServeHTTP(ww, r)

			entry := &models.RequestLogEntry{
				Method:       r.Method,
				URL:          r.URL.RequestURI(),
				Path:         r.URL.Path,
				Headers:      sanitizeHeaders(r.Header),
				Body:         body,
				StatusCode:   ww.Status(),
				Response:     truncate(responseBuf.String()),
				ResponseTime: time.Since(start).Milliseconds(),
				IPAddress:    ClientIP(r),
				UserAgent:    r.UserAgent(),
				Username:     userctx.GetUsername(r.Context()),
			}
			if entry.StatusCode == 0 {
				entry.StatusCode = http.StatusOK
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := requestRepo.Create(ctx, entry); err != nil {
					log.Printf("Failed to write request log: %v", err)
				}
			}()
		})
	}
}

// ClientIP extracts the caller's IP, preferring proxy headers
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureRequestBody reads and restores the request body so handlers still
// see it. Bodies beyond the cap are truncated in the log only.
func captureRequestBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	return truncate(string(data))
}

func sanitizeHeaders(headers http.Header) string {
	sanitized := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			sanitized[key] = "[REDACTED]"
			continue
		}
		sanitized[key] = strings.Join(values, ", ")
	}

	data, err := json.Marshal(sanitized)
	if err != nil {
		return ""
	}
	return string(data)
}

func truncate(s string) string {
	if len(s) <= maxCapturedBytes {
		return s
	}
	return s[:maxCapturedBytes] + "... [truncated]"
}

// limitedWriter discards bytes past the capture cap so teeing a large
// response does not buffer it all
type limitedWriter struct {
	buf *bytes.Buffer
}

func (w limitedWriter) Write(p []byte) (int, error) {
	remaining := maxCapturedBytes + 1 - w.buf.Len()
	if remaining > 0 {
		if len(p) > remaining {
			w.buf.Write(p[:remaining])
		} else {
			w.buf.Write(p)
		}
	}
	return len(p), nil
}
