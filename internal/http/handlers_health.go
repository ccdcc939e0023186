package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse   = `{"status":"ok"}`
	unreadyResponse  = `{"status":"unavailable"}`
	readinessTimeout = 2 * time.Second
)

// ReadinessCheck reports whether the process's dependencies (the session store) are usable.
type ReadinessCheck func(ctx context.Context) error

// healthHandler returns a simple 200 OK status for liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, r, http.StatusOK, healthResponse)
}

// readyHandler runs check with a short timeout and reports 503 when it fails.
func readyHandler(check ReadinessCheck, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check == nil {
			writeHealth(w, r, http.StatusOK, healthResponse)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := check(ctx); err != nil {
			logger.WarnContext(r.Context(), "readiness check failed", "error", err)
			writeHealth(w, r, http.StatusServiceUnavailable, unreadyResponse)
			return
		}
		writeHealth(w, r, http.StatusOK, healthResponse)
	})
}

func writeHealth(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
