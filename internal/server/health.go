package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Checker verifies that an infrastructure dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

type HealthResponse map[string]HealthResult

type HealthResult struct {
	Status string `json:"status"`
}

func handleHealth(logger *slog.Logger, checks map[string]Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		results := make(HealthResponse, len(checks))
		status := http.StatusOK

		for name, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.Error("health check failed", "name", name, "error", err)
				results[name] = HealthResult{Status: "error"}
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = HealthResult{Status: "ok"}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(results)
	}
}
