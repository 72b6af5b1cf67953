package system

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"
)

// Check pings one backing dependency. Used by the readiness probe only; the
// liveness probe never touches collaborators.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	checks []Check
}

func NewHandler(logger *slog.Logger, checks ...Check) *Handler {
	return &Handler{logger: logger, checks: checks}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed",
				slog.String("dependency", c.Name),
				slog.Any("error", err),
			)
			results[c.Name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		results[c.Name] = "up"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(results)
}
