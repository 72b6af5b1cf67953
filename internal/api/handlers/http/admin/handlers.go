package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.EngineStats, error)
}

type Sweeper interface {
	SweepVibes(ctx context.Context) (int, error)
	SweepSOS(ctx context.Context) (int, error)
}

type Handler struct {
	logger  *slog.Logger
	Stats   StatsGetter
	Sweeper Sweeper
}

func NewHandler(logger *slog.Logger, stats StatsGetter, sweeper Sweeper) *Handler {
	return &Handler{
		logger:  logger,
		Stats:   stats,
		Sweeper: sweeper,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// AdminSweep runs both lifecycle sweeps immediately instead of waiting for
// the next scheduled tick. Each half reports its own count; a failure in one
// does not abort the other.
func (h *Handler) AdminSweep(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSweep", slog.String("remote", r.RemoteAddr))

	vibes, vibeErr := h.Sweeper.SweepVibes(r.Context())
	sos, sosErr := h.Sweeper.SweepSOS(r.Context())

	if vibeErr != nil && sosErr != nil {
		h.handleError(w, r, errors.Join(vibeErr, sosErr))
		return
	}

	resp := map[string]any{
		"migrated_vibes": vibes,
		"migrated_sos":   sos,
	}
	if vibeErr != nil {
		l.Error("vibe sweep failed", slog.Any("error", vibeErr))
		resp["vibe_error"] = "sweep failed"
	}
	if sosErr != nil {
		l.Error("sos sweep failed", slog.Any("error", sosErr))
		resp["sos_error"] = "sweep failed"
	}

	l.Info("manual sweep done", slog.Int("vibes", vibes), slog.Int("sos", sos))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
