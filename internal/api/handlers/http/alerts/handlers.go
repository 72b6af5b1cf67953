package alerts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"hyperapp/internal/domain"
	"hyperapp/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertWriter interface {
	Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, error)
	TriggerSOS(ctx context.Context, req domain.TriggerSOSRequest) (*domain.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) error
	Respond(ctx context.Context, id, userID uuid.UUID) error
}

type RelevanceReader interface {
	NearbyAlerts(ctx context.Context, pos domain.Coordinate, radiusKm float64) ([]*domain.Alert, error)
	NearbyVibes(ctx context.Context, pos domain.Coordinate) ([]*domain.Alert, error)
	Neighborhoods(ctx context.Context, pos domain.Coordinate) ([]domain.NeighborhoodCluster, error)
	CommunityScore(ctx context.Context, pos domain.Coordinate) (*domain.CommunityScore, error)
}

type Handler struct {
	logger    *slog.Logger
	Alerts    AlertWriter
	Relevance RelevanceReader
}

func NewHandler(logger *slog.Logger, alerts AlertWriter, relevance RelevanceReader) *Handler {
	return &Handler{
		logger:    logger,
		Alerts:    alerts,
		Relevance: relevance,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alert, err := h.Alerts.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert created",
		slog.String("id", alert.ID.String()),
		slog.String("report_type", string(alert.ReportType)),
	)
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) SOSTrigger(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SOSTrigger", slog.String("remote", r.RemoteAddr))

	var req domain.TriggerSOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alert, err := h.Alerts.TriggerSOS(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sos triggered", slog.String("id", alert.ID.String()))
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) AlertResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertResolve", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Alerts.Resolve(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert resolved", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AlertRespond(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertRespond", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.RespondAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Alerts.Respond(r.Context(), id, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("responder added",
		slog.String("id", id.String()),
		slog.String("user_id", req.UserID.String()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AlertsNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertsNearby", slog.String("query", r.URL.RawQuery))

	pos, ok := h.parseCoordinate(w, r)
	if !ok {
		return
	}
	radiusKm := parseFloat(r.URL.Query().Get("radius_km"), 0)

	nearby, err := h.Relevance.NearbyAlerts(r.Context(), pos, radiusKm)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": nearby,
		"count":  len(nearby),
	})
}

func (h *Handler) VibesNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("VibesNearby", slog.String("query", r.URL.RawQuery))

	pos, ok := h.parseCoordinate(w, r)
	if !ok {
		return
	}

	vibes, err := h.Relevance.NearbyVibes(r.Context(), pos)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"vibes": vibes,
		"count": len(vibes),
	})
}

func (h *Handler) VibeNeighborhoods(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("VibeNeighborhoods", slog.String("query", r.URL.RawQuery))

	pos, ok := h.parseCoordinate(w, r)
	if !ok {
		return
	}

	clusters, err := h.Relevance.Neighborhoods(r.Context(), pos)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"neighborhoods": clusters,
		"count":         len(clusters),
	})
}

func (h *Handler) VibeScore(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("VibeScore", slog.String("query", r.URL.RawQuery))

	pos, ok := h.parseCoordinate(w, r)
	if !ok {
		return
	}

	score, err := h.Relevance.CommunityScore(r.Context(), pos)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, score)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
