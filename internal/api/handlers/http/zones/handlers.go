package zones

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/internal/service"
	"hyperapp/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneWriter interface {
	Create(ctx context.Context, req domain.CreateGeofenceRequest) (*domain.Geofence, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) (bool, error)
	List(ctx context.Context) ([]*domain.Geofence, error)
}

// ZoneRemover deletes a zone and purges its membership state in one step.
type ZoneRemover interface {
	DeleteGeofence(ctx context.Context, id uuid.UUID) (bool, error)
}

type PositionEvaluator interface {
	Evaluate(ctx context.Context, pos domain.Position) ([]service.Transition, error)
}

type EventReader interface {
	List(ctx context.Context, limit int) ([]domain.GeofenceEvent, error)
}

type Handler struct {
	logger  *slog.Logger
	Zones   ZoneWriter
	Remover ZoneRemover
	Monitor PositionEvaluator
	Events  EventReader
}

func NewHandler(logger *slog.Logger, zones ZoneWriter, remover ZoneRemover, monitor PositionEvaluator, events EventReader) *Handler {
	return &Handler{
		logger:  logger,
		Zones:   zones,
		Remover: remover,
		Monitor: monitor,
		Events:  events,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateGeofenceRequest
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

	zone, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("geofence created",
		slog.String("id", zone.ID.String()),
		slog.String("name", zone.Name),
	)
	h.writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneList", slog.String("remote", r.RemoteAddr))

	all, err := h.Zones.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"geofences": all,
		"total":     len(all),
	})
}

func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneUpdate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateGeofenceRequest
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

	found, err := h.Zones.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !found {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ZoneDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	found, err := h.Remover.DeleteGeofence(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !found {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	l.Info("geofence deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ZoneEvents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneEvents", slog.String("query", r.URL.RawQuery))

	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 50 {
		limit = 50
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	events, err := h.Events.List(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
	})
}

func (h *Handler) LocationUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("LocationUpdate", slog.String("remote", r.RemoteAddr))

	var req domain.PositionUpdateRequest
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

	ts := time.Now().UTC()
	if req.Timestamp > 0 {
		ts = time.UnixMilli(req.Timestamp).UTC()
	}
	pos := domain.Position{
		Coordinate: domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		AccuracyM:  req.AccuracyM,
		Heading:    req.Heading,
		SpeedMS:    req.SpeedMS,
		Timestamp:  ts,
	}

	transitions, err := h.Monitor.Evaluate(r.Context(), pos)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views := make([]transitionView, 0, len(transitions))
	for _, t := range transitions {
		views = append(views, toTransitionView(t))
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"transitions": views,
		"count":       len(views),
	})
}
