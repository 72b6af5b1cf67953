package zones

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hyperapp/internal/service"
	"hyperapp/pkg/e"

	"github.com/google/uuid"
)

type transitionView struct {
	GeofenceID uuid.UUID `json:"geofence_id"`
	Name       string    `json:"name"`
	Event      string    `json:"event"`
	Timestamp  time.Time `json:"timestamp"`
}

func toTransitionView(t service.Transition) transitionView {
	return transitionView{
		GeofenceID: t.Geofence.ID,
		Name:       t.Geofence.Name,
		Event:      string(t.Event),
		Timestamp:  t.At,
	}
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
	case errors.Is(err, e.ErrInvalidRadius):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "radius must be positive"})
	case errors.Is(err, e.ErrInvalidCoordinates), errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
