package zones_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"hyperapp/internal/api/handlers/http/zones"
	mock_zones "hyperapp/internal/api/handlers/http/zones/mocks"
	"hyperapp/internal/domain"
	"hyperapp/internal/service"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestZoneCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneSvc := mock_zones.NewMockZoneWriter(ctrl)
	h := zones.NewHandler(newTestLogger(), zoneSvc, nil, nil, nil)

	want := &domain.Geofence{
		ID:           uuid.New(),
		Name:         "Home",
		Vibe:         domain.VibeSafe,
		Center:       domain.Coordinate{Latitude: 40.0, Longitude: -74.0},
		RadiusMeters: 50,
		IsActive:     true,
	}
	zoneSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CreateGeofenceRequest) (*domain.Geofence, error) {
			if req.Position.Latitude != 40.0 || req.Position.Longitude != -74.0 {
				t.Errorf("position not forwarded: %+v", req.Position)
			}
			return want, nil
		})

	reqBody := `{"name":"Home","vibe":"safe","position":{"latitude":40.0,"longitude":-74.0},"radius_meters":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Geofence](t, rr)
	if got.ID != want.ID || got.Name != want.Name {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestZoneCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneSvc := mock_zones.NewMockZoneWriter(ctrl)
	h := zones.NewHandler(newTestLogger(), zoneSvc, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneCreate_ValidationFailure_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneSvc := mock_zones.NewMockZoneWriter(ctrl)
	h := zones.NewHandler(newTestLogger(), zoneSvc, nil, nil, nil)

	// Radius above the 100km cap fails the radius_m validation.
	reqBody := `{"name":"Huge","vibe":"safe","position":{"latitude":40.0,"longitude":-74.0},"radius_meters":200000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/geofences", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneUpdate_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneSvc := mock_zones.NewMockZoneWriter(ctrl)
	h := zones.NewHandler(newTestLogger(), zoneSvc, nil, nil, nil)

	id := uuid.New()
	zoneSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(false, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/geofences/"+id.String(), bytes.NewBufferString(`{"name":"X"}`))
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ZoneUpdate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestZoneUpdate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneSvc := mock_zones.NewMockZoneWriter(ctrl)
	h := zones.NewHandler(newTestLogger(), zoneSvc, nil, nil, nil)

	id := uuid.New()
	zoneSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(true, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/geofences/"+id.String(), bytes.NewBufferString(`{"name":"New name"}`))
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ZoneUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestZoneDelete_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := mock_zones.NewMockZoneRemover(ctrl)
	h := zones.NewHandler(newTestLogger(), nil, remover, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/geofences/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.ZoneDelete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := mock_zones.NewMockZoneRemover(ctrl)
	h := zones.NewHandler(newTestLogger(), nil, remover, nil, nil)

	id := uuid.New()
	remover.EXPECT().DeleteGeofence(gomock.Any(), id).Return(true, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/geofences/"+id.String(), nil)
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ZoneDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestZoneEvents_LimitCapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mock_zones.NewMockEventReader(ctrl)
	h := zones.NewHandler(newTestLogger(), nil, nil, nil, events)

	events.EXPECT().List(gomock.Any(), 50).Return([]domain.GeofenceEvent{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geofences/events?limit=500", nil)
	rr := httptest.NewRecorder()

	h.ZoneEvents(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestLocationUpdate_ReturnsTransitions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := mock_zones.NewMockPositionEvaluator(ctrl)
	h := zones.NewHandler(newTestLogger(), nil, nil, monitor, nil)

	zone := &domain.Geofence{ID: uuid.New(), Name: "Home", Vibe: domain.VibeSafe}
	monitor.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos domain.Position) ([]service.Transition, error) {
			if pos.Latitude != 40.0 || pos.Longitude != -74.0 {
				t.Errorf("position not forwarded: %+v", pos.Coordinate)
			}
			return []service.Transition{
				{Geofence: zone, Event: domain.EventEnter, At: time.Now().UTC()},
			}, nil
		})

	reqBody := `{"latitude":40.0,"longitude":-74.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/location/update", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.LocationUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if resp["count"] != float64(1) {
		t.Fatalf("expected 1 transition, got %v", resp["count"])
	}
}

func TestLocationUpdate_BadCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monitor := mock_zones.NewMockPositionEvaluator(ctrl)
	h := zones.NewHandler(newTestLogger(), nil, nil, monitor, nil)

	reqBody := `{"latitude":95.0,"longitude":-74.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/location/update", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.LocationUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}
