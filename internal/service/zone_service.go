package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	"github.com/google/uuid"
)

const geofencesKey = "geofences:v1"

// zoneService keeps the geofence collection in memory and writes it through
// to the KV store on every mutation. The in-memory copy stays authoritative
// when a persist fails; the next successful write catches up.
type zoneService struct {
	mu     sync.Mutex
	kv     KVStore
	logger *slog.Logger
	zones  []*domain.Geofence
}

func NewZoneService(ctx context.Context, kv KVStore, logger *slog.Logger) ZoneStore {
	s := &zoneService{kv: kv, logger: logger}
	s.load(ctx)
	return s
}

func (s *zoneService) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, geofencesKey)
	if err != nil {
		s.logger.Error("geofence load failed, starting empty", slog.Any("error", err))
		return
	}
	if data == nil {
		return
	}
	var zones []*domain.Geofence
	if err := json.Unmarshal(data, &zones); err != nil {
		s.logger.Warn("corrupt geofence data, starting empty", slog.Any("error", err))
		return
	}
	s.zones = zones
	s.logger.Info("geofences loaded", slog.Int("count", len(zones)))
}

func (s *zoneService) persist(ctx context.Context) {
	data, err := json.Marshal(s.zones)
	if err != nil {
		s.logger.Error("geofence marshal failed", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, geofencesKey, data); err != nil {
		s.logger.Error("geofence persist failed", slog.Any("error", err))
	}
}

func (s *zoneService) Create(ctx context.Context, req domain.CreateGeofenceRequest) (*domain.Geofence, error) {
	if req.RadiusMeters <= 0 {
		return nil, fmt.Errorf("service.Zone.Create: %w", e.ErrInvalidRadius)
	}

	zone := &domain.Geofence{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Vibe:         req.Vibe,
		Center:       req.Position.Coordinate,
		RadiusMeters: req.RadiusMeters,
		AlertOnEnter: req.AlertOnEnter,
		AlertOnExit:  req.AlertOnExit,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.zones = append(s.zones, zone)
	s.persist(ctx)

	s.logger.Info("geofence created",
		slog.String("id", zone.ID.String()),
		slog.String("name", zone.Name),
		slog.Float64("radius_m", zone.RadiusMeters),
	)

	cp := *zone
	return &cp, nil
}

func (s *zoneService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone := s.find(id)
	if zone == nil {
		s.logger.Warn("update of unknown geofence ignored", slog.String("id", id.String()))
		return false, nil
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}
	if req.Vibe != nil {
		zone.Vibe = *req.Vibe
	}
	if req.RadiusMeters != nil {
		if *req.RadiusMeters <= 0 {
			return true, fmt.Errorf("service.Zone.Update: %w", e.ErrInvalidRadius)
		}
		zone.RadiusMeters = *req.RadiusMeters
	}
	if req.AlertOnEnter != nil {
		zone.AlertOnEnter = *req.AlertOnEnter
	}
	if req.AlertOnExit != nil {
		zone.AlertOnExit = *req.AlertOnExit
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	s.persist(ctx)
	return true, nil
}

func (s *zoneService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, z := range s.zones {
		if z.ID == id {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			s.persist(ctx)
			return true, nil
		}
	}

	s.logger.Warn("delete of unknown geofence ignored", slog.String("id", id.String()))
	return false, nil
}

func (s *zoneService) Get(_ context.Context, id uuid.UUID) (*domain.Geofence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone := s.find(id)
	if zone == nil {
		return nil, false
	}
	cp := *zone
	return &cp, true
}

// List returns the collection in insertion order.
func (s *zoneService) List(_ context.Context) ([]*domain.Geofence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Geofence, 0, len(s.zones))
	for _, z := range s.zones {
		cp := *z
		out = append(out, &cp)
	}
	return out, nil
}

func (s *zoneService) ListActive(_ context.Context) ([]*domain.Geofence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Geofence, 0, len(s.zones))
	for _, z := range s.zones {
		if !z.IsActive {
			continue
		}
		cp := *z
		out = append(out, &cp)
	}
	return out, nil
}

func (s *zoneService) find(id uuid.UUID) *domain.Geofence {
	for _, z := range s.zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}
