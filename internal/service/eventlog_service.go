package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"hyperapp/internal/domain"
)

const (
	geofenceEventsKey = "geofence_events:v1"
	eventLogCap       = 50
)

// eventLogService holds the capped enter/exit history, most recent first.
// Truncation happens on append, not with a circular index: the tail simply
// falls off once the cap is reached.
type eventLogService struct {
	mu     sync.Mutex
	kv     KVStore
	logger *slog.Logger
	events []domain.GeofenceEvent
}

func NewEventLogService(ctx context.Context, kv KVStore, logger *slog.Logger) EventLog {
	s := &eventLogService{kv: kv, logger: logger}
	s.load(ctx)
	return s
}

func (s *eventLogService) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, geofenceEventsKey)
	if err != nil {
		s.logger.Error("event log load failed, starting empty", slog.Any("error", err))
		return
	}
	if data == nil {
		return
	}
	var events []domain.GeofenceEvent
	if err := json.Unmarshal(data, &events); err != nil {
		s.logger.Warn("corrupt event log data, starting empty", slog.Any("error", err))
		return
	}
	if len(events) > eventLogCap {
		events = events[:eventLogCap]
	}
	s.events = events
}

func (s *eventLogService) Append(ctx context.Context, ev domain.GeofenceEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]domain.GeofenceEvent{ev}, s.events...)
	if len(s.events) > eventLogCap {
		s.events = s.events[:eventLogCap]
	}

	data, err := json.Marshal(s.events)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, geofenceEventsKey, data); err != nil {
		s.logger.Error("event log persist failed", slog.Any("error", err))
		return err
	}
	return nil
}

func (s *eventLogService) List(_ context.Context, limit int) ([]domain.GeofenceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}

	out := make([]domain.GeofenceEvent, limit)
	copy(out, s.events[:limit])
	return out, nil
}
