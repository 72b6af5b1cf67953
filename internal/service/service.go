package service

import (
	"context"
	"time"

	"hyperapp/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// KVStore is the durable key-value persistence collaborator. Get returns
// (nil, nil) for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Notifier delivers a user-facing notification. Fire-and-forget: failures are
// logged by callers and never abort the surrounding operation.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// EventSink is the proximity monitor's view of the event log.
type EventSink interface {
	Append(ctx context.Context, ev domain.GeofenceEvent) error
}

// ActiveZoneSource feeds the proximity monitor.
type ActiveZoneSource interface {
	ListActive(ctx context.Context) ([]*domain.Geofence, error)
}

// ActiveAlertSource feeds the relevance filter.
type ActiveAlertSource interface {
	ListActive(ctx context.Context) ([]*domain.Alert, error)
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListActive(ctx context.Context) ([]*domain.Alert, error)
	ListExpiredVibes(ctx context.Context, now time.Time) ([]*domain.Alert, error)
	ListArchivableSOS(ctx context.Context, cutoff time.Time) ([]*domain.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) error
	AddResponder(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HistoryRepository interface {
	InsertVibe(ctx context.Context, rec *domain.VibeHistoryRecord) error
	InsertSOS(ctx context.Context, rec *domain.SOSHistoryRecord) error
}

type StatsSource interface {
	CountActiveByType(ctx context.Context) (map[domain.ReportType]int64, error)
	CountArchived(ctx context.Context) (vibes int64, sos int64, err error)
}

// ZoneStore is the geofence collection. Update and Delete report not-found
// through the bool return instead of an error, mirroring the tolerant
// behavior callers rely on.
type ZoneStore interface {
	Create(ctx context.Context, req domain.CreateGeofenceRequest) (*domain.Geofence, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateGeofenceRequest) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Geofence, bool)
	List(ctx context.Context) ([]*domain.Geofence, error)
	ListActive(ctx context.Context) ([]*domain.Geofence, error)
}

type EventLog interface {
	Append(ctx context.Context, ev domain.GeofenceEvent) error
	List(ctx context.Context, limit int) ([]domain.GeofenceEvent, error)
}

type ProximityMonitor interface {
	Evaluate(ctx context.Context, pos domain.Position) ([]Transition, error)
	Forget(id uuid.UUID)
}

type RelevanceFilter interface {
	NearbyAlerts(ctx context.Context, pos domain.Coordinate, radiusKm float64) ([]*domain.Alert, error)
	NearbyVibes(ctx context.Context, pos domain.Coordinate) ([]*domain.Alert, error)
	Neighborhoods(ctx context.Context, pos domain.Coordinate) ([]domain.NeighborhoodCluster, error)
	CommunityScore(ctx context.Context, pos domain.Coordinate) (*domain.CommunityScore, error)
}

type AlertOperations interface {
	Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, error)
	TriggerSOS(ctx context.Context, req domain.TriggerSOSRequest) (*domain.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID) error
	Respond(ctx context.Context, id, userID uuid.UUID) error
}

type LifecycleMigrator interface {
	SweepVibes(ctx context.Context) (int, error)
	SweepSOS(ctx context.Context) (int, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.EngineStats, error)
}

type Service struct {
	Zones     ZoneStore
	Monitor   ProximityMonitor
	Events    EventLog
	Relevance RelevanceFilter
	Alerts    AlertOperations
	Lifecycle LifecycleMigrator
	Stats     StatsService
}

func NewService(
	zones ZoneStore,
	monitor ProximityMonitor,
	events EventLog,
	relevance RelevanceFilter,
	alerts AlertOperations,
	lifecycle LifecycleMigrator,
	stats StatsService,
) *Service {
	return &Service{
		Zones:     zones,
		Monitor:   monitor,
		Events:    events,
		Relevance: relevance,
		Alerts:    alerts,
		Lifecycle: lifecycle,
		Stats:     stats,
	}
}

// DeleteGeofence removes the zone and purges its membership state so a
// recreated zone starts from the default "outside" assumption.
func (s *Service) DeleteGeofence(ctx context.Context, id uuid.UUID) (bool, error) {
	found, err := s.Zones.Delete(ctx, id)
	if err != nil {
		return found, err
	}
	if found {
		s.Monitor.Forget(id)
	}
	return found, nil
}
