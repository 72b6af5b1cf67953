package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/internal/metrics"

	"github.com/google/uuid"
)

const (
	notesAfterResolution = "auto-archived after resolution"
	notesAfterTimeout    = "auto-archived after 12 hours"
)

// LifecycleService moves expired vibe reports and stale or resolved SOS
// reports from the active set into the append-only history stores. Both
// sweeps are idempotent: with nothing expired they are no-ops.
//
// Ordering: the history insert must be confirmed before the active delete is
// issued, so a crash mid-sweep leaves a duplicate rather than a loss.
type LifecycleService struct {
	alerts       AlertRepository
	history      HistoryRepository
	metrics      *metrics.Collector
	logger       *slog.Logger
	vibeRadiusKm float64
	maxAge       time.Duration
	now          func() time.Time
}

func NewLifecycleService(
	alerts AlertRepository,
	history HistoryRepository,
	collector *metrics.Collector,
	logger *slog.Logger,
	vibeRadiusKm float64,
	maxAge time.Duration,
) *LifecycleService {
	if vibeRadiusKm <= 0 {
		vibeRadiusKm = 0.5
	}
	if maxAge <= 0 {
		maxAge = 12 * time.Hour
	}
	return &LifecycleService{
		alerts:       alerts,
		history:      history,
		metrics:      collector,
		logger:       logger,
		vibeRadiusKm: vibeRadiusKm,
		maxAge:       maxAge,
		now:          time.Now,
	}
}

func (s *LifecycleService) SetNowFunc(now func() time.Time) {
	s.now = now
}

func (s *LifecycleService) SweepVibes(ctx context.Context) (int, error) {
	now := s.now().UTC()

	expired, err := s.alerts.ListExpiredVibes(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("lifecycle.SweepVibes: %w", err)
	}

	migrated := 0
	for _, a := range expired {
		rec := &domain.VibeHistoryRecord{
			ID:          uuid.New(),
			AlertID:     a.ID,
			AlertType:   a.AlertType,
			Description: a.Description,
			Location:    a.Location,
			UserID:      a.UserID,
			Anonymous:   a.Anonymous,
			RadiusKm:    s.vibeRadiusKm,
			CreatedAt:   a.CreatedAt,
			ExpiredAt:   now,
		}

		if err := s.history.InsertVibe(ctx, rec); err != nil {
			s.logger.Error("vibe history insert failed, report kept active",
				slog.String("alert_id", a.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		if err := s.alerts.Delete(ctx, a.ID); err != nil {
			// duplicate on the next sweep is tolerable, a loss is not
			s.logger.Error("active vibe delete failed",
				slog.String("alert_id", a.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		s.logger.Info("vibe sweep done", slog.Int("migrated", migrated))
	}
	s.metrics.MigrationsObserved("vibe", migrated)

	return migrated, nil
}

func (s *LifecycleService) SweepSOS(ctx context.Context) (int, error) {
	now := s.now().UTC()
	cutoff := now.Add(-s.maxAge)

	stale, err := s.alerts.ListArchivableSOS(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("lifecycle.SweepSOS: %w", err)
	}

	migrated := 0
	for _, a := range stale {
		notes := notesAfterTimeout
		var responseMinutes *int64
		if a.Resolved {
			notes = notesAfterResolution
			mins := int64(now.Sub(a.CreatedAt) / time.Minute)
			responseMinutes = &mins
		}

		rec := &domain.SOSHistoryRecord{
			ID:                  uuid.New(),
			AlertID:             a.ID,
			AlertType:           a.AlertType,
			Description:         a.Description,
			Location:            a.Location,
			UserID:              a.UserID,
			Anonymous:           a.Anonymous,
			Resolved:            a.Resolved,
			ResponseTimeMinutes: responseMinutes,
			ResolutionNotes:     notes,
			CreatedAt:           a.CreatedAt,
			ArchivedAt:          now,
		}

		if err := s.history.InsertSOS(ctx, rec); err != nil {
			s.logger.Error("sos history insert failed, report kept active",
				slog.String("alert_id", a.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		if err := s.alerts.Delete(ctx, a.ID); err != nil {
			s.logger.Error("active sos delete failed",
				slog.String("alert_id", a.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		s.logger.Info("sos sweep done", slog.Int("migrated", migrated))
	}
	s.metrics.MigrationsObserved("sos", migrated)

	return migrated, nil
}
