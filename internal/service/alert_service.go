package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	"github.com/google/uuid"
)

type alertService struct {
	repo     AlertRepository
	notifier Notifier
	logger   *slog.Logger
	vibeTTL  time.Duration
	now      func() time.Time
}

func NewAlertService(repo AlertRepository, notifier Notifier, logger *slog.Logger, vibeTTL time.Duration) AlertOperations {
	if vibeTTL <= 0 {
		vibeTTL = 12 * time.Hour
	}
	return &alertService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		vibeTTL:  vibeTTL,
		now:      time.Now,
	}
}

func (s *alertService) Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("service.Alert.Create: %w", e.ErrInvalidCoordinates)
	}

	now := s.now().UTC()
	alert := &domain.Alert{
		ID:          uuid.New(),
		AlertType:   req.AlertType,
		Description: req.Description,
		Location:    domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		ReportType:  req.ReportType,
		ReportedAt:  now,
		CreatedAt:   now,
		UserID:      req.UserID,
		Anonymous:   req.Anonymous,
		RespondedBy: []uuid.UUID{},
	}

	// Only vibe reports carry an expiry; SOS reports age out or resolve.
	if req.ReportType == domain.ReportVibe {
		exp := now.Add(s.vibeTTL)
		alert.ExpiresAt = &exp
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Info("alert created",
		slog.String("id", alert.ID.String()),
		slog.String("report_type", string(alert.ReportType)),
		slog.String("alert_type", alert.AlertType),
	)

	return alert, nil
}

func (s *alertService) TriggerSOS(ctx context.Context, req domain.TriggerSOSRequest) (*domain.Alert, error) {
	alert, err := s.Create(ctx, domain.CreateAlertRequest{
		AlertType:   "sos",
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ReportType:  domain.ReportSOS,
		UserID:      req.UserID,
		Anonymous:   req.Anonymous,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, "SOS alert",
		fmt.Sprintf("SOS reported at %.5f, %.5f", req.Latitude, req.Longitude)); err != nil {
		s.logger.Warn("sos notification failed", slog.Any("error", err))
	}

	return alert, nil
}

func (s *alertService) Resolve(ctx context.Context, id uuid.UUID) error {
	return s.repo.Resolve(ctx, id)
}

func (s *alertService) Respond(ctx context.Context, id, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("service.Alert.Respond: %w", e.ErrInvalidInput)
	}
	return s.repo.AddResponder(ctx, id, userID)
}
