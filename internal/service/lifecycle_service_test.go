package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"hyperapp/internal/domain"
	"hyperapp/internal/service"

	mock_service "hyperapp/internal/service/mocks"
)

func vibeAlert(createdAt time.Time) *domain.Alert {
	exp := createdAt.Add(12 * time.Hour)
	return &domain.Alert{
		ID:          uuid.New(),
		AlertType:   "safe",
		Description: "quiet street",
		Location:    domain.Coordinate{Latitude: 40.0, Longitude: -74.0},
		ReportType:  domain.ReportVibe,
		ReportedAt:  createdAt,
		CreatedAt:   createdAt,
		ExpiresAt:   &exp,
	}
}

func sosAlert(createdAt time.Time, resolved bool) *domain.Alert {
	return &domain.Alert{
		ID:          uuid.New(),
		AlertType:   "sos",
		Description: "need help",
		Location:    domain.Coordinate{Latitude: 40.0, Longitude: -74.0},
		ReportType:  domain.ReportSOS,
		ReportedAt:  createdAt,
		CreatedAt:   createdAt,
		Resolved:    resolved,
	}
}

func TestLifecycle_SweepVibes_MigratesExpired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := vibeAlert(now.Add(-13 * time.Hour))

	alerts.EXPECT().ListExpiredVibes(gomock.Any(), now).Return([]*domain.Alert{a}, nil)

	insert := history.EXPECT().
		InsertVibe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.VibeHistoryRecord) error {
			if rec.AlertID != a.ID {
				t.Errorf("wrong alert id: got %s want %s", rec.AlertID, a.ID)
			}
			if rec.AlertType != a.AlertType {
				t.Errorf("alert type lost: got %q want %q", rec.AlertType, a.AlertType)
			}
			if rec.RadiusKm != 0.5 {
				t.Errorf("expected vibe radius 0.5, got %v", rec.RadiusKm)
			}
			if !rec.ExpiredAt.Equal(now) {
				t.Errorf("expected ExpiredAt=%v, got %v", now, rec.ExpiredAt)
			}
			return nil
		})
	// The active row is removed only after the history insert succeeded.
	alerts.EXPECT().Delete(gomock.Any(), a.ID).Return(nil).After(insert)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)
	svc.SetNowFunc(func() time.Time { return now })

	n, err := svc.SweepVibes(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migrated, got %d", n)
	}
}

func TestLifecycle_SweepVibes_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	alerts.EXPECT().ListExpiredVibes(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)

	n, err := svc.SweepVibes(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 migrated, got %d", n)
	}
}

func TestLifecycle_SweepVibes_InsertFailureKeepsReportActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	broken := vibeAlert(now.Add(-13 * time.Hour))
	fine := vibeAlert(now.Add(-14 * time.Hour))

	alerts.EXPECT().ListExpiredVibes(gomock.Any(), now).Return([]*domain.Alert{broken, fine}, nil)

	history.EXPECT().
		InsertVibe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.VibeHistoryRecord) error {
			if rec.AlertID == broken.ID {
				return errors.New("insert failed")
			}
			return nil
		}).Times(2)
	// Only the successfully archived report is deleted; the failed one stays
	// active for the next sweep.
	alerts.EXPECT().Delete(gomock.Any(), fine.ID).Return(nil)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)
	svc.SetNowFunc(func() time.Time { return now })

	n, err := svc.SweepVibes(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migrated, got %d", n)
	}
}

func TestLifecycle_SweepSOS_ResolvedCarriesResponseTime(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := sosAlert(now.Add(-90*time.Minute-30*time.Second), true)

	alerts.EXPECT().ListArchivableSOS(gomock.Any(), now.Add(-12*time.Hour)).Return([]*domain.Alert{a}, nil)

	insert := history.EXPECT().
		InsertSOS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.SOSHistoryRecord) error {
			if !rec.Resolved {
				t.Error("resolved flag lost")
			}
			if rec.ResolutionNotes != "auto-archived after resolution" {
				t.Errorf("unexpected notes: %q", rec.ResolutionNotes)
			}
			if rec.ResponseTimeMinutes == nil {
				t.Fatal("expected response time for resolved report")
			}
			// 90m30s floors to 90 whole minutes.
			if *rec.ResponseTimeMinutes != 90 {
				t.Errorf("expected 90 minutes, got %d", *rec.ResponseTimeMinutes)
			}
			return nil
		})
	alerts.EXPECT().Delete(gomock.Any(), a.ID).Return(nil).After(insert)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)
	svc.SetNowFunc(func() time.Time { return now })

	n, err := svc.SweepSOS(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migrated, got %d", n)
	}
}

func TestLifecycle_SweepSOS_UnresolvedTimeoutHasNoResponseTime(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := sosAlert(now.Add(-13*time.Hour), false)

	alerts.EXPECT().ListArchivableSOS(gomock.Any(), gomock.Any()).Return([]*domain.Alert{a}, nil)

	history.EXPECT().
		InsertSOS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.SOSHistoryRecord) error {
			if rec.Resolved {
				t.Error("unresolved report marked resolved")
			}
			if rec.ResolutionNotes != "auto-archived after 12 hours" {
				t.Errorf("unexpected notes: %q", rec.ResolutionNotes)
			}
			if rec.ResponseTimeMinutes != nil {
				t.Errorf("expected nil response time, got %d", *rec.ResponseTimeMinutes)
			}
			return nil
		})
	alerts.EXPECT().Delete(gomock.Any(), a.ID).Return(nil)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)
	svc.SetNowFunc(func() time.Time { return now })

	n, err := svc.SweepSOS(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 migrated, got %d", n)
	}
}

func TestLifecycle_SweepSOS_ListErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	wantErr := errors.New("db gone")
	alerts.EXPECT().ListArchivableSOS(gomock.Any(), gomock.Any()).Return(nil, wantErr)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)

	if _, err := svc.SweepSOS(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestLifecycle_BackToBackSweepsAreIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	history := mock_service.NewMockHistoryRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := vibeAlert(now.Add(-13 * time.Hour))

	gomock.InOrder(
		alerts.EXPECT().ListExpiredVibes(gomock.Any(), now).Return([]*domain.Alert{a}, nil),
		// After the first sweep deleted the row, the second finds nothing.
		alerts.EXPECT().ListExpiredVibes(gomock.Any(), now).Return(nil, nil),
	)
	history.EXPECT().InsertVibe(gomock.Any(), gomock.Any()).Return(nil)
	alerts.EXPECT().Delete(gomock.Any(), a.ID).Return(nil)

	svc := service.NewLifecycleService(alerts, history, nil, discardLogger(), 0.5, 12*time.Hour)
	svc.SetNowFunc(func() time.Time { return now })

	ctx := context.Background()
	if n, _ := svc.SweepVibes(ctx); n != 1 {
		t.Fatalf("first sweep: expected 1, got %d", n)
	}
	if n, _ := svc.SweepVibes(ctx); n != 0 {
		t.Fatalf("second sweep: expected 0, got %d", n)
	}
}
