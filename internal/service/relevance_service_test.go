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

func report(alertType string, rt domain.ReportType, lat, lng float64) *domain.Alert {
	return &domain.Alert{
		ID:         uuid.New(),
		AlertType:  alertType,
		Location:   domain.Coordinate{Latitude: lat, Longitude: lng},
		ReportType: rt,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestWithinRadius_FiltersByDistance(t *testing.T) {
	t.Parallel()

	origin := domain.Coordinate{Latitude: 40.0, Longitude: -74.0}
	near := report("safe", domain.ReportVibe, 40.001, -74.0) // ~110m
	far := report("safe", domain.ReportVibe, 40.1, -74.0)    // ~11km

	got := service.WithinRadius(origin, []*domain.Alert{near, far}, 1.0)
	if len(got) != 1 || got[0].ID != near.ID {
		t.Fatalf("expected only the near report, got %d", len(got))
	}
}

func TestRelevance_NearbyAlerts_ZeroRadiusUsesDefault(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	inDefault := report("dangerous", domain.ReportEvent, 40.05, -74.0) // ~5.6km
	outside := report("dangerous", domain.ReportEvent, 41.0, -74.0)    // ~111km
	alerts.EXPECT().ListActive(gomock.Any()).Return([]*domain.Alert{inDefault, outside}, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.NearbyAlerts(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0}, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != inDefault.ID {
		t.Fatalf("expected the 10km default to apply, got %d reports", len(got))
	}
}

func TestRelevance_NearbyVibes_FixedRadiusAndTypeFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	vibe := report("safe", domain.ReportVibe, 40.0, -74.0)
	event := report("concert", domain.ReportEvent, 40.0, -74.0)
	farVibe := report("safe", domain.ReportVibe, 40.01, -74.0) // ~1.1km, past 0.5km
	alerts.EXPECT().ListActive(gomock.Any()).Return([]*domain.Alert{vibe, event, farVibe}, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.NearbyVibes(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != vibe.ID {
		t.Fatalf("expected only the hyper-local vibe report, got %d", len(got))
	}
}

func TestRelevance_Neighborhoods_SameCellMerges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	// Both coordinates round to the same 0.005 degree cell.
	a := report("safe", domain.ReportVibe, 40.0001, -74.0001)
	b := report("safe", domain.ReportVibe, 40.0009, -74.0009)
	alerts.EXPECT().ListActive(gomock.Any()).Return([]*domain.Alert{a, b}, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.Neighborhoods(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(got))
	}
	c := got[0]
	if c.ReportCount != 2 {
		t.Errorf("expected 2 reports in cluster, got %d", c.ReportCount)
	}
	if c.DominantVibe != "safe" {
		t.Errorf("expected dominant vibe safe, got %q", c.DominantVibe)
	}
	if c.VibeScore != 90 {
		t.Errorf("expected score 90 for all-safe cluster, got %d", c.VibeScore)
	}
	if c.Location.Latitude != 40.0 || c.Location.Longitude != -74.0 {
		t.Errorf("expected cell anchor (40.0, -74.0), got %+v", c.Location)
	}
}

func TestRelevance_Neighborhoods_EventsCountButDoNotScore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	vibe := report("dangerous", domain.ReportVibe, 40.0, -74.0)
	event := report("street fair", domain.ReportEvent, 40.0, -74.0)
	sos := report("sos", domain.ReportSOS, 40.0, -74.0) // excluded from clustering
	alerts.EXPECT().ListActive(gomock.Any()).Return([]*domain.Alert{vibe, event, sos}, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.Neighborhoods(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(got))
	}
	if got[0].ReportCount != 2 {
		t.Errorf("expected vibe+event count 2, got %d", got[0].ReportCount)
	}
	if got[0].VibeScore != 20 {
		t.Errorf("score must come from vibes only: expected 20, got %d", got[0].VibeScore)
	}
	if got[0].DominantVibe != "dangerous" {
		t.Errorf("expected dominant dangerous, got %q", got[0].DominantVibe)
	}
}

func TestRelevance_Neighborhoods_CappedAtFiveNearest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	// Seven distinct cells at increasing distance north of the origin.
	var reports []*domain.Alert
	for i := 0; i < 7; i++ {
		reports = append(reports, report("calm", domain.ReportVibe, 40.0+0.01*float64(i), -74.0))
	}
	alerts.EXPECT().ListActive(gomock.Any()).Return(reports, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.Neighborhoods(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected cap of 5 clusters, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DistanceKm < got[i-1].DistanceKm {
			t.Fatalf("clusters not sorted by distance: %v then %v", got[i-1].DistanceKm, got[i].DistanceKm)
		}
	}
}

func TestRelevance_CommunityScore_EmptyAreaIsOptimistic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)
	alerts.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.CommunityScore(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Score != 100 || got.DominantVibe != "safe" || got.ReportCount != 0 {
		t.Fatalf("expected optimistic default {100 safe 0}, got %+v", got)
	}
}

func TestRelevance_CommunityScore_AveragesListedTypes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	active := []*domain.Alert{
		report("safe", domain.ReportVibe, 40.0, -74.0),       // 100
		report("dangerous", domain.ReportVibe, 40.0, -74.0),  // 10
		report("lgbtqia", domain.ReportVibe, 40.0, -74.0),    // unlisted: excluded
	}
	alerts.EXPECT().ListActive(gomock.Any()).Return(active, nil)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	got, err := svc.CommunityScore(context.Background(), domain.Coordinate{Latitude: 40.0, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ReportCount != 2 {
		t.Errorf("unlisted type must not count: expected 2, got %d", got.ReportCount)
	}
	if got.Score != 55 {
		t.Errorf("expected round((100+10)/2)=55, got %d", got.Score)
	}
	// Tie on counts resolves to the first type encountered.
	if got.DominantVibe != "safe" {
		t.Errorf("expected dominant safe on tie, got %q", got.DominantVibe)
	}
}

func TestRelevance_SourceErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockActiveAlertSource(ctrl)

	wantErr := errors.New("db gone")
	alerts.EXPECT().ListActive(gomock.Any()).Return(nil, wantErr)

	svc := service.NewRelevanceService(alerts, discardLogger(), 10.0, 0.5)

	if _, err := svc.Neighborhoods(context.Background(), domain.Coordinate{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
