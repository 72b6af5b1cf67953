//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := EnsureSchema(ctx, testPool); err != nil {
		fmt.Println("EnsureSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE alerts, vibe_history, sos_history`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func vibeRow(expiresAt time.Time) *domain.Alert {
	return &domain.Alert{
		AlertType:  "vibe",
		Location:   domain.Coordinate{Latitude: 40.0, Longitude: -74.0},
		ReportType: domain.ReportVibe,
		ExpiresAt:  &expiresAt,
	}
}

func TestAlertRepo_Create_SetsDefaults(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	alert := &domain.Alert{
		AlertType:  "suspicious",
		Location:   domain.Coordinate{Latitude: 49.281441, Longitude: -123.055913},
		ReportType: domain.ReportVibe,
	}

	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if alert.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if alert.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
	if !alert.ReportedAt.Equal(alert.CreatedAt) {
		t.Fatalf("expected ReportedAt defaulted to CreatedAt")
	}

	got, err := repo.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Location.Latitude != alert.Location.Latitude || got.Location.Longitude != alert.Location.Longitude {
		t.Fatalf("lat/lng round-trip mismatch got=(%v,%v) want=(%v,%v)",
			got.Location.Latitude, got.Location.Longitude, alert.Location.Latitude, alert.Location.Longitude)
	}
	if got.AlertType != "suspicious" || got.ReportType != domain.ReportVibe {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestAlertRepo_Create_RejectsBadCoordinates(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	alert := &domain.Alert{
		AlertType:  "safe",
		Location:   domain.Coordinate{Latitude: 95, Longitude: 0},
		ReportType: domain.ReportVibe,
	}

	err := repo.Create(context.Background(), alert)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestAlertRepo_Get_NotFound(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAlertRepo_ListExpiredVibes_InclusiveBoundary(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)
	now := time.Now().UTC().Truncate(time.Microsecond)

	past := vibeRow(now.Add(-time.Hour))
	exact := vibeRow(now)
	future := vibeRow(now.Add(time.Hour))

	for _, a := range []*domain.Alert{past, exact, future} {
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sos := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
	}
	if err := repo.Create(context.Background(), sos); err != nil {
		t.Fatalf("Create sos: %v", err)
	}

	expired, err := repo.ListExpiredVibes(context.Background(), now)
	if err != nil {
		t.Fatalf("ListExpiredVibes: %v", err)
	}
	if len(expired) != 2 {
		t.Fatalf("expected 2 expired vibes got=%d", len(expired))
	}
	for _, a := range expired {
		if a.ID == future.ID || a.ID == sos.ID {
			t.Fatalf("unexpected row in expired set: %v", a.ID)
		}
	}
}

func TestAlertRepo_ListArchivableSOS(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)
	now := time.Now().UTC().Truncate(time.Microsecond)
	cutoff := now.Add(-12 * time.Hour)

	old := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
		CreatedAt:  now.Add(-13 * time.Hour),
	}
	resolvedFresh := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
		CreatedAt:  now.Add(-time.Hour),
		Resolved:   true,
	}
	fresh := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
		CreatedAt:  now.Add(-time.Hour),
	}

	for _, a := range []*domain.Alert{old, resolvedFresh, fresh} {
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListArchivableSOS(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("ListArchivableSOS: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 archivable rows got=%d", len(got))
	}
	for _, a := range got {
		if a.ID == fresh.ID {
			t.Fatalf("fresh unresolved SOS must stay active")
		}
	}
}

func TestAlertRepo_Resolve(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	sos := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
	}
	if err := repo.Create(context.Background(), sos); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Resolve(context.Background(), sos.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	got, err := repo.Get(context.Background(), sos.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Resolved {
		t.Fatalf("expected resolved=true")
	}

	if err := repo.Resolve(context.Background(), uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAlertRepo_AddResponder_Idempotent(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	sos := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
	}
	if err := repo.Create(context.Background(), sos); err != nil {
		t.Fatalf("Create: %v", err)
	}

	responder := uuid.New()
	if err := repo.AddResponder(context.Background(), sos.ID, responder); err != nil {
		t.Fatalf("AddResponder: %v", err)
	}
	if err := repo.AddResponder(context.Background(), sos.ID, responder); err != nil {
		t.Fatalf("AddResponder repeat: %v", err)
	}

	got, err := repo.Get(context.Background(), sos.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.RespondedBy) != 1 || got.RespondedBy[0] != responder {
		t.Fatalf("expected single responder, got: %v", got.RespondedBy)
	}

	if err := repo.AddResponder(context.Background(), uuid.New(), responder); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAlertRepo_Delete_Gone(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)

	sos := &domain.Alert{
		AlertType:  "sos",
		Location:   domain.Coordinate{Latitude: 40, Longitude: -74},
		ReportType: domain.ReportSOS,
	}
	if err := repo.Create(context.Background(), sos); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), sos.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Get(context.Background(), sos.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestHistoryAndStats_RoundTrip(t *testing.T) {

	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger)
	history := NewHistoryRepo(testPool, testLogger)
	stats := NewStatsRepo(testPool, testLogger)
	now := time.Now().UTC().Truncate(time.Microsecond)

	vibe := vibeRow(now.Add(12 * time.Hour))
	if err := alerts.Create(context.Background(), vibe); err != nil {
		t.Fatalf("Create vibe: %v", err)
	}

	if err := history.InsertVibe(context.Background(), &domain.VibeHistoryRecord{
		AlertID:   uuid.New(),
		AlertType: "calm",
		Location:  domain.Coordinate{Latitude: 40, Longitude: -74},
		RadiusKm:  0.5,
		CreatedAt: now.Add(-13 * time.Hour),
		ExpiredAt: now,
	}); err != nil {
		t.Fatalf("InsertVibe: %v", err)
	}

	minutes := int64(42)
	if err := history.InsertSOS(context.Background(), &domain.SOSHistoryRecord{
		AlertID:             uuid.New(),
		AlertType:           "sos",
		Location:            domain.Coordinate{Latitude: 40, Longitude: -74},
		Resolved:            true,
		ResponseTimeMinutes: &minutes,
		ResolutionNotes:     "auto-archived after resolution",
		CreatedAt:           now.Add(-time.Hour),
		ArchivedAt:          now,
	}); err != nil {
		t.Fatalf("InsertSOS: %v", err)
	}

	counts, err := stats.CountActiveByType(context.Background())
	if err != nil {
		t.Fatalf("CountActiveByType: %v", err)
	}
	if counts[domain.ReportVibe] != 1 {
		t.Fatalf("expected 1 active vibe, got: %v", counts)
	}

	vibes, sos, err := stats.CountArchived(context.Background())
	if err != nil {
		t.Fatalf("CountArchived: %v", err)
	}
	if vibes != 1 || sos != 1 {
		t.Fatalf("expected archived counts (1,1) got (%d,%d)", vibes, sos)
	}
}
