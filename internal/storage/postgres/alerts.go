package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `id, alert_type, description, lat, lng, report_type,
	reported_at, created_at, user_id, anonymous, resolved, responded_by, expires_at`

func (r *AlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Create"

	if alert == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if alert.Location.Latitude < -90 || alert.Location.Latitude > 90 ||
		alert.Location.Longitude < -180 || alert.Location.Longitude > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	if alert.ReportedAt.IsZero() {
		alert.ReportedAt = alert.CreatedAt
	}
	if alert.RespondedBy == nil {
		alert.RespondedBy = []uuid.UUID{}
	}

	const query = `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		alert.ID,
		alert.AlertType,
		alert.Description,
		alert.Location.Latitude,
		alert.Location.Longitude,
		alert.ReportType,
		alert.ReportedAt,
		alert.CreatedAt,
		alert.UserID,
		alert.Anonymous,
		alert.Resolved,
		alert.RespondedBy,
		alert.ExpiresAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.Get"

	const query = `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`

	alert, err := scanAlert(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alert, nil
}

func (r *AlertRepo) ListActive(ctx context.Context) ([]*domain.Alert, error) {
	const op = "postgres.Alert.ListActive"

	const query = `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC`

	return r.queryAlerts(ctx, op, query)
}

func (r *AlertRepo) ListExpiredVibes(ctx context.Context, now time.Time) ([]*domain.Alert, error) {
	const op = "postgres.Alert.ListExpiredVibes"

	// Inclusive boundary: a report expiring exactly now is swept.
	const query = `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE report_type = 'vibe'
		  AND expires_at IS NOT NULL
		  AND expires_at <= $1
		ORDER BY created_at
	`

	return r.queryAlerts(ctx, op, query, now)
}

func (r *AlertRepo) ListArchivableSOS(ctx context.Context, cutoff time.Time) ([]*domain.Alert, error) {
	const op = "postgres.Alert.ListArchivableSOS"

	const query = `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE report_type = 'sos'
		  AND (created_at <= $1 OR resolved = TRUE)
		ORDER BY created_at
	`

	return r.queryAlerts(ctx, op, query, cutoff)
}

func (r *AlertRepo) Resolve(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.Resolve"

	const query = `UPDATE alerts SET resolved = TRUE WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (r *AlertRepo) AddResponder(ctx context.Context, id, userID uuid.UUID) error {
	const op = "postgres.Alert.AddResponder"

	const query = `
		UPDATE alerts
		SET responded_by = array_append(responded_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(responded_by))
	`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		// either unknown id or already responded; distinguish for the caller
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM alerts WHERE id = $1)`, id).Scan(&exists); err != nil {
			return e.WrapError(ctx, op, err)
		}
		if !exists {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
	}

	return nil
}

func (r *AlertRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.Delete"

	_, err := r.pool.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *AlertRepo) queryAlerts(ctx context.Context, op, query string, args ...any) ([]*domain.Alert, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var a domain.Alert
	err := row.Scan(
		&a.ID,
		&a.AlertType,
		&a.Description,
		&a.Location.Latitude,
		&a.Location.Longitude,
		&a.ReportType,
		&a.ReportedAt,
		&a.CreatedAt,
		&a.UserID,
		&a.Anonymous,
		&a.Resolved,
		&a.RespondedBy,
		&a.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
