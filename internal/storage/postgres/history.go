package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHistoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *HistoryRepo {
	return &HistoryRepo{pool: pool, logger: logger}
}

func (r *HistoryRepo) InsertVibe(ctx context.Context, rec *domain.VibeHistoryRecord) error {
	const op = "postgres.History.InsertVibe"

	if rec == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.ExpiredAt.IsZero() {
		rec.ExpiredAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO vibe_history
			(id, alert_id, alert_type, description, lat, lng, user_id, anonymous, radius_km, created_at, expired_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.AlertID,
		rec.AlertType,
		rec.Description,
		rec.Location.Latitude,
		rec.Location.Longitude,
		rec.UserID,
		rec.Anonymous,
		rec.RadiusKm,
		rec.CreatedAt,
		rec.ExpiredAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *HistoryRepo) InsertSOS(ctx context.Context, rec *domain.SOSHistoryRecord) error {
	const op = "postgres.History.InsertSOS"

	if rec == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.ArchivedAt.IsZero() {
		rec.ArchivedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO sos_history
			(id, alert_id, alert_type, description, lat, lng, user_id, anonymous,
			 resolved, response_time_minutes, resolution_notes, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.AlertID,
		rec.AlertType,
		rec.Description,
		rec.Location.Latitude,
		rec.Location.Longitude,
		rec.UserID,
		rec.Anonymous,
		rec.Resolved,
		rec.ResponseTimeMinutes,
		rec.ResolutionNotes,
		rec.CreatedAt,
		rec.ArchivedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
