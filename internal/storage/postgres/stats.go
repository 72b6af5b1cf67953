package postgres

import (
	"context"
	"log/slog"

	"hyperapp/internal/domain"
	"hyperapp/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (r *StatsRepo) CountActiveByType(ctx context.Context) (map[domain.ReportType]int64, error) {
	const op = "postgres.Stats.CountActiveByType"

	const query = `SELECT report_type, COUNT(*) FROM alerts GROUP BY report_type`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.ReportType]int64)
	for rows.Next() {
		var rt domain.ReportType
		var n int64
		if err := rows.Scan(&rt, &n); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts[rt] = n
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (r *StatsRepo) CountArchived(ctx context.Context) (int64, int64, error) {
	const op = "postgres.Stats.CountArchived"

	var vibes, sos int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vibe_history`).Scan(&vibes); err != nil {
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, e.WrapError(ctx, op, err)
	}
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sos_history`).Scan(&sos); err != nil {
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, e.WrapError(ctx, op, err)
	}

	return vibes, sos, nil
}
