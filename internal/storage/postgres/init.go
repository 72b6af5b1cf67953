package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"hyperapp/internal/config"
	"hyperapp/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool    *pgxpool.Pool
	Alert   AlertRepository
	History HistoryRepository
	Stat    StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.EnsureSchema", err)
	}

	pg := &Postgres{
		Pool:    pool,
		Alert:   NewAlertRepo(pool, logger),
		History: NewHistoryRepo(pool, logger),
		Stat:    NewStatsRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

// EnsureSchema creates the report lifecycle tables when they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
CREATE TABLE IF NOT EXISTS alerts (
	id            UUID PRIMARY KEY,
	alert_type    TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	lat           DOUBLE PRECISION NOT NULL,
	lng           DOUBLE PRECISION NOT NULL,
	report_type   TEXT NOT NULL,
	reported_at   TIMESTAMPTZ NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	user_id       UUID,
	anonymous     BOOLEAN NOT NULL DEFAULT FALSE,
	resolved      BOOLEAN NOT NULL DEFAULT FALSE,
	responded_by  UUID[] NOT NULL DEFAULT '{}',
	expires_at    TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_alerts_report_type ON alerts (report_type);
CREATE INDEX IF NOT EXISTS idx_alerts_expires_at ON alerts (expires_at);

CREATE TABLE IF NOT EXISTS vibe_history (
	id          UUID PRIMARY KEY,
	alert_id    UUID NOT NULL,
	alert_type  TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	user_id     UUID,
	anonymous   BOOLEAN NOT NULL DEFAULT FALSE,
	radius_km   DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	expired_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sos_history (
	id                    UUID PRIMARY KEY,
	alert_id              UUID NOT NULL,
	alert_type            TEXT NOT NULL,
	description           TEXT NOT NULL DEFAULT '',
	lat                   DOUBLE PRECISION NOT NULL,
	lng                   DOUBLE PRECISION NOT NULL,
	user_id               UUID,
	anonymous             BOOLEAN NOT NULL DEFAULT FALSE,
	resolved              BOOLEAN NOT NULL DEFAULT FALSE,
	response_time_minutes BIGINT,
	resolution_notes      TEXT NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL,
	archived_at           TIMESTAMPTZ NOT NULL
);
`
	_, err := pool.Exec(ctx, schema)
	return err
}
