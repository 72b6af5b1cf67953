package postgres

import (
	"context"
	"time"

	"hyperapp/internal/domain"

	"github.com/google/uuid"
)

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

type StatsRepository interface {
	CountActiveByType(ctx context.Context) (map[domain.ReportType]int64, error)
	CountArchived(ctx context.Context) (vibes int64, sos int64, err error)
}

func (p *Postgres) Alerts() AlertRepository      { return p.Alert }
func (p *Postgres) Histories() HistoryRepository { return p.History }
func (p *Postgres) Stats() StatsRepository       { return p.Stat }
