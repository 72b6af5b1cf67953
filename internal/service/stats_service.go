package service

import (
	"context"

	"hyperapp/internal/domain"
)

type statsService struct {
	stats StatsSource
	zones ZoneStore
}

func NewStatsService(stats StatsSource, zones ZoneStore) StatsService {
	return &statsService{stats: stats, zones: zones}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.EngineStats, error) {
	counts, err := s.stats.CountActiveByType(ctx)
	if err != nil {
		return nil, err
	}

	archivedVibes, archivedSOS, err := s.stats.CountArchived(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.zones.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.EngineStats{
		ActiveVibes:   counts[domain.ReportVibe],
		ActiveEvents:  counts[domain.ReportEvent],
		ActiveSOS:     counts[domain.ReportSOS],
		ArchivedVibes: archivedVibes,
		ArchivedSOS:   archivedSOS,
		ActiveZones:   len(active),
	}, nil
}
