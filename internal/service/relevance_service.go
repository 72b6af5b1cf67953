package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"hyperapp/internal/domain"
	"hyperapp/internal/geo"
)

// Per-cluster vibe weights. Types outside the table score the neutral 50.
var clusterVibeWeights = map[string]int{
	"safe":       90,
	"calm":       80,
	"lgbtqia":    95,
	"crowded":    60,
	"suspicious": 40,
	"dangerous":  20,
}

const clusterDefaultWeight = 50

// Community score weights. Types outside the table are excluded from the
// average rather than defaulted.
var communityVibeWeights = map[string]int{
	"safe":       100,
	"calm":       85,
	"crowded":    60,
	"suspicious": 30,
	"dangerous":  10,
}

const maxNeighborhoods = 5

// cellScale rounds coordinates onto a ~0.005 degree grid, roughly 500m cells
// at mid-latitudes.
const cellScale = 200.0

type relevanceService struct {
	alerts          ActiveAlertSource
	logger          *slog.Logger
	defaultRadiusKm float64
	vibeRadiusKm    float64
}

func NewRelevanceService(alerts ActiveAlertSource, logger *slog.Logger, defaultRadiusKm, vibeRadiusKm float64) RelevanceFilter {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = 10.0
	}
	if vibeRadiusKm <= 0 {
		vibeRadiusKm = 0.5
	}
	return &relevanceService{
		alerts:          alerts,
		logger:          logger,
		defaultRadiusKm: defaultRadiusKm,
		vibeRadiusKm:    vibeRadiusKm,
	}
}

// WithinRadius filters reports to those within radiusKm of pos.
func WithinRadius(pos domain.Coordinate, reports []*domain.Alert, radiusKm float64) []*domain.Alert {
	out := make([]*domain.Alert, 0, len(reports))
	for _, r := range reports {
		if geo.DistanceKm(pos, r.Location) <= radiusKm {
			out = append(out, r)
		}
	}
	return out
}

func (s *relevanceService) NearbyAlerts(ctx context.Context, pos domain.Coordinate, radiusKm float64) ([]*domain.Alert, error) {
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	active, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("relevance.NearbyAlerts: %w", err)
	}

	nearby := WithinRadius(pos, active, radiusKm)
	s.logger.Debug("nearby filter done",
		slog.Int("total", len(active)),
		slog.Int("nearby", len(nearby)),
		slog.Float64("radius_km", radiusKm),
	)
	return nearby, nil
}

// NearbyVibes applies the fixed hyper-local vibe radius regardless of the
// user's general radius preference.
func (s *relevanceService) NearbyVibes(ctx context.Context, pos domain.Coordinate) ([]*domain.Alert, error) {
	active, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("relevance.NearbyVibes: %w", err)
	}

	out := make([]*domain.Alert, 0, len(active))
	for _, a := range WithinRadius(pos, active, s.vibeRadiusKm) {
		if a.ReportType == domain.ReportVibe {
			out = append(out, a)
		}
	}
	return out, nil
}

type cell struct {
	anchor domain.Coordinate
	vibes  []*domain.Alert
	events int
}

func (s *relevanceService) Neighborhoods(ctx context.Context, pos domain.Coordinate) ([]domain.NeighborhoodCluster, error) {
	active, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("relevance.Neighborhoods: %w", err)
	}

	cells := make(map[string]*cell)
	var order []string

	for _, a := range WithinRadius(pos, active, s.defaultRadiusKm) {
		if a.ReportType != domain.ReportVibe && a.ReportType != domain.ReportEvent {
			continue
		}

		latCell := math.Round(a.Location.Latitude*cellScale) / cellScale
		lngCell := math.Round(a.Location.Longitude*cellScale) / cellScale
		key := fmt.Sprintf("%.3f:%.3f", latCell, lngCell)

		c, ok := cells[key]
		if !ok {
			c = &cell{anchor: domain.Coordinate{Latitude: latCell, Longitude: lngCell}}
			cells[key] = c
			order = append(order, key)
		}
		if a.ReportType == domain.ReportVibe {
			c.vibes = append(c.vibes, a)
		} else {
			c.events++
		}
	}

	clusters := make([]domain.NeighborhoodCluster, 0, len(order))
	for _, key := range order {
		c := cells[key]
		clusters = append(clusters, domain.NeighborhoodCluster{
			Location:     c.anchor,
			DominantVibe: dominantVibe(c.vibes),
			VibeScore:    vibeScore(c.vibes),
			ReportCount:  len(c.vibes) + c.events,
			DistanceKm:   math.Round(geo.DistanceKm(pos, c.anchor)*10) / 10,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].DistanceKm < clusters[j].DistanceKm
	})
	if len(clusters) > maxNeighborhoods {
		clusters = clusters[:maxNeighborhoods]
	}

	return clusters, nil
}

func (s *relevanceService) CommunityScore(ctx context.Context, pos domain.Coordinate) (*domain.CommunityScore, error) {
	vibes, err := s.NearbyVibes(ctx, pos)
	if err != nil {
		return nil, fmt.Errorf("relevance.CommunityScore: %w", err)
	}

	sum, n := 0, 0
	counts := make(map[string]int)
	var seen []string
	for _, v := range vibes {
		w, ok := communityVibeWeights[v.AlertType]
		if !ok {
			continue
		}
		sum += w
		n++
		if counts[v.AlertType] == 0 {
			seen = append(seen, v.AlertType)
		}
		counts[v.AlertType]++
	}

	// No negative signal is read as a positive one: an empty area scores a
	// full 100, not an unknown.
	if n == 0 {
		return &domain.CommunityScore{Score: 100, DominantVibe: "safe"}, nil
	}

	dominant, best := "safe", 0
	for _, t := range seen {
		if counts[t] > best {
			best = counts[t]
			dominant = t
		}
	}

	return &domain.CommunityScore{
		Score:        int(math.Round(float64(sum) / float64(n))),
		DominantVibe: dominant,
		ReportCount:  n,
	}, nil
}

// dominantVibe picks the most frequent vibe type; ties go to the type seen
// first because the comparison is strict.
func dominantVibe(vibes []*domain.Alert) string {
	counts := make(map[string]int)
	var seen []string
	for _, v := range vibes {
		if counts[v.AlertType] == 0 {
			seen = append(seen, v.AlertType)
		}
		counts[v.AlertType]++
	}

	dominant, best := "", 0
	for _, t := range seen {
		if counts[t] > best {
			best = counts[t]
			dominant = t
		}
	}
	return dominant
}

func vibeScore(vibes []*domain.Alert) int {
	if len(vibes) == 0 {
		return clusterDefaultWeight
	}

	sum := 0
	for _, v := range vibes {
		w, ok := clusterVibeWeights[v.AlertType]
		if !ok {
			w = clusterDefaultWeight
		}
		sum += w
	}
	return int(math.Round(float64(sum) / float64(len(vibes))))
}
