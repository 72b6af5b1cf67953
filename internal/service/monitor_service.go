package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hyperapp/internal/domain"
	"hyperapp/internal/geo"
	"hyperapp/internal/metrics"

	"github.com/google/uuid"
)

// Transition is a detected zone boundary crossing, produced by the pure
// detection pass and consumed by the effect dispatch step.
type Transition struct {
	Geofence *domain.Geofence
	Event    domain.GeofenceEventType
	At       time.Time
}

// Monitor evaluates each incoming position against every active geofence.
// Membership defaults to "outside" for a zone never evaluated, so a zone
// created around the current position emits one enter event on the next fix.
//
// The cooldown gates the membership write itself, not just the notification:
// boundary jitter inside the window leaves no trace, so a burst of
// oscillations cannot replay as a cascade of events once the window elapses.
type Monitor struct {
	zones    ActiveZoneSource
	events   EventSink
	notifier Notifier
	metrics  *metrics.Collector
	logger   *slog.Logger
	cooldown time.Duration
	now      func() time.Time

	mu           sync.Mutex
	inside       map[uuid.UUID]bool
	lastNotified map[uuid.UUID]time.Time
}

func NewMonitor(
	zones ActiveZoneSource,
	events EventSink,
	notifier Notifier,
	collector *metrics.Collector,
	logger *slog.Logger,
	cooldown time.Duration,
) *Monitor {
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}
	return &Monitor{
		zones:        zones,
		events:       events,
		notifier:     notifier,
		metrics:      collector,
		logger:       logger,
		cooldown:     cooldown,
		now:          time.Now,
		inside:       make(map[uuid.UUID]bool),
		lastNotified: make(map[uuid.UUID]time.Time),
	}
}

// SetNowFunc overrides the clock. Tests use it to drive the cooldown window
// deterministically.
func (m *Monitor) SetNowFunc(now func() time.Time) {
	m.now = now
}

// Evaluate runs one full pass over the active zones for a single position.
// Returned transitions have already been dispatched (event log + notification).
func (m *Monitor) Evaluate(ctx context.Context, pos domain.Position) ([]Transition, error) {
	zones, err := m.zones.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("monitor.Evaluate: %w", err)
	}

	transitions := m.detect(pos, zones)
	m.dispatch(ctx, transitions)

	return transitions, nil
}

// detect is the pure half of the evaluation: membership comparison and
// cooldown gating, no I/O.
func (m *Monitor) detect(pos domain.Position, zones []*domain.Geofence) []Transition {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Transition
	for _, z := range zones {
		if !z.IsActive {
			continue
		}

		d := geo.DistanceMeters(pos.Coordinate, z.Center)
		isInside := d <= z.RadiusMeters
		wasInside := m.inside[z.ID]

		if isInside == wasInside {
			continue
		}
		if now.Sub(m.lastNotified[z.ID]) <= m.cooldown {
			// suppressed entirely: no state write, no event
			continue
		}

		m.inside[z.ID] = isInside
		m.lastNotified[z.ID] = now

		ev := domain.EventExit
		if isInside {
			ev = domain.EventEnter
		}
		out = append(out, Transition{Geofence: z, Event: ev, At: now})
	}

	return out
}

// dispatch executes the effects for detected transitions. Failures are
// logged and swallowed; the event record always precedes the notification
// attempt so a denied notification still leaves the history entry.
func (m *Monitor) dispatch(ctx context.Context, transitions []Transition) {
	for _, t := range transitions {
		ev := domain.GeofenceEvent{
			ID:         uuid.New(),
			GeofenceID: t.Geofence.ID,
			Type:       t.Event,
			Timestamp:  t.At,
		}
		if err := m.events.Append(ctx, ev); err != nil {
			m.logger.Error("event log append failed",
				slog.String("geofence_id", t.Geofence.ID.String()),
				slog.Any("error", err),
			)
		}
		m.metrics.TransitionObserved(string(t.Event))

		wantAlert := (t.Event == domain.EventEnter && t.Geofence.AlertOnEnter) ||
			(t.Event == domain.EventExit && t.Geofence.AlertOnExit)
		if !wantAlert {
			continue
		}

		title, body := notificationText(t)
		if err := m.notifier.Notify(ctx, title, body); err != nil {
			m.logger.Warn("notification failed",
				slog.String("geofence_id", t.Geofence.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		m.metrics.NotificationEnqueued()
	}
}

// Forget drops the membership state for a deleted zone.
func (m *Monitor) Forget(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.inside, id)
	delete(m.lastNotified, id)
}

// Watch consumes a position stream until the context is canceled or the
// channel closes. Positions are processed strictly in arrival order.
func (m *Monitor) Watch(ctx context.Context, positions <-chan domain.Position) {
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("position watch stopped", slog.String("reason", ctx.Err().Error()))
			return
		case pos, ok := <-positions:
			if !ok {
				m.logger.Info("position stream closed")
				return
			}
			if _, err := m.Evaluate(ctx, pos); err != nil {
				m.logger.Error("position evaluation failed", slog.Any("error", err))
			}
		}
	}
}

func notificationText(t Transition) (string, string) {
	zone := t.Geofence
	if t.Event == domain.EventEnter {
		return "Entered " + zone.Name,
			fmt.Sprintf("You entered %q, marked as a %s zone", zone.Name, zone.Vibe)
	}
	return "Left " + zone.Name,
		fmt.Sprintf("You left %q, marked as a %s zone", zone.Name, zone.Vibe)
}
