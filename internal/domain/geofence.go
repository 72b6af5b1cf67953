package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vibe string

const (
	VibeSafe    Vibe = "safe"
	VibeCaution Vibe = "caution"
	VibeDanger  Vibe = "danger"
)

// Geofence is a user-defined circular zone. The center is pinned to the
// caller's live fix at creation time and never moves afterwards.
type Geofence struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Vibe         Vibe       `json:"vibe"`
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
	AlertOnEnter bool       `json:"alert_on_enter"`
	AlertOnExit  bool       `json:"alert_on_exit"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type GeofenceEventType string

const (
	EventEnter GeofenceEventType = "enter"
	EventExit  GeofenceEventType = "exit"
)

type GeofenceEvent struct {
	ID         uuid.UUID         `json:"id"`
	GeofenceID uuid.UUID         `json:"geofence_id"`
	Type       GeofenceEventType `json:"type"`
	Timestamp  time.Time         `json:"timestamp"`
}
