package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportVibe  ReportType = "vibe"
	ReportEvent ReportType = "event"
	ReportSOS   ReportType = "sos"
)

// Alert is an active community report. ExpiresAt is set only for vibe
// reports (created_at + 12h); SOS reports age out or leave on resolution.
type Alert struct {
	ID          uuid.UUID   `json:"id"`
	AlertType   string      `json:"alert_type"`
	Description string      `json:"description,omitempty"`
	Location    Coordinate  `json:"location"`
	ReportType  ReportType  `json:"report_type"`
	ReportedAt  time.Time   `json:"reported_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UserID      *uuid.UUID  `json:"user_id,omitempty"`
	Anonymous   bool        `json:"anonymous"`
	Resolved    bool        `json:"resolved"`
	RespondedBy []uuid.UUID `json:"responded_by,omitempty"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`
}

// VibeHistoryRecord snapshots an expired vibe report. Append-only.
type VibeHistoryRecord struct {
	ID          uuid.UUID  `json:"id"`
	AlertID     uuid.UUID  `json:"alert_id"`
	AlertType   string     `json:"alert_type"`
	Description string     `json:"description,omitempty"`
	Location    Coordinate `json:"location"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Anonymous   bool       `json:"anonymous"`
	RadiusKm    float64    `json:"radius_km"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiredAt   time.Time  `json:"expired_at"`
}

// SOSHistoryRecord snapshots an archived SOS report. ResponseTimeMinutes is
// nil when the report was never resolved. Append-only.
type SOSHistoryRecord struct {
	ID                  uuid.UUID  `json:"id"`
	AlertID             uuid.UUID  `json:"alert_id"`
	AlertType           string     `json:"alert_type"`
	Description         string     `json:"description,omitempty"`
	Location            Coordinate `json:"location"`
	UserID              *uuid.UUID `json:"user_id,omitempty"`
	Anonymous           bool       `json:"anonymous"`
	Resolved            bool       `json:"resolved"`
	ResponseTimeMinutes *int64     `json:"response_time_minutes,omitempty"`
	ResolutionNotes     string     `json:"resolution_notes"`
	CreatedAt           time.Time  `json:"created_at"`
	ArchivedAt          time.Time  `json:"archived_at"`
}
