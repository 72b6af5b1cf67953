package domain

// CreateGeofenceRequest carries the caller's current fix instead of a free
// center coordinate: zones are always created where the device stands.
type CreateGeofenceRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	Vibe         Vibe     `json:"vibe" validate:"required,vibe"`
	Position     Position `json:"position" validate:"required"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,radius_m"`
	AlertOnEnter bool     `json:"alert_on_enter"`
	AlertOnExit  bool     `json:"alert_on_exit"`
}

type UpdateGeofenceRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Vibe         *Vibe    `json:"vibe" validate:"omitempty,vibe"`
	RadiusMeters *float64 `json:"radius_meters" validate:"omitempty,radius_m"`
	AlertOnEnter *bool    `json:"alert_on_enter"`
	AlertOnExit  *bool    `json:"alert_on_exit"`
	IsActive     *bool    `json:"is_active"`
}

type PositionUpdateRequest struct {
	Latitude  float64  `json:"latitude" validate:"lat"`
	Longitude float64  `json:"longitude" validate:"lng"`
	AccuracyM *float64 `json:"accuracy_m"`
	Heading   *float64 `json:"heading"`
	SpeedMS   *float64 `json:"speed_ms"`
	Timestamp int64    `json:"timestamp"` // epoch ms, optional
}
