package domain

import "github.com/google/uuid"

type CreateAlertRequest struct {
	AlertType   string     `json:"alert_type" validate:"required,max=50"`
	Description string     `json:"description" validate:"max=1000"`
	Latitude    float64    `json:"latitude" validate:"lat"`
	Longitude   float64    `json:"longitude" validate:"lng"`
	ReportType  ReportType `json:"report_type" validate:"required,oneof=vibe event sos"`
	UserID      *uuid.UUID `json:"user_id"`
	Anonymous   bool       `json:"anonymous"`
}

type TriggerSOSRequest struct {
	Description string     `json:"description" validate:"max=1000"`
	Latitude    float64    `json:"latitude" validate:"lat"`
	Longitude   float64    `json:"longitude" validate:"lng"`
	UserID      *uuid.UUID `json:"user_id"`
	Anonymous   bool       `json:"anonymous"`
}

type RespondAlertRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
