package domain

import "time"

type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

// Position is a live location sample from a device. Optional fields stay nil
// when the platform did not provide them.
type Position struct {
	Coordinate
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	SpeedMS   *float64  `json:"speed_ms,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
