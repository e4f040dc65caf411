package models

import "time"

// TelemetryEvent is the database shape of one per-request duration sample.
type TelemetryEvent struct {
	ID          int64     `json:"id"`
	ServiceName string    `json:"serviceName"`
	DurationMs  int64     `json:"durationMs"`
	Timestamp   time.Time `json:"timestamp"`
}
