package domain

import "time"

// TelemetryEvent records the duration of one handled request, keyed by a
// human-readable service name such as "POST /api/v1/simulations".
type TelemetryEvent struct {
	ID          int64
	ServiceName string
	DurationMs  int64
	Timestamp   time.Time
}
