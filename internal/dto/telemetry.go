package dto

// ServiceMetric is the aggregated view of one service name.
type ServiceMetric struct {
	Name          string  `json:"name"`
	CallCount     int     `json:"callCount"`
	AvgDurationMs float64 `json:"avgDurationMs"`
}

// TelemetryPeriod is the date window the aggregation covers.
type TelemetryPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TelemetryResponse is the output of GET /telemetry.
type TelemetryResponse struct {
	Services []ServiceMetric `json:"services"`
	Period   TelemetryPeriod `json:"period"`
}
