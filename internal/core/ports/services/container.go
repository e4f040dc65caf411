package services

// ServiceContainer bundles the service interfaces the HTTP layer is wired
// with.
type ServiceContainer struct {
	Simulation     SimulationSvc
	RiskProfile    RiskProfileSvc
	Recommendation RecommendationSvc
	Product        ProductSvc
	Customer       CustomerSvc
	History        HistorySvc
	Telemetry      TelemetrySvc
}
