package repositories

// RepositoryProvider bundles the concrete repositories the service layer is
// wired with.
type RepositoryProvider struct {
	ProductRepo    ProductRepository
	CustomerRepo   CustomerRepository
	SimulationRepo SimulationRepository
	HistoryRepo    HistoryRepository
	TelemetryRepo  TelemetryRepository
	TxManager      TransactionManager
}
