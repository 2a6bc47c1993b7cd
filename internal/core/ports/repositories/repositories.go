package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProfileRepo      ProfileRepository
	ClientRepo       ClientRepositoryFacade
	ServiceOrderRepo ServiceOrderRepositoryFacade
	PieceCounterRepo PieceCounterRepositoryFacade
	ReportingRepo    ReportingRepository
	TxManager        TransactionManager
}
