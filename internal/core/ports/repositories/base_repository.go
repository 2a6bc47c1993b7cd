package repositories

import "context"

// TxRepositories groups the repositories bound to one storage transaction.
// Everything done through them commits or rolls back together.
type TxRepositories struct {
	Clients       ClientRepositoryFacade
	ServiceOrders ServiceOrderRepositoryFacade
	PieceCounters PieceCounterRepositoryFacade
}

// TransactionManager runs a unit of work inside a single storage transaction.
type TransactionManager interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
