package pgsql

import (
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:      newPgxProfileRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		ServiceOrderRepo: newPgxServiceOrderRepository(dbPool),
		PieceCounterRepo: newPgxPieceCounterRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
		TxManager:        &PgxTransactionManager{Pool: dbPool},
	}
}
