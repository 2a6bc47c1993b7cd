package services

import (
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Profile:      NewProfileService(repos.ProfileRepo),
		Client:       NewClientService(repos.ClientRepo, repos.TxManager),
		ServiceOrder: NewServiceOrderService(repos.ServiceOrderRepo, repos.TxManager),
		PieceCounter: NewPieceCounterService(repos.PieceCounterRepo, repos.TxManager),
		Reporting:    NewReportingService(repos.ReportingRepo, repos.ClientRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProfileSvcFacade      = (*profileService)(nil)
	_ portssvc.ClientSvcFacade       = (*clientService)(nil)
	_ portssvc.ServiceOrderSvcFacade = (*serviceOrderService)(nil)
	_ portssvc.PieceCounterSvcFacade = (*pieceCounterService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
)
