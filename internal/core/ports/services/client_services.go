package services

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/dto"
)

// ClientResolverSvc implements find-or-create over client names.
type ClientResolverSvc interface {
	// ResolveOrCreateClient returns the ID of the client whose name matches
	// case-insensitively, creating the client when absent. Concurrent calls
	// with the same name return the same ID.
	ResolveOrCreateClient(ctx context.Context, profileID, name string) (clientID string, created bool, err error)
}

// ClientReaderSvc defines read operations for clients.
type ClientReaderSvc interface {
	GetClient(ctx context.Context, profileID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, profileID string, params dto.ListClientsParams) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients. Derived statistics are never accepted.
type ClientWriterSvc interface {
	// CreateClient returns the existing client when the name is already taken.
	CreateClient(ctx context.Context, profileID string, req dto.CreateClientRequest) (*domain.Client, bool, error)
	UpdateClient(ctx context.Context, profileID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	SetFavorite(ctx context.Context, profileID, clientID string, favorite bool) (*domain.Client, error)
	DeleteClient(ctx context.Context, profileID, clientID string) error
}

// ClientMaintenanceSvc re-derives statistics from the service ledger.
type ClientMaintenanceSvc interface {
	ReconcileClientStats(ctx context.Context, profileID, clientID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientResolverSvc
	ClientReaderSvc
	ClientWriterSvc
	ClientMaintenanceSvc
}
