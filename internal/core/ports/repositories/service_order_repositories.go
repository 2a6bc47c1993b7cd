package repositories

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ServiceOrderReader defines read operations for service orders.
type ServiceOrderReader interface {
	// FindServiceOrderByID retrieves a service order of the given profile.
	FindServiceOrderByID(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error)

	// ListServiceOrders retrieves service orders newest first using token-based pagination.
	// It returns the orders, a token for the next page, and an error.
	ListServiceOrders(ctx context.Context, profileID string, filter domain.ServiceOrderFilter, limit int, nextToken *string) ([]domain.ServiceOrder, *string, error)

	// AggregateClientStats scans every service order of the client and derives its statistics.
	AggregateClientStats(ctx context.Context, clientID string) (domain.ClientStats, error)
}

// ServiceOrderWriter defines write operations for service orders.
type ServiceOrderWriter interface {
	// SaveServiceOrder inserts a new service order.
	SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error

	// UpdateServiceOrder updates description, value, delivery date, status and client.
	UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error

	// LockServiceOrderForUpdate reads a service order and locks its row until the
	// surrounding transaction ends. Writers must decide what to change from this read.
	LockServiceOrderForUpdate(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error)

	// DeleteServiceOrder removes a service order.
	DeleteServiceOrder(ctx context.Context, profileID, serviceID string) error
}

// ServiceOrderRepositoryFacade combines all service-order repository interfaces.
type ServiceOrderRepositoryFacade interface {
	ServiceOrderReader
	ServiceOrderWriter
}
