package services

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/dto"
)

// ServiceOrderReaderSvc defines read operations for service orders.
type ServiceOrderReaderSvc interface {
	GetServiceOrder(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error)

	// ListServiceOrders returns a page of orders newest first and the token of the next page.
	ListServiceOrders(ctx context.Context, profileID string, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, *string, error)
}

// ServiceOrderWriterSvc defines write operations for service orders. Every
// write recomputes the statistics of the affected clients in the same transaction.
type ServiceOrderWriterSvc interface {
	CreateServiceOrder(ctx context.Context, profileID string, req dto.CreateServiceOrderRequest) (*domain.ServiceOrder, error)
	UpdateServiceOrder(ctx context.Context, profileID, serviceID string, req dto.UpdateServiceOrderRequest) (*domain.ServiceOrder, error)
	UpdateServiceStatus(ctx context.Context, profileID, serviceID string, status domain.ServiceStatus) (*domain.ServiceOrder, error)
	DeleteServiceOrder(ctx context.Context, profileID, serviceID string) error
}

// ServiceOrderSvcFacade combines all service-order service interfaces.
type ServiceOrderSvcFacade interface {
	ServiceOrderReaderSvc
	ServiceOrderWriterSvc
}
