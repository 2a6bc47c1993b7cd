package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultServiceOrderLimit = 20
	maxServiceOrderLimit     = 200
)

type serviceOrderService struct {
	BaseService
	serviceOrderRepo portsrepo.ServiceOrderRepositoryFacade
	txManager        portsrepo.TransactionManager
}

// NewServiceOrderService creates a new ServiceOrderService.
func NewServiceOrderService(serviceOrderRepo portsrepo.ServiceOrderRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.ServiceOrderSvcFacade {
	return &serviceOrderService{serviceOrderRepo: serviceOrderRepo, txManager: txManager}
}

func parseDeliveryDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return &d, nil
}

func validateValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: value cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

func validateStatus(s domain.ServiceStatus) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, s)
	}
	return nil
}

func (s *serviceOrderService) GetServiceOrder(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	order, err := s.serviceOrderRepo.FindServiceOrderByID(ctx, profileID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service order %s: %w", serviceID, err)
	}
	return order, nil
}

func (s *serviceOrderService) ListServiceOrders(ctx context.Context, profileID string, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, *string, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, nil, err
	}
	if params.Status != "" {
		if err := validateStatus(params.Status); err != nil {
			return nil, nil, err
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultServiceOrderLimit
	}
	if limit > maxServiceOrderLimit {
		limit = maxServiceOrderLimit
	}

	filter := domain.ServiceOrderFilter{Status: params.Status, ClientID: params.ClientID}
	orders, next, err := s.serviceOrderRepo.ListServiceOrders(ctx, profileID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list service orders")
		return nil, nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	return orders, next, nil
}

// CreateServiceOrder resolves the client, inserts the order and recomputes the
// client statistics in one transaction.
func (s *serviceOrderService) CreateServiceOrder(ctx context.Context, profileID string, req dto.CreateServiceOrderRequest) (*domain.ServiceOrder, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}

	description := domain.NormalizeName(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if err := validateValue(req.Value); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusInProgress
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	delivery, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.ServiceOrder{
		ServiceID:    uuid.NewString(),
		ProfileID:    profileID,
		Description:  description,
		Value:        req.Value,
		DeliveryDate: delivery,
		Status:       status,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		client, err := resolveClientRef(ctx, repos.Clients, profileID, req.ClientID, req.ClientName, now)
		if err != nil {
			return err
		}
		order.ClientID = client.ClientID
		order.ClientName = client.Name

		if err := repos.ServiceOrders.SaveServiceOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save service order: %w", err)
		}
		_, err = recomputeClientStats(ctx, repos, profileID, client.ClientID, now)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create service order")
		return nil, err
	}

	s.LogInfo(ctx, "Service order created", slog.String("service_id", order.ServiceID), slog.String("client_id", order.ClientID))
	return &order, nil
}

// UpdateServiceOrder applies the provided fields. When the order moves to
// another client both clients are recomputed.
func (s *serviceOrderService) UpdateServiceOrder(ctx context.Context, profileID, serviceID string, req dto.UpdateServiceOrderRequest) (*domain.ServiceOrder, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}

	if req.Value != nil {
		if err := validateValue(*req.Value); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	delivery, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	var updated domain.ServiceOrder
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		now := time.Now().UTC()
		current, err := repos.ServiceOrders.LockServiceOrderForUpdate(ctx, profileID, serviceID)
		if err != nil {
			return fmt.Errorf("service order %s: %w", serviceID, err)
		}
		updated = *current
		previousClientID := current.ClientID

		if req.Description != nil {
			description := domain.NormalizeName(*req.Description)
			if description == "" {
				return fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
			}
			updated.Description = description
		}
		if req.Value != nil {
			updated.Value = *req.Value
		}
		if req.Status != nil {
			updated.Status = *req.Status
		}
		if req.ClearDeliveryDate {
			updated.DeliveryDate = nil
		} else if delivery != nil {
			updated.DeliveryDate = delivery
		}

		clientID := ""
		if req.ClientID != nil {
			clientID = *req.ClientID
		}
		clientName := ""
		if req.ClientName != nil {
			clientName = *req.ClientName
		}
		if clientID != "" || clientName != "" {
			client, err := resolveClientRef(ctx, repos.Clients, profileID, clientID, clientName, now)
			if err != nil {
				return err
			}
			updated.ClientID = client.ClientID
			updated.ClientName = client.Name
		}
		updated.LastUpdatedAt = now

		if err := repos.ServiceOrders.UpdateServiceOrder(ctx, updated); err != nil {
			return fmt.Errorf("failed to update service order: %w", err)
		}
		affected := []string{updated.ClientID}
		if previousClientID != updated.ClientID {
			affected = append(affected, previousClientID)
			// Fixed lock order so two opposite moves cannot deadlock.
			slices.Sort(affected)
		}
		for _, clientID := range affected {
			if _, err := recomputeClientStats(ctx, repos, profileID, clientID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update service order", slog.String("service_id", serviceID))
		return nil, err
	}
	return &updated, nil
}

func (s *serviceOrderService) UpdateServiceStatus(ctx context.Context, profileID, serviceID string, status domain.ServiceStatus) (*domain.ServiceOrder, error) {
	return s.UpdateServiceOrder(ctx, profileID, serviceID, dto.UpdateServiceOrderRequest{Status: &status})
}

func (s *serviceOrderService) DeleteServiceOrder(ctx context.Context, profileID, serviceID string) error {
	if err := s.RequireProfile(profileID); err != nil {
		return err
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		// The locked read decides which client to recompute; a concurrent move
		// commits first and is seen here.
		current, err := repos.ServiceOrders.LockServiceOrderForUpdate(ctx, profileID, serviceID)
		if err != nil {
			return fmt.Errorf("service order %s: %w", serviceID, err)
		}
		if err := repos.ServiceOrders.DeleteServiceOrder(ctx, profileID, serviceID); err != nil {
			return fmt.Errorf("failed to delete service order: %w", err)
		}
		_, err = recomputeClientStats(ctx, repos, profileID, current.ClientID, time.Now().UTC())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete service order", slog.String("service_id", serviceID))
		return err
	}
	s.LogInfo(ctx, "Service order deleted", slog.String("service_id", serviceID))
	return nil
}
