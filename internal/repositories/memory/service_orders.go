package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils/pagination"
)

// withClientName fills the joined display name.
func (v *view) withClientName(s domain.ServiceOrder) domain.ServiceOrder {
	s.ClientName = v.st().clients[s.ClientID].Name
	return s
}

func (v *view) FindServiceOrderByID(_ context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	defer v.lock()()
	s, ok := v.st().services[serviceID]
	if !ok || s.ProfileID != profileID {
		return nil, apperrors.ErrNotFound
	}
	s = v.withClientName(s)
	return &s, nil
}

// LockServiceOrderForUpdate is a plain read: the store lock already serialises transactions.
func (v *view) LockServiceOrderForUpdate(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	return v.FindServiceOrderByID(ctx, profileID, serviceID)
}

func (v *view) ListServiceOrders(_ context.Context, profileID string, filter domain.ServiceOrderFilter, limit int, nextToken *string) ([]domain.ServiceOrder, *string, error) {
	defer v.lock()()

	var cursor func(domain.ServiceOrder) bool
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		cursor = func(s domain.ServiceOrder) bool {
			return pagination.IsBefore(s.CreatedAt, s.ServiceID, lastCreatedAt, lastID)
		}
	}

	out := []domain.ServiceOrder{}
	for _, s := range v.st().services {
		if s.ProfileID != profileID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && s.ClientID != filter.ClientID {
			continue
		}
		if cursor != nil && !cursor(s) {
			continue
		}
		out = append(out, v.withClientName(s))
	}
	slices.SortFunc(out, func(a, b domain.ServiceOrder) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ServiceID, a.ServiceID))
	})

	var next *string
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ServiceID)
		next = &token
	}
	return out, next, nil
}

// AggregateClientStats scans every order of the client, like the SQL aggregate does.
func (v *view) AggregateClientStats(_ context.Context, clientID string) (domain.ClientStats, error) {
	defer v.lock()()
	var orders []domain.ServiceOrder
	for _, s := range v.st().services {
		if s.ClientID == clientID {
			orders = append(orders, s)
		}
	}
	return domain.ComputeClientStats(orders), nil
}

func (v *view) SaveServiceOrder(_ context.Context, order domain.ServiceOrder) error {
	defer v.lock()()
	if _, ok := v.st().clients[order.ClientID]; !ok {
		return apperrors.ErrNotFound
	}
	order.ClientName = ""
	v.st().services[order.ServiceID] = order
	return nil
}

func (v *view) UpdateServiceOrder(_ context.Context, order domain.ServiceOrder) error {
	defer v.lock()()
	stored, ok := v.st().services[order.ServiceID]
	if !ok || stored.ProfileID != order.ProfileID {
		return apperrors.ErrNotFound
	}
	if _, ok := v.st().clients[order.ClientID]; !ok {
		return apperrors.ErrNotFound
	}
	order.CreatedAt = stored.CreatedAt
	order.ClientName = ""
	v.st().services[order.ServiceID] = order
	return nil
}

func (v *view) DeleteServiceOrder(_ context.Context, profileID, serviceID string) error {
	defer v.lock()()
	s, ok := v.st().services[serviceID]
	if !ok || s.ProfileID != profileID {
		return apperrors.ErrNotFound
	}
	delete(v.st().services, serviceID)
	return nil
}
