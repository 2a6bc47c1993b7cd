package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/SscSPs/costureira_pro/internal/models"
	"github.com/SscSPs/costureira_pro/internal/utils/mapping"
	"github.com/SscSPs/costureira_pro/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const serviceOrderSelect = `
	SELECT s.service_id, s.profile_id, s.client_id, c.name AS client_name, s.description, s.value,
	       s.delivery_date, s.status, s.created_at, s.last_updated_at
	FROM service_orders s
	JOIN clients c ON c.client_id = s.client_id`

type PgxServiceOrderRepository struct {
	BaseRepository
}

func newPgxServiceOrderRepository(db DBTX) *PgxServiceOrderRepository {
	return &PgxServiceOrderRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*PgxServiceOrderRepository)(nil)

func (r *PgxServiceOrderRepository) FindServiceOrderByID(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	return r.findOne(ctx, serviceOrderSelect+` WHERE s.profile_id = $1 AND s.service_id = $2;`, profileID, serviceID)
}

// LockServiceOrderForUpdate must run inside a transaction. Only the order row is
// locked; client rows are locked later by the statistics recomputation.
func (r *PgxServiceOrderRepository) LockServiceOrderForUpdate(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	return r.findOne(ctx, serviceOrderSelect+` WHERE s.profile_id = $1 AND s.service_id = $2 FOR UPDATE OF s;`, profileID, serviceID)
}

func (r *PgxServiceOrderRepository) findOne(ctx context.Context, query string, args ...any) (*domain.ServiceOrder, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query service order", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ServiceOrder])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan service order", err)
	}
	s := mapping.ToDomainServiceOrder(m)
	return &s, nil
}

// ListServiceOrders retrieves service orders newest first. One extra row is
// fetched to decide whether a next page exists.
func (r *PgxServiceOrderRepository) ListServiceOrders(ctx context.Context, profileID string, filter domain.ServiceOrderFilter, limit int, nextToken *string) ([]domain.ServiceOrder, *string, error) {
	conditions := []string{"s.profile_id = $1"}
	args := []any{profileID}
	addArg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "s.status = "+addArg(string(filter.Status)))
	}
	if filter.ClientID != "" {
		conditions = append(conditions, "s.client_id = "+addArg(filter.ClientID))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		conditions = append(conditions, fmt.Sprintf("(s.created_at, s.service_id) < (%s, %s)", addArg(lastCreatedAt), addArg(lastID)))
	}

	query := serviceOrderSelect +
		` WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY s.created_at DESC, s.service_id DESC LIMIT ` + addArg(limit+1) + `;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list service orders", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ServiceOrder])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan service orders", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ServiceID)
		nextTokenVal = &token
	}
	return mapping.ToDomainServiceOrderSlice(ms), nextTokenVal, nil
}

// AggregateClientStats performs the full scan: paid values are summed, the
// last service date covers every status.
func (r *PgxServiceOrderRepository) AggregateClientStats(ctx context.Context, clientID string) (domain.ClientStats, error) {
	query := `
		SELECT COALESCE(SUM(value) FILTER (WHERE status = 'paid'), 0), MAX(created_at)
		FROM service_orders
		WHERE client_id = $1;
	`
	var total decimal.Decimal
	var last *time.Time
	if err := r.DB.QueryRow(ctx, query, clientID).Scan(&total, &last); err != nil {
		return domain.ClientStats{}, apperrors.NewAppError(500, "failed to aggregate client statistics", err)
	}
	return domain.ClientStats{TotalSpent: total, LastServiceDate: last}, nil
}

func (r *PgxServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	m := mapping.ToModelServiceOrder(order)
	query := `
		INSERT INTO service_orders (service_id, profile_id, client_id, description, value, delivery_date, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, query,
		m.ServiceID, m.ProfileID, m.ClientID, m.Description, m.Value, m.DeliveryDate, m.Status, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert service order", err)
	}
	return nil
}

func (r *PgxServiceOrderRepository) UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	m := mapping.ToModelServiceOrder(order)
	query := `
		UPDATE service_orders
		SET client_id = $3, description = $4, value = $5, delivery_date = $6, status = $7, last_updated_at = $8
		WHERE profile_id = $1 AND service_id = $2;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.ProfileID, m.ServiceID, m.ClientID, m.Description, m.Value, m.DeliveryDate, m.Status, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update service order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxServiceOrderRepository) DeleteServiceOrder(ctx context.Context, profileID, serviceID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM service_orders WHERE profile_id = $1 AND service_id = $2;`, profileID, serviceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete service order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
