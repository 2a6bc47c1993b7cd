package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db DBTX) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{DB: db}}
}

// GetDashboardData aggregates the profile's clients, services and counters.
func (r *reportingRepository) GetDashboardData(ctx context.Context, profileID string) (*domain.Dashboard, error) {
	d := &domain.Dashboard{
		ServicesByStatus: make(map[domain.ServiceStatus]int, len(domain.AllServiceStatuses)),
		Revenue:          decimal.Zero,
		Receivable:       decimal.Zero,
	}

	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*)::INT, COUNT(*) FILTER (WHERE is_favorite)::INT
		FROM clients
		WHERE profile_id = $1;`,
		profileID,
	).Scan(&d.ClientCount, &d.FavoriteCount)
	if err != nil {
		return nil, fmt.Errorf("error querying client counts: %w", err)
	}

	rows, err := r.DB.Query(ctx, `
		SELECT status, COUNT(*)::INT, COALESCE(SUM(value), 0)
		FROM service_orders
		WHERE profile_id = $1
		GROUP BY status;`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying service totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var sum decimal.Decimal
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return nil, fmt.Errorf("error scanning service totals row: %w", err)
		}
		s := domain.ServiceStatus(status)
		d.ServicesByStatus[s] = count
		if s == domain.StatusPaid {
			d.Revenue = d.Revenue.Add(sum)
		} else {
			d.Receivable = d.Receivable.Add(sum)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service totals rows: %w", err)
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_pieces), 0)::BIGINT FROM piece_counters WHERE profile_id = $1;`,
		profileID,
	).Scan(&d.TotalPieces)
	if err != nil {
		return nil, fmt.Errorf("error querying total pieces: %w", err)
	}

	return d, nil
}
