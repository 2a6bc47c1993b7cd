package memory

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (v *view) GetDashboardData(_ context.Context, profileID string) (*domain.Dashboard, error) {
	defer v.lock()()
	d := &domain.Dashboard{
		ServicesByStatus: make(map[domain.ServiceStatus]int, len(domain.AllServiceStatuses)),
		Revenue:          decimal.Zero,
		Receivable:       decimal.Zero,
	}
	for _, c := range v.st().clients {
		if c.ProfileID != profileID {
			continue
		}
		d.ClientCount++
		if c.IsFavorite {
			d.FavoriteCount++
		}
	}
	for _, s := range v.st().services {
		if s.ProfileID != profileID {
			continue
		}
		d.ServicesByStatus[s.Status]++
		if s.Status == domain.StatusPaid {
			d.Revenue = d.Revenue.Add(s.Value)
		} else {
			d.Receivable = d.Receivable.Add(s.Value)
		}
	}
	for _, k := range v.st().counters {
		if k.ProfileID == profileID {
			d.TotalPieces += k.TotalPieces
		}
	}
	return d, nil
}
