package dto

import (
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardResponse defines the summary returned for the home screen.
type DashboardResponse struct {
	ClientCount      int             `json:"clientCount"`
	FavoriteCount    int             `json:"favoriteCount"`
	ServicesByStatus map[string]int  `json:"servicesByStatus"`
	Revenue          decimal.Decimal `json:"revenue"`
	Receivable       decimal.Decimal `json:"receivable"`
	TotalPieces      int64           `json:"totalPieces"`
}

// ToDashboardResponse converts a domain.Dashboard. Every status is present in the map.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	byStatus := make(map[string]int, len(domain.AllServiceStatuses))
	for _, s := range domain.AllServiceStatuses {
		byStatus[string(s)] = d.ServicesByStatus[s]
	}
	return DashboardResponse{
		ClientCount:      d.ClientCount,
		FavoriteCount:    d.FavoriteCount,
		ServicesByStatus: byStatus,
		Revenue:          utils.RoundMoney(d.Revenue),
		Receivable:       utils.RoundMoney(d.Receivable),
		TotalPieces:      d.TotalPieces,
	}
}
