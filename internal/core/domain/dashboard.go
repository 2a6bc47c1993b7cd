package domain

import "github.com/shopspring/decimal"

// Dashboard summarises an account's activity.
type Dashboard struct {
	ClientCount      int                   `json:"clientCount"`
	FavoriteCount    int                   `json:"favoriteCount"`
	ServicesByStatus map[ServiceStatus]int `json:"servicesByStatus"`
	Revenue          decimal.Decimal       `json:"revenue"`    // sum of paid services
	Receivable       decimal.Decimal       `json:"receivable"` // sum of services not yet paid
	TotalPieces      int64                 `json:"totalPieces"`
}
