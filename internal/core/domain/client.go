package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a customer of the seamstress.
// TotalSpent and LastServiceDate are derived from the client's service orders
// and are only ever written by the statistics recomputation.
type Client struct {
	ClientID        string          `json:"clientID"`
	ProfileID       string          `json:"profileID"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Address         string          `json:"address"`
	Notes           string          `json:"notes"`
	IsFavorite      bool            `json:"isFavorite"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	LastServiceDate *time.Time      `json:"lastServiceDate"`
	AuditFields
}

// ClientFilter narrows a client listing.
type ClientFilter struct {
	Search        string
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// ClientStats is the derived part of a Client.
type ClientStats struct {
	TotalSpent      decimal.Decimal
	LastServiceDate *time.Time
}
