package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client mirrors the clients table.
type Client struct {
	ClientID        string          `db:"client_id"`
	ProfileID       string          `db:"profile_id"`
	Name            string          `db:"name"`
	Phone           string          `db:"phone"`
	Email           string          `db:"email"`
	Address         string          `db:"address"`
	Notes           string          `db:"notes"`
	IsFavorite      bool            `db:"is_favorite"`
	TotalSpent      decimal.Decimal `db:"total_spent"`
	LastServiceDate *time.Time      `db:"last_service_date"` // Nullable
	AuditFields
}
