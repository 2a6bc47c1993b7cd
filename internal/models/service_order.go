package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrder mirrors the service_orders table joined with the client name.
type ServiceOrder struct {
	ServiceID    string          `db:"service_id"`
	ProfileID    string          `db:"profile_id"`
	ClientID     string          `db:"client_id"`
	ClientName   string          `db:"client_name"` // From clients, read only
	Description  string          `db:"description"`
	Value        decimal.Decimal `db:"value"`
	DeliveryDate *time.Time      `db:"delivery_date"` // DATE, nullable
	Status       string          `db:"status"`
	AuditFields
}
