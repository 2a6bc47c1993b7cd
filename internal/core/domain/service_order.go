package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus is the lifecycle state of a service order. Transitions are free.
type ServiceStatus string

const (
	StatusInProgress ServiceStatus = "progress"
	StatusDelivered  ServiceStatus = "delivered"
	StatusPaid       ServiceStatus = "paid"
)

// AllServiceStatuses lists the accepted statuses in display order.
var AllServiceStatuses = []ServiceStatus{StatusInProgress, StatusDelivered, StatusPaid}

// IsValid reports whether s is one of the known statuses.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusInProgress, StatusDelivered, StatusPaid:
		return true
	}
	return false
}

// ServiceOrder is a piece of work done for a client. It is the ledger the
// client statistics are derived from.
type ServiceOrder struct {
	ServiceID    string          `json:"serviceID"`
	ProfileID    string          `json:"profileID"`
	ClientID     string          `json:"clientID"`
	ClientName   string          `json:"clientName"` // read-only, joined from clients
	Description  string          `json:"description"`
	Value        decimal.Decimal `json:"value"`
	DeliveryDate *time.Time      `json:"deliveryDate"`
	Status       ServiceStatus   `json:"status"`
	AuditFields
}

// ServiceOrderFilter narrows a service order listing.
type ServiceOrderFilter struct {
	Status   ServiceStatus
	ClientID string
}
