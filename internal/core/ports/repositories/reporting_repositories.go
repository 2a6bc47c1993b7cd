package repositories

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ReportingRepository defines operations for retrieving summary data.
type ReportingRepository interface {
	// GetDashboardData aggregates clients, services and counters of a profile.
	GetDashboardData(ctx context.Context, profileID string) (*domain.Dashboard, error)
}
