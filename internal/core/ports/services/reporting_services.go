package services

import (
	"context"
	"io"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ReportingSvcFacade defines summary and export operations.
type ReportingSvcFacade interface {
	GetDashboard(ctx context.Context, profileID string) (*domain.Dashboard, error)

	// ExportClients writes an .xlsx workbook with every client of the account.
	ExportClients(ctx context.Context, profileID string, w io.Writer) error
}
