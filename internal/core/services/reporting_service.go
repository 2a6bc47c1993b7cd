package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/utils/export"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	clientRepo    portsrepo.ClientReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, clientRepo portsrepo.ClientReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, clientRepo: clientRepo}
}

func (s *reportingService) GetDashboard(ctx context.Context, profileID string) (*domain.Dashboard, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	dashboard, err := s.reportingRepo.GetDashboardData(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return dashboard, nil
}

func (s *reportingService) ExportClients(ctx context.Context, profileID string, w io.Writer) error {
	if err := s.RequireProfile(profileID); err != nil {
		return err
	}
	clients, err := s.clientRepo.ListClients(ctx, profileID, domain.ClientFilter{Limit: math.MaxInt32})
	if err != nil {
		return fmt.Errorf("failed to load clients for export: %w", err)
	}
	if err := export.WriteClientsXLSX(w, clients); err != nil {
		s.LogError(ctx, err, "Failed to render clients workbook")
		return err
	}
	s.LogInfo(ctx, "Clients exported", slog.Int("count", len(clients)))
	return nil
}
