package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/utils"
)

const defaultClientListLimit = 50

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	txManager  portsrepo.TransactionManager
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo, txManager: txManager}
}

func (s *clientService) ResolveOrCreateClient(ctx context.Context, profileID, name string) (string, bool, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return "", false, err
	}

	var client *domain.Client
	var created bool
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		client, created, err = findOrInsertClient(ctx, repos.Clients, newClient(profileID, name, time.Now().UTC()))
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve client", slog.String("client_name", name))
		return "", false, err
	}
	if created {
		s.LogInfo(ctx, "Client created by name", slog.String("client_id", client.ClientID))
	}
	return client.ClientID, created, nil
}

func (s *clientService) GetClient(ctx context.Context, profileID, clientID string) (*domain.Client, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, profileID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, profileID string, params dto.ListClientsParams) ([]domain.Client, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	filter := domain.ClientFilter{
		Search:        domain.NormalizeName(params.Search),
		FavoritesOnly: params.FavoritesOnly,
		Limit:         params.Limit,
		Offset:        params.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultClientListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	clients, err := s.clientRepo.ListClients(ctx, profileID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, profileID string, req dto.CreateClientRequest) (*domain.Client, bool, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, false, err
	}

	candidate := newClient(profileID, req.Name, time.Now().UTC())
	candidate.Phone = req.Phone
	candidate.Email = req.Email
	candidate.Address = req.Address
	candidate.Notes = req.Notes
	candidate.IsFavorite = req.IsFavorite

	var client *domain.Client
	var created bool
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		client, created, err = findOrInsertClient(ctx, repos.Clients, candidate)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create client")
		return nil, false, err
	}
	if created {
		s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	}
	return client, created, nil
}

func (s *clientService) UpdateClient(ctx context.Context, profileID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClient(ctx, profileID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := domain.NormalizeName(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: client name cannot be empty", apperrors.ErrValidation)
		}
		client.Name = name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.IsFavorite != nil {
		client.IsFavorite = *req.IsFavorite
	}
	client.LastUpdatedAt = time.Now().UTC()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) SetFavorite(ctx context.Context, profileID, clientID string, favorite bool) (*domain.Client, error) {
	return s.UpdateClient(ctx, profileID, clientID, dto.UpdateClientRequest{IsFavorite: &favorite})
}

func (s *clientService) DeleteClient(ctx context.Context, profileID, clientID string) error {
	if err := s.RequireProfile(profileID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, profileID, clientID); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

func (s *clientService) ReconcileClientStats(ctx context.Context, profileID, clientID string) (*domain.Client, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}

	var before, after domain.ClientStats
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		current, err := repos.Clients.FindClientByID(ctx, profileID, clientID)
		if err != nil {
			return fmt.Errorf("client %s: %w", clientID, err)
		}
		before = domain.ClientStats{TotalSpent: current.TotalSpent, LastServiceDate: current.LastServiceDate}
		after, err = recomputeClientStats(ctx, repos, profileID, clientID, time.Now().UTC())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile client statistics", slog.String("client_id", clientID))
		return nil, err
	}
	if !before.Equal(after) {
		s.LogInfo(ctx, "Client statistics drift corrected",
			slog.String("client_id", clientID),
			slog.String("stored_total", utils.FormatMoney(before.TotalSpent)),
			slog.String("derived_total", utils.FormatMoney(after.TotalSpent)))
	}
	return s.GetClient(ctx, profileID, clientID)
}
