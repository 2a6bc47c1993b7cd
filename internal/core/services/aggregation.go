package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// newClient builds a client with zero derived fields.
func newClient(profileID, name string, now time.Time) domain.Client {
	return domain.Client{
		ClientID:   uuid.NewString(),
		ProfileID:  profileID,
		Name:       name,
		TotalSpent: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// findOrInsertClient returns the client of the profile whose name matches
// candidate.Name case-insensitively, inserting candidate when there is none.
// Losing an insert race is not an error: the winner's row is re-read.
func findOrInsertClient(ctx context.Context, clients portsrepo.ClientRepositoryFacade, candidate domain.Client) (*domain.Client, bool, error) {
	candidate.Name = domain.NormalizeName(candidate.Name)
	if candidate.Name == "" {
		return nil, false, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	existing, err := clients.FindClientByName(ctx, candidate.ProfileID, candidate.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up client by name: %w", err)
	}

	inserted, err := clients.InsertClientIfAbsent(ctx, candidate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert client: %w", err)
	}
	if inserted {
		return &candidate, true, nil
	}

	winner, err := clients.FindClientByName(ctx, candidate.ProfileID, candidate.Name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to re-read concurrently created client: %w", err)
	}
	return winner, false, nil
}

// resolveClientRef resolves a client given by ID, or by name when the ID is empty.
func resolveClientRef(ctx context.Context, clients portsrepo.ClientRepositoryFacade, profileID, clientID, clientName string, now time.Time) (*domain.Client, error) {
	if clientID != "" {
		c, err := clients.FindClientByID(ctx, profileID, clientID)
		if err != nil {
			return nil, fmt.Errorf("client %s: %w", clientID, err)
		}
		return c, nil
	}
	c, _, err := findOrInsertClient(ctx, clients, newClient(profileID, clientName, now))
	return c, err
}

// recomputeClientStats locks the client and rewrites its derived fields from a
// full scan of its service orders. Must run inside a transaction.
func recomputeClientStats(ctx context.Context, repos portsrepo.TxRepositories, profileID, clientID string, now time.Time) (domain.ClientStats, error) {
	if err := repos.Clients.LockClientForUpdate(ctx, profileID, clientID); err != nil {
		return domain.ClientStats{}, fmt.Errorf("failed to lock client %s: %w", clientID, err)
	}
	stats, err := repos.ServiceOrders.AggregateClientStats(ctx, clientID)
	if err != nil {
		return domain.ClientStats{}, fmt.Errorf("failed to aggregate client %s: %w", clientID, err)
	}
	if err := repos.Clients.UpdateClientStats(ctx, clientID, stats, now); err != nil {
		return domain.ClientStats{}, fmt.Errorf("failed to store statistics of client %s: %w", clientID, err)
	}
	return stats, nil
}

// findOrInsertCounter returns the counter of client, creating it with a zero total.
func findOrInsertCounter(ctx context.Context, counters portsrepo.PieceCounterRepositoryFacade, client *domain.Client, now time.Time) (*domain.PieceCounter, bool, error) {
	existing, err := counters.FindCounterByClient(ctx, client.ProfileID, client.ClientID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up counter: %w", err)
	}

	candidate := domain.PieceCounter{
		CounterID:   uuid.NewString(),
		ProfileID:   client.ProfileID,
		ClientID:    client.ClientID,
		ClientName:  client.Name,
		TotalPieces: 0,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	inserted, err := counters.InsertCounterIfAbsent(ctx, candidate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert counter: %w", err)
	}
	if inserted {
		return &candidate, true, nil
	}

	winner, err := counters.FindCounterByClient(ctx, client.ProfileID, client.ClientID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to re-read concurrently created counter: %w", err)
	}
	return winner, false, nil
}
