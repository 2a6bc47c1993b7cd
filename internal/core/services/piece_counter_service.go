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
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type pieceCounterService struct {
	BaseService
	counterRepo portsrepo.PieceCounterRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewPieceCounterService creates a new PieceCounterService.
func NewPieceCounterService(counterRepo portsrepo.PieceCounterRepositoryFacade, txManager portsrepo.TransactionManager) portssvc.PieceCounterSvcFacade {
	return &pieceCounterService{counterRepo: counterRepo, txManager: txManager}
}

func (s *pieceCounterService) ResolveOrCreateCounter(ctx context.Context, profileID, clientID, clientName string) (*domain.PieceCounter, bool, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, false, err
	}

	var counter *domain.PieceCounter
	var created bool
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		now := time.Now().UTC()
		client, err := resolveClientRef(ctx, repos.Clients, profileID, clientID, clientName, now)
		if err != nil {
			return err
		}
		counter, created, err = findOrInsertCounter(ctx, repos.PieceCounters, client, now)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve piece counter")
		return nil, false, err
	}
	if created {
		s.LogInfo(ctx, "Piece counter created", slog.String("counter_id", counter.CounterID), slog.String("client_id", counter.ClientID))
	}
	return counter, created, nil
}

// AddPieces records the movement and increments the total atomically in the store.
func (s *pieceCounterService) AddPieces(ctx context.Context, profileID string, req dto.AddPiecesRequest) (*domain.PieceCounter, *domain.PieceCounterEntry, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, nil, err
	}
	if req.Delta == 0 {
		return nil, nil, fmt.Errorf("%w: delta cannot be zero", apperrors.ErrValidation)
	}

	var counter *domain.PieceCounter
	var entry domain.PieceCounterEntry
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		now := time.Now().UTC()
		client, err := resolveClientRef(ctx, repos.Clients, profileID, req.ClientID, req.ClientName, now)
		if err != nil {
			return err
		}
		counter, _, err = findOrInsertCounter(ctx, repos.PieceCounters, client, now)
		if err != nil {
			return err
		}

		entry = domain.PieceCounterEntry{
			EntryID:     uuid.NewString(),
			CounterID:   counter.CounterID,
			ProfileID:   profileID,
			Delta:       req.Delta,
			Description: req.Description,
			CreatedAt:   now,
		}
		if err := repos.PieceCounters.AppendCounterEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to append history entry: %w", err)
		}
		total, err := repos.PieceCounters.IncrementCounterTotal(ctx, counter.CounterID, req.Delta, now)
		if err != nil {
			return fmt.Errorf("failed to increment counter: %w", err)
		}
		counter.TotalPieces = total
		counter.LastUpdatedAt = now
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add pieces")
		return nil, nil, err
	}

	s.LogInfo(ctx, "Pieces recorded",
		slog.String("counter_id", counter.CounterID),
		slog.Int64("delta", req.Delta),
		slog.Int64("total", counter.TotalPieces))
	return counter, &entry, nil
}

func (s *pieceCounterService) ListCounters(ctx context.Context, profileID string) ([]domain.PieceCounter, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	counters, err := s.counterRepo.ListCounters(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	return counters, nil
}

func (s *pieceCounterService) GetCounter(ctx context.Context, profileID, counterID string, params dto.ListCounterEntriesParams) (*domain.PieceCounter, []domain.PieceCounterEntry, *string, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, nil, nil, err
	}
	counter, err := s.counterRepo.FindCounterByID(ctx, profileID, counterID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get counter %s: %w", counterID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	entries, next, err := s.counterRepo.ListCounterEntries(ctx, profileID, counterID, limit, params.NextToken)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list counter history: %w", err)
	}
	return counter, entries, next, nil
}

func (s *pieceCounterService) ReconcileCounter(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}

	var counter *domain.PieceCounter
	var stored int64
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		// Lock before summing so no in-flight increment is summed out and then overwritten.
		counter, err = repos.PieceCounters.LockCounterForUpdate(ctx, profileID, counterID)
		if err != nil {
			return fmt.Errorf("counter %s: %w", counterID, err)
		}
		stored = counter.TotalPieces

		sum, err := repos.PieceCounters.SumCounterEntries(ctx, counterID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := repos.PieceCounters.SetCounterTotal(ctx, counterID, sum, now); err != nil {
			return err
		}
		counter.TotalPieces = sum
		counter.LastUpdatedAt = now
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile counter", slog.String("counter_id", counterID))
		return nil, err
	}
	if stored != counter.TotalPieces {
		s.LogInfo(ctx, "Piece counter drift corrected",
			slog.String("counter_id", counterID),
			slog.Int64("stored_total", stored),
			slog.Int64("derived_total", counter.TotalPieces))
	}
	return counter, nil
}
