package services

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/dto"
)

// PieceCounterSvcFacade manages per-client piece counters.
type PieceCounterSvcFacade interface {
	// ResolveOrCreateCounter returns the counter of the client, creating it
	// (and the client, when only a name is given) if absent.
	ResolveOrCreateCounter(ctx context.Context, profileID, clientID, clientName string) (*domain.PieceCounter, bool, error)

	// AddPieces appends a history entry and applies its delta to the running total.
	AddPieces(ctx context.Context, profileID string, req dto.AddPiecesRequest) (*domain.PieceCounter, *domain.PieceCounterEntry, error)

	ListCounters(ctx context.Context, profileID string) ([]domain.PieceCounter, error)

	// GetCounter returns the counter with a page of its history, newest first.
	GetCounter(ctx context.Context, profileID, counterID string, params dto.ListCounterEntriesParams) (*domain.PieceCounter, []domain.PieceCounterEntry, *string, error)

	// ReconcileCounter resets the running total to the sum of the history.
	ReconcileCounter(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error)
}
