package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// PieceCounterReader defines read operations for piece counters and their history.
type PieceCounterReader interface {
	// FindCounterByID retrieves a counter of the given profile.
	FindCounterByID(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error)

	// FindCounterByClient retrieves the counter of a client.
	FindCounterByClient(ctx context.Context, profileID, clientID string) (*domain.PieceCounter, error)

	// ListCounters retrieves every counter of the profile ordered by client name.
	ListCounters(ctx context.Context, profileID string) ([]domain.PieceCounter, error)

	// ListCounterEntries retrieves history entries newest first using token-based pagination.
	ListCounterEntries(ctx context.Context, profileID, counterID string, limit int, nextToken *string) ([]domain.PieceCounterEntry, *string, error)

	// SumCounterEntries returns the sum of every delta recorded for the counter.
	SumCounterEntries(ctx context.Context, counterID string) (int64, error)
}

// PieceCounterWriter defines write operations for piece counters.
type PieceCounterWriter interface {
	// InsertCounterIfAbsent inserts the counter unless the client already has one.
	// It reports whether a row was inserted.
	InsertCounterIfAbsent(ctx context.Context, counter domain.PieceCounter) (bool, error)

	// AppendCounterEntry appends an immutable history entry.
	AppendCounterEntry(ctx context.Context, entry domain.PieceCounterEntry) error

	// IncrementCounterTotal atomically adds delta to the running total and returns the new total.
	IncrementCounterTotal(ctx context.Context, counterID string, delta int64, now time.Time) (int64, error)

	// LockCounterForUpdate reads a counter and locks its row until the surrounding
	// transaction ends. Concurrent increments wait for the lock holder.
	LockCounterForUpdate(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error)

	// SetCounterTotal overwrites the running total, used by reconciliation only.
	SetCounterTotal(ctx context.Context, counterID string, total int64, now time.Time) error
}

// PieceCounterRepositoryFacade combines all piece-counter repository interfaces.
type PieceCounterRepositoryFacade interface {
	PieceCounterReader
	PieceCounterWriter
}
