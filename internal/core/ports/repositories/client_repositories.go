package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ClientReader defines read operations for client data. Every lookup is
// scoped by the owning profile.
type ClientReader interface {
	// FindClientByID retrieves a client of the given profile.
	FindClientByID(ctx context.Context, profileID, clientID string) (*domain.Client, error)

	// FindClientByName matches the name case-insensitively within the profile.
	FindClientByName(ctx context.Context, profileID, name string) (*domain.Client, error)

	// ListClients retrieves a filtered, paginated list of clients ordered by name.
	ListClients(ctx context.Context, profileID string, filter domain.ClientFilter) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// InsertClientIfAbsent inserts the client unless the profile already has a
	// client with the same case-folded name. It reports whether a row was inserted.
	InsertClientIfAbsent(ctx context.Context, client domain.Client) (bool, error)

	// UpdateClient updates name, contact fields and the favorite flag.
	// Derived fields are never touched. Returns ErrDuplicate on a name clash.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes the client and, by cascade, its services and counter.
	DeleteClient(ctx context.Context, profileID, clientID string) error
}

// ClientStatsWriter defines the operations used by the statistics recomputation.
type ClientStatsWriter interface {
	// LockClientForUpdate locks the client row until the surrounding transaction ends.
	LockClientForUpdate(ctx context.Context, profileID, clientID string) error

	// UpdateClientStats stores freshly recomputed derived fields.
	UpdateClientStats(ctx context.Context, clientID string, stats domain.ClientStats, now time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientStatsWriter
}
