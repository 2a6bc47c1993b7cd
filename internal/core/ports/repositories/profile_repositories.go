package repositories

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ProfileRepository defines persistence for accounts.
type ProfileRepository interface {
	// EnsureProfile inserts the profile unless one with the same ID exists and
	// returns the stored row. created reports whether this call inserted it.
	EnsureProfile(ctx context.Context, profile domain.Profile) (stored *domain.Profile, created bool, err error)

	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// UpdateProfile updates the editable profile fields.
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}
