package services

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/dto"
)

// ProfileSvcFacade manages the account of the authenticated user.
type ProfileSvcFacade interface {
	// EnsureProfile creates the profile on first sight. It is idempotent.
	EnsureProfile(ctx context.Context, profileID, email string) (*domain.Profile, error)

	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)

	UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
}
