package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) EnsureProfile(ctx context.Context, profileID, email string) (*domain.Profile, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	// Runs on every authenticated request; the insert is only attempted for unknown accounts.
	existing, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up profile", slog.String("profile_id", profileID))
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	now := time.Now().UTC()
	profile, created, err := s.profileRepo.EnsureProfile(ctx, domain.Profile{
		ProfileID:   profileID,
		Email:       email,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure profile", slog.String("profile_id", profileID))
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	if created {
		s.LogInfo(ctx, "Profile created", slog.String("profile_id", profileID))
	}
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	if err := s.RequireProfile(profileID); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = domain.NormalizeName(*req.DisplayName)
	}
	if req.BusinessName != nil {
		profile.BusinessName = domain.NormalizeName(*req.BusinessName)
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	profile.LastUpdatedAt = time.Now().UTC()

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("profile_id", profileID))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
