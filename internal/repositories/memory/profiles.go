package memory

import (
	"context"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

func (v *view) EnsureProfile(_ context.Context, profile domain.Profile) (*domain.Profile, bool, error) {
	defer v.lock()()
	if stored, ok := v.st().profiles[profile.ProfileID]; ok {
		return &stored, false, nil
	}
	v.st().profiles[profile.ProfileID] = profile
	return &profile, true, nil
}

func (v *view) FindProfileByID(_ context.Context, profileID string) (*domain.Profile, error) {
	defer v.lock()()
	p, ok := v.st().profiles[profileID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (v *view) UpdateProfile(_ context.Context, profile domain.Profile) error {
	defer v.lock()()
	stored, ok := v.st().profiles[profile.ProfileID]
	if !ok {
		return apperrors.ErrNotFound
	}
	profile.CreatedAt = stored.CreatedAt
	v.st().profiles[profile.ProfileID] = profile
	return nil
}
