package dto

import (
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// UpdateProfileRequest defines the editable profile fields.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"displayName" binding:"omitempty,max=120"`
	BusinessName *string `json:"businessName" binding:"omitempty,max=120"`
	Phone        *string `json:"phone" binding:"omitempty,max=40"`
}

// ProfileResponse defines the data returned for the current account.
type ProfileResponse struct {
	ProfileID     string    `json:"profileID"`
	DisplayName   string    `json:"displayName"`
	BusinessName  string    `json:"businessName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:     p.ProfileID,
		DisplayName:   p.DisplayName,
		BusinessName:  p.BusinessName,
		Email:         p.Email,
		Phone:         p.Phone,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}
