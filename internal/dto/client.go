package dto

import (
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils"
	"github.com/shopspring/decimal"
)

// ResolveClientRequest asks for the client with the given name, creating it when absent.
type ResolveClientRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// ResolveClientResponse returns the resolved client ID.
type ResolveClientResponse struct {
	ClientID string `json:"clientID"`
	Created  bool   `json:"created"`
}

// CreateClientRequest defines the data needed to create a client explicitly.
// Derived statistics are not accepted.
type CreateClientRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	Phone      string `json:"phone" binding:"omitempty,max=40"`
	Email      string `json:"email" binding:"omitempty,email"`
	Address    string `json:"address" binding:"omitempty,max=255"`
	Notes      string `json:"notes"`
	IsFavorite bool   `json:"isFavorite"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=120"`
	Phone      *string `json:"phone" binding:"omitempty,max=40"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Address    *string `json:"address" binding:"omitempty,max=255"`
	Notes      *string `json:"notes"`
	IsFavorite *bool   `json:"isFavorite"`
}

// SetFavoriteRequest toggles the favorite flag.
type SetFavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID        string          `json:"clientID"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Address         string          `json:"address"`
	Notes           string          `json:"notes"`
	IsFavorite      bool            `json:"isFavorite"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	LastServiceDate *time.Time      `json:"lastServiceDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Search        string `form:"search"`
	FavoritesOnly bool   `form:"favorites"`
	Limit         int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset        int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:        c.ClientID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
		Notes:           c.Notes,
		IsFavorite:      c.IsFavorite,
		TotalSpent:      utils.RoundMoney(c.TotalSpent),
		LastServiceDate: c.LastServiceDate,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: res}
}
