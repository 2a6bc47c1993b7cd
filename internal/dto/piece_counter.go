package dto

import (
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

// ResolveCounterRequest asks for the counter of a client, creating it (and the
// client, when only a name is given) if absent.
type ResolveCounterRequest struct {
	ClientID   string `json:"clientID"`
	ClientName string `json:"clientName" binding:"required_without=ClientID,max=120"`
}

// ResolveCounterResponse returns the resolved counter ID.
type ResolveCounterResponse struct {
	CounterID string `json:"counterID"`
	ClientID  string `json:"clientID"`
	Created   bool   `json:"created"`
}

// AddPiecesRequest records a signed movement of pieces for a client.
type AddPiecesRequest struct {
	ClientID    string `json:"clientID"`
	ClientName  string `json:"clientName" binding:"required_without=ClientID,max=120"`
	Delta       int64  `json:"delta" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// PieceCounterResponse defines the data returned for a counter.
type PieceCounterResponse struct {
	CounterID     string    `json:"counterID"`
	ClientID      string    `json:"clientID"`
	ClientName    string    `json:"clientName"`
	TotalPieces   int64     `json:"totalPieces"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// PieceCounterEntryResponse defines the data returned for a history entry.
type PieceCounterEntryResponse struct {
	EntryID     string    `json:"entryID"`
	Delta       int64     `json:"delta"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddPiecesResponse returns the updated counter and the recorded entry.
type AddPiecesResponse struct {
	Counter PieceCounterResponse      `json:"counter"`
	Entry   PieceCounterEntryResponse `json:"entry"`
}

// ListCounterEntriesParams defines query parameters for a counter's history.
type ListCounterEntriesParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// PieceCounterDetailResponse is a counter with a page of its history.
type PieceCounterDetailResponse struct {
	Counter   PieceCounterResponse        `json:"counter"`
	History   []PieceCounterEntryResponse `json:"history"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

// ListCountersResponse wraps the list of counters.
type ListCountersResponse struct {
	Counters []PieceCounterResponse `json:"counters"`
}

// ToPieceCounterResponse converts a domain.PieceCounter to PieceCounterResponse DTO.
func ToPieceCounterResponse(c *domain.PieceCounter) PieceCounterResponse {
	return PieceCounterResponse{
		CounterID:     c.CounterID,
		ClientID:      c.ClientID,
		ClientName:    c.ClientName,
		TotalPieces:   c.TotalPieces,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToPieceCounterEntryResponse converts a domain.PieceCounterEntry.
func ToPieceCounterEntryResponse(e *domain.PieceCounterEntry) PieceCounterEntryResponse {
	return PieceCounterEntryResponse{
		EntryID:     e.EntryID,
		Delta:       e.Delta,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToPieceCounterEntryResponses converts a slice of history entries.
func ToPieceCounterEntryResponses(entries []domain.PieceCounterEntry) []PieceCounterEntryResponse {
	res := make([]PieceCounterEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToPieceCounterEntryResponse(&entries[i])
	}
	return res
}

// ToListCountersResponse converts a slice of counters.
func ToListCountersResponse(counters []domain.PieceCounter) ListCountersResponse {
	res := make([]PieceCounterResponse, len(counters))
	for i := range counters {
		res[i] = ToPieceCounterResponse(&counters[i])
	}
	return ListCountersResponse{Counters: res}
}
