package domain

import "time"

// PieceCounter keeps the running number of pieces held for one client.
// TotalPieces is incremented per history entry and may go negative.
type PieceCounter struct {
	CounterID   string `json:"counterID"`
	ProfileID   string `json:"profileID"`
	ClientID    string `json:"clientID"`
	ClientName  string `json:"clientName"`
	TotalPieces int64  `json:"totalPieces"`
	AuditFields
}

// PieceCounterEntry is an immutable movement of pieces on a counter.
type PieceCounterEntry struct {
	EntryID     string    `json:"entryID"`
	CounterID   string    `json:"counterID"`
	ProfileID   string    `json:"profileID"`
	Delta       int64     `json:"delta"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
