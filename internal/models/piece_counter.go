package models

import "time"

// PieceCounter mirrors the piece_counters table.
type PieceCounter struct {
	CounterID   string `db:"counter_id"`
	ProfileID   string `db:"profile_id"`
	ClientID    string `db:"client_id"`
	ClientName  string `db:"client_name"`
	TotalPieces int64  `db:"total_pieces"`
	AuditFields
}

// PieceCounterEntry mirrors the piece_counter_history table.
type PieceCounterEntry struct {
	EntryID     string    `db:"entry_id"`
	CounterID   string    `db:"counter_id"`
	ProfileID   string    `db:"profile_id"`
	Delta       int64     `db:"delta"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
