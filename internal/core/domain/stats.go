package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeClientStats derives a client's statistics from the full set of its
// service orders: the sum of paid values and the latest creation time of any
// order. An empty set yields zero and nil.
func ComputeClientStats(orders []ServiceOrder) ClientStats {
	stats := ClientStats{TotalSpent: decimal.Zero}
	for _, o := range orders {
		if o.Status == StatusPaid {
			stats.TotalSpent = stats.TotalSpent.Add(o.Value)
		}
		if stats.LastServiceDate == nil || o.CreatedAt.After(*stats.LastServiceDate) {
			created := o.CreatedAt
			stats.LastServiceDate = &created
		}
	}
	return stats
}

// SumPieceDeltas is the full-ledger value of a piece counter.
func SumPieceDeltas(entries []PieceCounterEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Delta
	}
	return total
}

// Equal compares two stats by value; timestamps are compared as instants.
func (s ClientStats) Equal(other ClientStats) bool {
	if !s.TotalSpent.Equal(other.TotalSpent) {
		return false
	}
	return sameInstant(s.LastServiceDate, other.LastServiceDate)
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
