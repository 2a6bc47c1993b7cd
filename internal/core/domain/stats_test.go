package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(value string, status domain.ServiceStatus, createdAt time.Time) domain.ServiceOrder {
	return domain.ServiceOrder{
		Value:       decimal.RequireFromString(value),
		Status:      status,
		AuditFields: domain.AuditFields{CreatedAt: createdAt},
	}
}

func TestComputeClientStats(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	tests := []struct {
		name      string
		orders    []domain.ServiceOrder
		wantTotal string
		wantLast  *time.Time
	}{
		{
			name:      "no services",
			orders:    nil,
			wantTotal: "0",
			wantLast:  nil,
		},
		{
			name: "only paid counted",
			orders: []domain.ServiceOrder{
				order("120.00", domain.StatusPaid, t1),
				order("80.00", domain.StatusInProgress, t2),
			},
			wantTotal: "120.00",
			wantLast:  &t2,
		},
		{
			name: "all paid",
			orders: []domain.ServiceOrder{
				order("120.00", domain.StatusPaid, t1),
				order("80.00", domain.StatusPaid, t2),
			},
			wantTotal: "200.00",
			wantLast:  &t2,
		},
		{
			name: "last date ignores status and order",
			orders: []domain.ServiceOrder{
				order("15.50", domain.StatusDelivered, t2),
				order("10.00", domain.StatusPaid, t1),
			},
			wantTotal: "10.00",
			wantLast:  &t2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeClientStats(tt.orders)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(got.TotalSpent), "total spent: got %s", got.TotalSpent)
			if tt.wantLast == nil {
				assert.Nil(t, got.LastServiceDate)
				return
			}
			require.NotNil(t, got.LastServiceDate)
			assert.True(t, tt.wantLast.Equal(*got.LastServiceDate))
		})
	}
}

func TestSumPieceDeltas(t *testing.T) {
	assert.Equal(t, int64(0), domain.SumPieceDeltas(nil))
	assert.Equal(t, int64(7), domain.SumPieceDeltas([]domain.PieceCounterEntry{{Delta: 10}, {Delta: -3}}))
	assert.Equal(t, int64(-5), domain.SumPieceDeltas([]domain.PieceCounterEntry{{Delta: 2}, {Delta: -7}}))
}

func TestClientStatsEqual(t *testing.T) {
	now := time.Now()
	sameNow := now.In(time.FixedZone("BRT", -3*60*60))

	a := domain.ClientStats{TotalSpent: decimal.RequireFromString("10.0"), LastServiceDate: &now}
	b := domain.ClientStats{TotalSpent: decimal.RequireFromString("10.00"), LastServiceDate: &sameNow}
	assert.True(t, a.Equal(b))

	b.LastServiceDate = nil
	assert.False(t, a.Equal(b))
	assert.True(t, domain.ClientStats{TotalSpent: decimal.Zero}.Equal(domain.ClientStats{TotalSpent: decimal.Zero}))
}

func TestServiceStatusIsValid(t *testing.T) {
	for _, s := range domain.AllServiceStatuses {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, domain.ServiceStatus("cancelled").IsValid())
	assert.False(t, domain.ServiceStatus("").IsValid())
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "ana", domain.NameKey("  Ana "))
	assert.Equal(t, domain.NameKey("ana"), domain.NameKey("ANA"))
	assert.Equal(t, "Ana Maria", domain.NormalizeName(" Ana Maria\t"))
}
