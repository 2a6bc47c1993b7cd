package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceOrderMappingKeepsStatusAndDate(t *testing.T) {
	due := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	d := domain.ServiceOrder{
		ServiceID:    "s1",
		ClientID:     "c1",
		Value:        decimal.RequireFromString("35.90"),
		DeliveryDate: &due,
		Status:       domain.StatusDelivered,
	}

	m := ToModelServiceOrder(d)
	assert.Equal(t, "delivered", m.Status)

	back := ToDomainServiceOrder(m)
	assert.Equal(t, domain.StatusDelivered, back.Status)
	assert.True(t, d.Value.Equal(back.Value))
	assert.Equal(t, &due, back.DeliveryDate)
}

func TestSliceMappingOfNilIsEmpty(t *testing.T) {
	clients := ToDomainClientSlice(nil)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	ds := ToDomainPieceCounterEntrySlice(nil)
	assert.Empty(t, ds)
}
