package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/SscSPs/costureira_pro/internal/core/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ServiceOrderRepository ---
type MockServiceOrderRepository struct {
	mock.Mock
}

func (m *MockServiceOrderRepository) FindServiceOrderByID(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, profileID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) ListServiceOrders(ctx context.Context, profileID string, filter domain.ServiceOrderFilter, limit int, nextToken *string) ([]domain.ServiceOrder, *string, error) {
	args := m.Called(ctx, profileID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.ServiceOrder), next, args.Error(2)
}

func (m *MockServiceOrderRepository) AggregateClientStats(ctx context.Context, clientID string) (domain.ClientStats, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(domain.ClientStats), args.Error(1)
}

func (m *MockServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockServiceOrderRepository) UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockServiceOrderRepository) LockServiceOrderForUpdate(ctx context.Context, profileID, serviceID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, profileID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) DeleteServiceOrder(ctx context.Context, profileID, serviceID string) error {
	return m.Called(ctx, profileID, serviceID).Error(0)
}

// --- Mock PieceCounterRepository ---
type MockPieceCounterRepository struct {
	mock.Mock
}

func (m *MockPieceCounterRepository) counter(args mock.Arguments) (*domain.PieceCounter, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PieceCounter), args.Error(1)
}

func (m *MockPieceCounterRepository) FindCounterByID(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	return m.counter(m.Called(ctx, profileID, counterID))
}

func (m *MockPieceCounterRepository) FindCounterByClient(ctx context.Context, profileID, clientID string) (*domain.PieceCounter, error) {
	return m.counter(m.Called(ctx, profileID, clientID))
}

func (m *MockPieceCounterRepository) ListCounters(ctx context.Context, profileID string) ([]domain.PieceCounter, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PieceCounter), args.Error(1)
}

func (m *MockPieceCounterRepository) ListCounterEntries(ctx context.Context, profileID, counterID string, limit int, nextToken *string) ([]domain.PieceCounterEntry, *string, error) {
	args := m.Called(ctx, profileID, counterID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.PieceCounterEntry), next, args.Error(2)
}

func (m *MockPieceCounterRepository) SumCounterEntries(ctx context.Context, counterID string) (int64, error) {
	args := m.Called(ctx, counterID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPieceCounterRepository) InsertCounterIfAbsent(ctx context.Context, counter domain.PieceCounter) (bool, error) {
	args := m.Called(ctx, counter)
	return args.Bool(0), args.Error(1)
}

func (m *MockPieceCounterRepository) AppendCounterEntry(ctx context.Context, entry domain.PieceCounterEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockPieceCounterRepository) IncrementCounterTotal(ctx context.Context, counterID string, delta int64, now time.Time) (int64, error) {
	args := m.Called(ctx, counterID, delta, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPieceCounterRepository) LockCounterForUpdate(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	return m.counter(m.Called(ctx, profileID, counterID))
}

func (m *MockPieceCounterRepository) SetCounterTotal(ctx context.Context, counterID string, total int64, now time.Time) error {
	return m.Called(ctx, counterID, total, now).Error(0)
}

func newOrderMocks() (*MockServiceOrderRepository, *MockClientRepository, *mockTxManager) {
	orders := new(MockServiceOrderRepository)
	clients := new(MockClientRepository)
	tx := &mockTxManager{repos: portsrepo.TxRepositories{Clients: clients, ServiceOrders: orders}}
	return orders, clients, tx
}

func expectRecompute(orders *MockServiceOrderRepository, clients *MockClientRepository, clientID string, stats domain.ClientStats) {
	clients.On("LockClientForUpdate", mock.Anything, profileA, clientID).Return(nil).Once()
	orders.On("AggregateClientStats", mock.Anything, clientID).Return(stats, nil).Once()
	clients.On("UpdateClientStats", mock.Anything, clientID, stats, mock.AnythingOfType("time.Time")).Return(nil).Once()
}

// A move committed by another request before the delete acquired the row must
// be honoured: the client the order belongs to now is the one recomputed.
func TestDeleteServiceOrder_RecomputesClientOfLockedRow(t *testing.T) {
	orders, clients, tx := newOrderMocks()
	svc := services.NewServiceOrderService(orders, tx)

	locked := &domain.ServiceOrder{ServiceID: "s1", ProfileID: profileA, ClientID: "client-b", Value: decimal.NewFromInt(50), Status: domain.StatusPaid}
	orders.On("LockServiceOrderForUpdate", mock.Anything, profileA, "s1").Return(locked, nil).Once()
	orders.On("DeleteServiceOrder", mock.Anything, profileA, "s1").Return(nil).Once()
	expectRecompute(orders, clients, "client-b", domain.ClientStats{TotalSpent: decimal.Zero})

	require.NoError(t, svc.DeleteServiceOrder(context.Background(), profileA, "s1"))

	orders.AssertNotCalled(t, "FindServiceOrderByID", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	clients.AssertExpectations(t)
}

func TestDeleteServiceOrder_NotFoundWritesNothing(t *testing.T) {
	orders, clients, tx := newOrderMocks()
	svc := services.NewServiceOrderService(orders, tx)

	orders.On("LockServiceOrderForUpdate", mock.Anything, profileA, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := svc.DeleteServiceOrder(context.Background(), profileA, "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	orders.AssertNotCalled(t, "DeleteServiceOrder", mock.Anything, mock.Anything, mock.Anything)
	clients.AssertNotCalled(t, "LockClientForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

// Partial updates are applied on top of the locked row so a concurrent edit of
// another field is kept.
func TestUpdateServiceOrder_AppliesChangesToLockedRow(t *testing.T) {
	orders, clients, tx := newOrderMocks()
	svc := services.NewServiceOrderService(orders, tx)

	locked := &domain.ServiceOrder{
		ServiceID:   "s1",
		ProfileID:   profileA,
		ClientID:    "client-a",
		Description: "Bainha",
		Value:       decimal.RequireFromString("35.00"),
		Status:      domain.StatusPaid,
	}
	orders.On("LockServiceOrderForUpdate", mock.Anything, profileA, "s1").Return(locked, nil).Once()
	orders.On("UpdateServiceOrder", mock.Anything, mock.MatchedBy(func(o domain.ServiceOrder) bool {
		return o.Description == "Bainha italiana" &&
			o.Value.Equal(decimal.RequireFromString("35.00")) &&
			o.Status == domain.StatusPaid &&
			o.ClientID == "client-a"
	})).Return(nil).Once()
	expectRecompute(orders, clients, "client-a", domain.ClientStats{TotalSpent: decimal.RequireFromString("35.00")})

	description := "Bainha italiana"
	updated, err := svc.UpdateServiceOrder(context.Background(), profileA, "s1", dto.UpdateServiceOrderRequest{Description: &description})

	require.NoError(t, err)
	assert.Equal(t, "Bainha italiana", updated.Description)
	orders.AssertNotCalled(t, "FindServiceOrderByID", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	clients.AssertExpectations(t)
}

func TestReconcileCounter_LocksBeforeSumming(t *testing.T) {
	counters := new(MockPieceCounterRepository)
	tx := &mockTxManager{repos: portsrepo.TxRepositories{PieceCounters: counters}}
	svc := services.NewPieceCounterService(counters, tx)

	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}
	counters.On("LockCounterForUpdate", mock.Anything, profileA, "k1").
		Return(&domain.PieceCounter{CounterID: "k1", ProfileID: profileA, TotalPieces: 999}, nil).
		Run(record("lock")).Once()
	counters.On("SumCounterEntries", mock.Anything, "k1").Return(int64(7), nil).Run(record("sum")).Once()
	counters.On("SetCounterTotal", mock.Anything, "k1", int64(7), mock.AnythingOfType("time.Time")).Return(nil).Run(record("set")).Once()

	counter, err := svc.ReconcileCounter(context.Background(), profileA, "k1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), counter.TotalPieces)
	assert.Equal(t, []string{"lock", "sum", "set"}, calls)
	counters.AssertNotCalled(t, "FindCounterByID", mock.Anything, mock.Anything, mock.Anything)
	counters.AssertExpectations(t)
}
