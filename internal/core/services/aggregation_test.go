package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/core/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/SscSPs/costureira_pro/internal/repositories/memory"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const profileA = "profile-a"

type AggregationTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svcs  *portssvc.ServiceContainer
}

func (s *AggregationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.svcs = services.NewServiceContainer(s.store.Provider())
	_, err := s.svcs.Profile.EnsureProfile(s.ctx, profileA, "")
	s.Require().NoError(err)
}

func (s *AggregationTestSuite) client(id string) *domain.Client {
	c, err := s.svcs.Client.GetClient(s.ctx, profileA, id)
	s.Require().NoError(err)
	return c
}

func (s *AggregationTestSuite) createOrder(clientID, value string, status domain.ServiceStatus) *domain.ServiceOrder {
	order, err := s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileA, dto.CreateServiceOrderRequest{
		ClientID:    clientID,
		Description: gofakeit.Sentence(3),
		Value:       decimal.RequireFromString(value),
		Status:      status,
	})
	s.Require().NoError(err)
	return order
}

func (s *AggregationTestSuite) assertStats(clientID, wantTotal string, wantLast *domain.ServiceOrder) {
	c := s.client(clientID)
	s.True(decimal.RequireFromString(wantTotal).Equal(c.TotalSpent), "total spent: got %s want %s", c.TotalSpent, wantTotal)
	if wantLast == nil {
		s.Nil(c.LastServiceDate)
		return
	}
	s.Require().NotNil(c.LastServiceDate)
	s.True(wantLast.CreatedAt.Equal(*c.LastServiceDate))
}

func (s *AggregationTestSuite) TestResolveClientIsIdempotentAndCaseInsensitive() {
	id1, created, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	s.True(created)

	id2, created, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(id1, id2)

	id3, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "  ana ")
	s.Require().NoError(err)
	s.Equal(id1, id3)

	clients, err := s.svcs.Client.ListClients(s.ctx, profileA, dto.ListClientsParams{})
	s.Require().NoError(err)
	s.Len(clients, 1)
	s.Equal("Ana", clients[0].Name)
}

func (s *AggregationTestSuite) TestResolveClientRejectsEmptyName() {
	_, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "   ")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AggregationTestSuite) TestResolveClientRequiresProfile() {
	_, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, "", "Ana")
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *AggregationTestSuite) TestConcurrentResolveReturnsSameID() {
	const workers = 16
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Beatriz")
			assert.NoError(s.T(), err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(ids[0], id)
	}
	clients, err := s.svcs.Client.ListClients(s.ctx, profileA, dto.ListClientsParams{})
	s.Require().NoError(err)
	s.Len(clients, 1)
}

func (s *AggregationTestSuite) TestClientStatisticsScenario() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	s.assertStats(anaID, "0", nil)

	first := s.createOrder(anaID, "120.00", domain.StatusPaid)
	s.assertStats(anaID, "120.00", first)

	second := s.createOrder(anaID, "80.00", domain.StatusInProgress)
	s.assertStats(anaID, "120.00", second)

	_, err = s.svcs.ServiceOrder.UpdateServiceStatus(s.ctx, profileA, second.ServiceID, domain.StatusPaid)
	s.Require().NoError(err)
	s.assertStats(anaID, "200.00", second)

	s.Require().NoError(s.svcs.ServiceOrder.DeleteServiceOrder(s.ctx, profileA, first.ServiceID))
	s.assertStats(anaID, "80.00", second)

	s.Require().NoError(s.svcs.ServiceOrder.DeleteServiceOrder(s.ctx, profileA, second.ServiceID))
	s.assertStats(anaID, "0", nil)
}

func (s *AggregationTestSuite) TestDescriptionOnlyUpdateKeepsStats() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	order := s.createOrder(anaID, "50.00", domain.StatusPaid)

	description := "Barra da calça"
	updated, err := s.svcs.ServiceOrder.UpdateServiceOrder(s.ctx, profileA, order.ServiceID, dto.UpdateServiceOrderRequest{Description: &description})
	s.Require().NoError(err)
	s.Equal(description, updated.Description)
	s.assertStats(anaID, "50.00", order)
}

func (s *AggregationTestSuite) TestCreateOrderByNameCreatesClient() {
	order, err := s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileA, dto.CreateServiceOrderRequest{
		ClientName:  "Carla",
		Description: "Ajuste de vestido",
		Value:       decimal.RequireFromString("35.50"),
		Status:      domain.StatusPaid,
	})
	s.Require().NoError(err)
	s.Equal("Carla", order.ClientName)

	id, created, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "carla")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(order.ClientID, id)
	s.assertStats(id, "35.50", order)
}

func (s *AggregationTestSuite) TestMovingOrderRecomputesBothClients() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	biaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Bia")
	s.Require().NoError(err)
	order := s.createOrder(anaID, "90.00", domain.StatusPaid)

	_, err = s.svcs.ServiceOrder.UpdateServiceOrder(s.ctx, profileA, order.ServiceID, dto.UpdateServiceOrderRequest{ClientID: &biaID})
	s.Require().NoError(err)

	s.assertStats(anaID, "0", nil)
	s.assertStats(biaID, "90.00", order)
}

func (s *AggregationTestSuite) TestInvalidWritesLeaveNoTrace() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)

	_, err = s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileA, dto.CreateServiceOrderRequest{
		ClientID: anaID, Description: "x", Value: decimal.RequireFromString("-1"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileA, dto.CreateServiceOrderRequest{
		ClientID: anaID, Description: "x", Value: decimal.Zero, Status: "cancelled",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	// Unknown client ID aborts the whole transaction.
	_, err = s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileA, dto.CreateServiceOrderRequest{
		ClientID: "missing", Description: "x", Value: decimal.Zero,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	orders, _, err := s.svcs.ServiceOrder.ListServiceOrders(s.ctx, profileA, dto.ListServiceOrdersParams{})
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *AggregationTestSuite) TestPieceCounterScenario() {
	counter, entry, err := s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "Ana", Delta: 10})
	s.Require().NoError(err)
	s.Equal(int64(10), counter.TotalPieces)
	s.Equal(int64(10), entry.Delta)

	counter, _, err = s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientID: counter.ClientID, Delta: -3})
	s.Require().NoError(err)
	s.Equal(int64(7), counter.TotalPieces)

	counter, _, err = s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "ANA", Delta: -9})
	s.Require().NoError(err)
	s.Equal(int64(-2), counter.TotalPieces)

	got, history, next, err := s.svcs.PieceCounter.GetCounter(s.ctx, profileA, counter.CounterID, dto.ListCounterEntriesParams{})
	s.Require().NoError(err)
	s.Nil(next)
	s.Equal(int64(-2), got.TotalPieces)
	s.Len(history, 3)
	s.Equal(got.TotalPieces, domain.SumPieceDeltas(history))

	counters, err := s.svcs.PieceCounter.ListCounters(s.ctx, profileA)
	s.Require().NoError(err)
	s.Len(counters, 1)
}

func (s *AggregationTestSuite) TestAddPiecesRejectsZeroDelta() {
	_, _, err := s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "Ana", Delta: 0})
	s.ErrorIs(err, apperrors.ErrValidation)

	clients, err := s.svcs.Client.ListClients(s.ctx, profileA, dto.ListClientsParams{})
	s.Require().NoError(err)
	s.Empty(clients)
}

func (s *AggregationTestSuite) TestResolveCounterIsIdempotent() {
	first, created, err := s.svcs.PieceCounter.ResolveOrCreateCounter(s.ctx, profileA, "", "Dora")
	s.Require().NoError(err)
	s.True(created)
	s.Zero(first.TotalPieces)

	second, created, err := s.svcs.PieceCounter.ResolveOrCreateCounter(s.ctx, profileA, first.ClientID, "")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.CounterID, second.CounterID)
}

func (s *AggregationTestSuite) TestCrossAccountIDsAreNotFound() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	order := s.createOrder(anaID, "10.00", domain.StatusPaid)

	const profileB = "profile-b"
	_, err = s.svcs.Client.GetClient(s.ctx, profileB, anaID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.svcs.ServiceOrder.GetServiceOrder(s.ctx, profileB, order.ServiceID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svcs.ServiceOrder.DeleteServiceOrder(s.ctx, profileB, order.ServiceID), apperrors.ErrNotFound)
	_, err = s.svcs.ServiceOrder.CreateServiceOrder(s.ctx, profileB, dto.CreateServiceOrderRequest{
		ClientID: anaID, Description: "x", Value: decimal.Zero,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	// Same name in another account is a different client.
	otherID, created, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileB, "Ana")
	s.Require().NoError(err)
	s.True(created)
	s.NotEqual(anaID, otherID)
}

func (s *AggregationTestSuite) TestReconcileIsANoOpOnConsistentData() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	order := s.createOrder(anaID, "42.00", domain.StatusPaid)

	c, err := s.svcs.Client.ReconcileClientStats(s.ctx, profileA, anaID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("42").Equal(c.TotalSpent))
	s.Require().NotNil(c.LastServiceDate)
	s.True(order.CreatedAt.Equal(*c.LastServiceDate))
}

func (s *AggregationTestSuite) TestReconcileRestoresDriftedCounter() {
	counter, _, err := s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "Clara", Delta: 10})
	s.Require().NoError(err)
	_, _, err = s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "Clara", Delta: -3})
	s.Require().NoError(err)

	// Corrupt the running total behind the service's back.
	s.Require().NoError(s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.PieceCounters.SetCounterTotal(ctx, counter.CounterID, 999, time.Now().UTC())
	}))
	drifted, _, _, err := s.svcs.PieceCounter.GetCounter(s.ctx, profileA, counter.CounterID, dto.ListCounterEntriesParams{})
	s.Require().NoError(err)
	s.Equal(int64(999), drifted.TotalPieces)

	reconciled, err := s.svcs.PieceCounter.ReconcileCounter(s.ctx, profileA, counter.CounterID)
	s.Require().NoError(err)
	s.Equal(int64(7), reconciled.TotalPieces)

	stored, history, _, err := s.svcs.PieceCounter.GetCounter(s.ctx, profileA, counter.CounterID, dto.ListCounterEntriesParams{Limit: 500})
	s.Require().NoError(err)
	s.Equal(domain.SumPieceDeltas(history), stored.TotalPieces)
}

func (s *AggregationTestSuite) TestReconcileRestoresDriftedClientStats() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	s.createOrder(anaID, "120.00", domain.StatusPaid)
	s.createOrder(anaID, "80.00", domain.StatusInProgress)
	last := s.createOrder(anaID, "15.00", domain.StatusDelivered)

	s.Require().NoError(s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Clients.UpdateClientStats(ctx, anaID, domain.ClientStats{TotalSpent: decimal.RequireFromString("5000")}, time.Now().UTC())
	}))
	s.assertStats(anaID, "5000", nil)

	c, err := s.svcs.Client.ReconcileClientStats(s.ctx, profileA, anaID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("120").Equal(c.TotalSpent), "total spent: got %s", c.TotalSpent)
	s.assertStats(anaID, "120", last)
}

func (s *AggregationTestSuite) TestConcurrentAddPiecesKeepsTotalEqualToHistory() {
	const workers = 16
	var wg sync.WaitGroup
	var want int64
	for i := 0; i < workers; i++ {
		delta := int64(i + 1)
		if i%3 == 0 {
			delta = -delta
		}
		want += delta
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			_, _, err := s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientName: "Daniela", Delta: delta})
			assert.NoError(s.T(), err)
		}(delta)
	}
	wg.Wait()

	counters, err := s.svcs.PieceCounter.ListCounters(s.ctx, profileA)
	s.Require().NoError(err)
	s.Require().Len(counters, 1, "concurrent first movements must share one counter")
	s.Equal(want, counters[0].TotalPieces)

	_, history, next, err := s.svcs.PieceCounter.GetCounter(s.ctx, profileA, counters[0].CounterID, dto.ListCounterEntriesParams{Limit: 500})
	s.Require().NoError(err)
	s.Nil(next)
	s.Len(history, workers)
	s.Equal(want, domain.SumPieceDeltas(history))
}

func (s *AggregationTestSuite) TestDeleteClientCascades() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	order := s.createOrder(anaID, "42.00", domain.StatusPaid)
	counter, _, err := s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientID: anaID, Delta: 2})
	s.Require().NoError(err)

	s.Require().NoError(s.svcs.Client.DeleteClient(s.ctx, profileA, anaID))

	_, err = s.svcs.ServiceOrder.GetServiceOrder(s.ctx, profileA, order.ServiceID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, _, _, err = s.svcs.PieceCounter.GetCounter(s.ctx, profileA, counter.CounterID, dto.ListCounterEntriesParams{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AggregationTestSuite) TestDashboard() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	_, err = s.svcs.Client.SetFavorite(s.ctx, profileA, anaID, true)
	s.Require().NoError(err)
	_, _, err = s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Bia")
	s.Require().NoError(err)
	s.createOrder(anaID, "120.00", domain.StatusPaid)
	s.createOrder(anaID, "80.00", domain.StatusInProgress)
	s.createOrder(anaID, "20.00", domain.StatusDelivered)
	_, _, err = s.svcs.PieceCounter.AddPieces(s.ctx, profileA, dto.AddPiecesRequest{ClientID: anaID, Delta: 5})
	s.Require().NoError(err)

	d, err := s.svcs.Reporting.GetDashboard(s.ctx, profileA)
	s.Require().NoError(err)
	s.Equal(2, d.ClientCount)
	s.Equal(1, d.FavoriteCount)
	s.Equal(1, d.ServicesByStatus[domain.StatusPaid])
	s.Equal(1, d.ServicesByStatus[domain.StatusInProgress])
	s.Equal(1, d.ServicesByStatus[domain.StatusDelivered])
	s.True(decimal.RequireFromString("120").Equal(d.Revenue))
	s.True(decimal.RequireFromString("100").Equal(d.Receivable))
	s.Equal(int64(5), d.TotalPieces)
}

func (s *AggregationTestSuite) TestServiceOrderPagination() {
	anaID, _, err := s.svcs.Client.ResolveOrCreateClient(s.ctx, profileA, "Ana")
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		s.createOrder(anaID, "1.00", domain.StatusInProgress)
	}

	seen := map[string]bool{}
	params := dto.ListServiceOrdersParams{Limit: 2}
	for {
		page, next, err := s.svcs.ServiceOrder.ListServiceOrders(s.ctx, profileA, params)
		s.Require().NoError(err)
		for _, o := range page {
			s.False(seen[o.ServiceID], "duplicate %s", o.ServiceID)
			seen[o.ServiceID] = true
		}
		if next == nil {
			break
		}
		params.NextToken = next
	}
	s.Len(seen, 5)
}

func TestAggregationTestSuite(t *testing.T) {
	suite.Run(t, new(AggregationTestSuite))
}

func TestUpdateClientNameClashIsDuplicate(t *testing.T) {
	ctx := context.Background()
	svcs := services.NewServiceContainer(memory.NewStore().Provider())
	_, _, err := svcs.Client.ResolveOrCreateClient(ctx, profileA, "Ana")
	require.NoError(t, err)
	biaID, _, err := svcs.Client.ResolveOrCreateClient(ctx, profileA, "Bia")
	require.NoError(t, err)

	name := "ana"
	_, err = svcs.Client.UpdateClient(ctx, profileA, biaID, dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	empty := "  "
	_, err = svcs.Client.UpdateClient(ctx, profileA, biaID, dto.UpdateClientRequest{Name: &empty})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateClientReturnsExisting(t *testing.T) {
	ctx := context.Background()
	svcs := services.NewServiceContainer(memory.NewStore().Provider())
	first, created, err := svcs.Client.CreateClient(ctx, profileA, dto.CreateClientRequest{Name: "Ana", Phone: "1199"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "1199", first.Phone)
	assert.True(t, first.TotalSpent.IsZero())

	again, created, err := svcs.Client.CreateClient(ctx, profileA, dto.CreateClientRequest{Name: "ANA"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ClientID, again.ClientID)
}
