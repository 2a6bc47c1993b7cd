package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/SscSPs/costureira_pro/internal/core/services"
	"github.com/SscSPs/costureira_pro/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, profileID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, profileID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByName(ctx context.Context, profileID, name string) (*domain.Client, error) {
	args := m.Called(ctx, profileID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, profileID string, filter domain.ClientFilter) ([]domain.Client, error) {
	args := m.Called(ctx, profileID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) InsertClientIfAbsent(ctx context.Context, client domain.Client) (bool, error) {
	args := m.Called(ctx, client)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, profileID, clientID string) error {
	return m.Called(ctx, profileID, clientID).Error(0)
}

func (m *MockClientRepository) LockClientForUpdate(ctx context.Context, profileID, clientID string) error {
	return m.Called(ctx, profileID, clientID).Error(0)
}

func (m *MockClientRepository) UpdateClientStats(ctx context.Context, clientID string, stats domain.ClientStats, now time.Time) error {
	return m.Called(ctx, clientID, stats, now).Error(0)
}

// --- Mock TransactionManager ---
// mockTxManager runs fn directly against the mocked repositories.
type mockTxManager struct {
	repos portsrepo.TxRepositories
}

func (m *mockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	return fn(ctx, m.repos)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	ctx      context.Context
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.ctx = context.Background()
	tx := &mockTxManager{repos: portsrepo.TxRepositories{Clients: suite.mockRepo}}
	suite.service = services.NewClientService(suite.mockRepo, tx)
}

func (suite *ClientServiceTestSuite) TestResolve_ExistingClient() {
	existing := &domain.Client{ClientID: uuid.NewString(), ProfileID: profileA, Name: "Ana"}
	suite.mockRepo.On("FindClientByName", mock.Anything, profileA, "Ana").Return(existing, nil).Once()

	id, created, err := suite.service.ResolveOrCreateClient(suite.ctx, profileA, " Ana ")

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(existing.ClientID, id)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertClientIfAbsent", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolve_InsertsWithZeroDerivedFields() {
	suite.mockRepo.On("FindClientByName", mock.Anything, profileA, "Ana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("InsertClientIfAbsent", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.ProfileID == profileA && c.Name == "Ana" && c.TotalSpent.IsZero() && c.LastServiceDate == nil && c.ClientID != ""
	})).Return(true, nil).Once()

	id, created, err := suite.service.ResolveOrCreateClient(suite.ctx, profileA, "Ana")

	suite.Require().NoError(err)
	suite.True(created)
	suite.NotEmpty(id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolve_LostRaceReturnsWinner() {
	winner := &domain.Client{ClientID: uuid.NewString(), ProfileID: profileA, Name: "ana"}
	suite.mockRepo.On("FindClientByName", mock.Anything, profileA, "Ana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("InsertClientIfAbsent", mock.Anything, mock.AnythingOfType("domain.Client")).Return(false, nil).Once()
	suite.mockRepo.On("FindClientByName", mock.Anything, profileA, "Ana").Return(winner, nil).Once()

	id, created, err := suite.service.ResolveOrCreateClient(suite.ctx, profileA, "Ana")

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(winner.ClientID, id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolve_InsertFailureAborts() {
	dbErr := errors.New("connection reset")
	suite.mockRepo.On("FindClientByName", mock.Anything, profileA, "Ana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("InsertClientIfAbsent", mock.Anything, mock.Anything).Return(false, dbErr).Once()

	_, _, err := suite.service.ResolveOrCreateClient(suite.ctx, profileA, "Ana")

	suite.Require().Error(err)
	suite.ErrorIs(err, dbErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestResolve_EmptyNameNeverHitsStore() {
	_, _, err := suite.service.ResolveOrCreateClient(suite.ctx, profileA, "\t ")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByName", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestListClients_AppliesDefaultLimit() {
	suite.mockRepo.On("ListClients", mock.Anything, profileA, domain.ClientFilter{Search: "an", Limit: 50}).
		Return([]domain.Client{{Name: "Ana"}}, nil).Once()

	clients, err := suite.service.ListClients(suite.ctx, profileA, dto.ListClientsParams{Search: " an "})

	suite.Require().NoError(err)
	suite.Len(clients, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFound() {
	suite.mockRepo.On("FindClientByID", mock.Anything, profileA, "missing").Return(nil, apperrors.ErrNotFound).Once()

	fav := true
	_, err := suite.service.SetFavorite(suite.ctx, profileA, "missing", fav)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
