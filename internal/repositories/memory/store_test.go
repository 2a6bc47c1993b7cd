package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, repo portsrepo.ClientRepositoryFacade, profileID, id, name string) {
	t.Helper()
	inserted, err := repo.InsertClientIfAbsent(context.Background(), domain.Client{
		ClientID: id, ProfileID: profileID, Name: name, TotalSpent: decimal.Zero,
	})
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestInsertClientIfAbsentIsCaseInsensitive(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Ana")

	inserted, err := repos.ClientRepo.InsertClientIfAbsent(ctx, domain.Client{ClientID: "c2", ProfileID: "p1", Name: " ana "})
	require.NoError(t, err)
	assert.False(t, inserted)

	// Another profile may reuse the name.
	inserted, err = repos.ClientRepo.InsertClientIfAbsent(ctx, domain.Client{ClientID: "c3", ProfileID: "p2", Name: "Ana"})
	require.NoError(t, err)
	assert.True(t, inserted)

	found, err := repos.ClientRepo.FindClientByName(ctx, "p1", "ANA")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ClientID)

	_, err = repos.ClientRepo.FindClientByID(ctx, "p2", "c1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Search text is a plain substring, so LIKE metacharacters match only themselves.
func TestListClientsSearchMatchesLiterally(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Loja 100% Linho")
	seedClient(t, repos.ClientRepo, "p1", "c2", "Ateliê Bia")
	seedClient(t, repos.ClientRepo, "p1", "c3", "maria_souza")
	seedClient(t, repos.ClientRepo, "p1", "c4", "Maria Souza")

	names := func(search string) []string {
		clients, err := repos.ClientRepo.ListClients(ctx, "p1", domain.ClientFilter{Search: search})
		require.NoError(t, err)
		out := make([]string, 0, len(clients))
		for _, c := range clients {
			out = append(out, c.ClientID)
		}
		return out
	}

	assert.Equal(t, []string{"c1"}, names("%"))
	assert.Equal(t, []string{"c3"}, names("_"))
	assert.Equal(t, []string{"c3"}, names("MARIA_"))
	assert.ElementsMatch(t, []string{"c3", "c4"}, names("souza"))
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	store := NewStore()
	repos := store.Provider()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		seedClient(t, tx.Clients, "p1", "c1", "Ana")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repos.ClientRepo.FindClientByID(ctx, "p1", "c1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = store.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		seedClient(t, tx.Clients, "p1", "c1", "Ana")
		return nil
	})
	require.NoError(t, err)
	_, err = repos.ClientRepo.FindClientByID(ctx, "p1", "c1")
	assert.NoError(t, err)
}

func TestUpdateClientRejectsNameClash(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Ana")
	seedClient(t, repos.ClientRepo, "p1", "c2", "Bia")

	err := repos.ClientRepo.UpdateClient(ctx, domain.Client{ClientID: "c2", ProfileID: "p1", Name: "ANA"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Renaming to a different case of its own name is fine.
	err = repos.ClientRepo.UpdateClient(ctx, domain.Client{ClientID: "c2", ProfileID: "p1", Name: "BIA"})
	assert.NoError(t, err)
}

func TestDeleteClientCascades(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Ana")
	require.NoError(t, repos.ServiceOrderRepo.SaveServiceOrder(ctx, domain.ServiceOrder{ServiceID: "s1", ProfileID: "p1", ClientID: "c1", Status: domain.StatusPaid}))
	_, err := repos.PieceCounterRepo.InsertCounterIfAbsent(ctx, domain.PieceCounter{CounterID: "k1", ProfileID: "p1", ClientID: "c1", ClientName: "Ana"})
	require.NoError(t, err)
	require.NoError(t, repos.PieceCounterRepo.AppendCounterEntry(ctx, domain.PieceCounterEntry{EntryID: "e1", CounterID: "k1", ProfileID: "p1", Delta: 3}))

	require.NoError(t, repos.ClientRepo.DeleteClient(ctx, "p1", "c1"))

	_, err = repos.ServiceOrderRepo.FindServiceOrderByID(ctx, "p1", "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repos.PieceCounterRepo.FindCounterByID(ctx, "p1", "k1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	sum, err := repos.PieceCounterRepo.SumCounterEntries(ctx, "k1")
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestListServiceOrdersPaginates(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Ana")
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ids := []string{"s1", "s2", "s3", "s4", "s5"}
	for i, id := range ids {
		require.NoError(t, repos.ServiceOrderRepo.SaveServiceOrder(ctx, domain.ServiceOrder{
			ServiceID: id, ProfileID: "p1", ClientID: "c1", Status: domain.StatusInProgress,
			AuditFields: domain.AuditFields{CreatedAt: base.Add(time.Duration(i) * time.Hour)},
		}))
	}

	var seen []string
	var token *string
	for page := 0; page < 3; page++ {
		orders, next, err := repos.ServiceOrderRepo.ListServiceOrders(ctx, "p1", domain.ServiceOrderFilter{}, 2, token)
		require.NoError(t, err)
		for _, o := range orders {
			assert.Equal(t, "Ana", o.ClientName)
			seen = append(seen, o.ServiceID)
		}
		token = next
		if next == nil {
			break
		}
	}
	assert.Equal(t, []string{"s5", "s4", "s3", "s2", "s1"}, seen)
	assert.Nil(t, token)

	bad := "%%%"
	_, _, err := repos.ServiceOrderRepo.ListServiceOrders(ctx, "p1", domain.ServiceOrderFilter{}, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestIncrementCounterTotalMayGoNegative(t *testing.T) {
	repos := NewStore().Provider()
	ctx := context.Background()
	seedClient(t, repos.ClientRepo, "p1", "c1", "Ana")
	_, err := repos.PieceCounterRepo.InsertCounterIfAbsent(ctx, domain.PieceCounter{CounterID: "k1", ProfileID: "p1", ClientID: "c1"})
	require.NoError(t, err)

	total, err := repos.PieceCounterRepo.IncrementCounterTotal(ctx, "k1", -4, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(-4), total)

	inserted, err := repos.PieceCounterRepo.InsertCounterIfAbsent(ctx, domain.PieceCounter{CounterID: "k2", ProfileID: "p1", ClientID: "c1"})
	require.NoError(t, err)
	assert.False(t, inserted)
}
