package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
)

func (v *view) clientByName(profileID, name string) (domain.Client, bool) {
	key := domain.NameKey(name)
	for _, c := range v.st().clients {
		if c.ProfileID == profileID && domain.NameKey(c.Name) == key {
			return c, true
		}
	}
	return domain.Client{}, false
}

func (v *view) FindClientByID(_ context.Context, profileID, clientID string) (*domain.Client, error) {
	defer v.lock()()
	c, ok := v.st().clients[clientID]
	if !ok || c.ProfileID != profileID {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (v *view) FindClientByName(_ context.Context, profileID, name string) (*domain.Client, error) {
	defer v.lock()()
	c, ok := v.clientByName(profileID, name)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (v *view) ListClients(_ context.Context, profileID string, filter domain.ClientFilter) ([]domain.Client, error) {
	defer v.lock()()
	search := strings.ToLower(filter.Search)
	out := []domain.Client{}
	for _, c := range v.st().clients {
		if c.ProfileID != profileID {
			continue
		}
		if filter.FavoritesOnly && !c.IsFavorite {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Client) int {
		return cmp.Or(cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)), cmp.Compare(a.ClientID, b.ClientID))
	})

	if filter.Offset >= len(out) {
		return []domain.Client{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (v *view) InsertClientIfAbsent(_ context.Context, client domain.Client) (bool, error) {
	defer v.lock()()
	if _, exists := v.clientByName(client.ProfileID, client.Name); exists {
		return false, nil
	}
	v.st().clients[client.ClientID] = client
	return true, nil
}

func (v *view) UpdateClient(_ context.Context, client domain.Client) error {
	defer v.lock()()
	stored, ok := v.st().clients[client.ClientID]
	if !ok || stored.ProfileID != client.ProfileID {
		return apperrors.ErrNotFound
	}
	if other, exists := v.clientByName(client.ProfileID, client.Name); exists && other.ClientID != client.ClientID {
		return fmt.Errorf("%w: client named %q", apperrors.ErrDuplicate, client.Name)
	}

	stored.Name = client.Name
	stored.Phone = client.Phone
	stored.Email = client.Email
	stored.Address = client.Address
	stored.Notes = client.Notes
	stored.IsFavorite = client.IsFavorite
	stored.LastUpdatedAt = client.LastUpdatedAt
	v.st().clients[client.ClientID] = stored

	for id, k := range v.st().counters {
		if k.ClientID == client.ClientID {
			k.ClientName = client.Name
			v.st().counters[id] = k
		}
	}
	return nil
}

// DeleteClient cascades to service orders, counters and their history.
func (v *view) DeleteClient(_ context.Context, profileID, clientID string) error {
	defer v.lock()()
	st := v.st()
	c, ok := st.clients[clientID]
	if !ok || c.ProfileID != profileID {
		return apperrors.ErrNotFound
	}
	delete(st.clients, clientID)
	for id, s := range st.services {
		if s.ClientID == clientID {
			delete(st.services, id)
		}
	}
	removed := map[string]bool{}
	for id, k := range st.counters {
		if k.ClientID == clientID {
			removed[id] = true
			delete(st.counters, id)
		}
	}
	st.entries = slices.DeleteFunc(st.entries, func(e domain.PieceCounterEntry) bool {
		return removed[e.CounterID]
	})
	return nil
}

// LockClientForUpdate only checks existence: the store lock already serialises transactions.
func (v *view) LockClientForUpdate(_ context.Context, profileID, clientID string) error {
	defer v.lock()()
	c, ok := v.st().clients[clientID]
	if !ok || c.ProfileID != profileID {
		return apperrors.ErrNotFound
	}
	return nil
}

func (v *view) UpdateClientStats(_ context.Context, clientID string, stats domain.ClientStats, now time.Time) error {
	defer v.lock()()
	c, ok := v.st().clients[clientID]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.TotalSpent = stats.TotalSpent
	c.LastServiceDate = stats.LastServiceDate
	c.LastUpdatedAt = now
	v.st().clients[clientID] = c
	return nil
}
