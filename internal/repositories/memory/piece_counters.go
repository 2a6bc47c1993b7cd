package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils/pagination"
)

func (v *view) FindCounterByID(_ context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	defer v.lock()()
	k, ok := v.st().counters[counterID]
	if !ok || k.ProfileID != profileID {
		return nil, apperrors.ErrNotFound
	}
	return &k, nil
}

// LockCounterForUpdate is a plain read: the store lock already serialises transactions.
func (v *view) LockCounterForUpdate(ctx context.Context, profileID, counterID string) (*domain.PieceCounter, error) {
	return v.FindCounterByID(ctx, profileID, counterID)
}

func (v *view) FindCounterByClient(_ context.Context, profileID, clientID string) (*domain.PieceCounter, error) {
	defer v.lock()()
	for _, k := range v.st().counters {
		if k.ProfileID == profileID && k.ClientID == clientID {
			return &k, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (v *view) ListCounters(_ context.Context, profileID string) ([]domain.PieceCounter, error) {
	defer v.lock()()
	out := []domain.PieceCounter{}
	for _, k := range v.st().counters {
		if k.ProfileID == profileID {
			out = append(out, k)
		}
	}
	slices.SortFunc(out, func(a, b domain.PieceCounter) int {
		return cmp.Or(cmp.Compare(strings.ToLower(a.ClientName), strings.ToLower(b.ClientName)), cmp.Compare(a.CounterID, b.CounterID))
	})
	return out, nil
}

func (v *view) ListCounterEntries(_ context.Context, profileID, counterID string, limit int, nextToken *string) ([]domain.PieceCounterEntry, *string, error) {
	defer v.lock()()

	var cursor func(domain.PieceCounterEntry) bool
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		cursor = func(e domain.PieceCounterEntry) bool {
			return pagination.IsBefore(e.CreatedAt, e.EntryID, lastCreatedAt, lastID)
		}
	}

	out := []domain.PieceCounterEntry{}
	for _, e := range v.st().entries {
		if e.ProfileID != profileID || e.CounterID != counterID {
			continue
		}
		if cursor != nil && !cursor(e) {
			continue
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.PieceCounterEntry) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.EntryID, a.EntryID))
	})

	var next *string
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		next = &token
	}
	return out, next, nil
}

func (v *view) SumCounterEntries(_ context.Context, counterID string) (int64, error) {
	defer v.lock()()
	var entries []domain.PieceCounterEntry
	for _, e := range v.st().entries {
		if e.CounterID == counterID {
			entries = append(entries, e)
		}
	}
	return domain.SumPieceDeltas(entries), nil
}

func (v *view) InsertCounterIfAbsent(_ context.Context, counter domain.PieceCounter) (bool, error) {
	defer v.lock()()
	for _, k := range v.st().counters {
		if k.ProfileID == counter.ProfileID && k.ClientID == counter.ClientID {
			return false, nil
		}
	}
	if _, ok := v.st().clients[counter.ClientID]; !ok {
		return false, apperrors.ErrNotFound
	}
	v.st().counters[counter.CounterID] = counter
	return true, nil
}

func (v *view) AppendCounterEntry(_ context.Context, entry domain.PieceCounterEntry) error {
	defer v.lock()()
	if _, ok := v.st().counters[entry.CounterID]; !ok {
		return apperrors.ErrNotFound
	}
	v.st().entries = append(v.st().entries, entry)
	return nil
}

func (v *view) IncrementCounterTotal(_ context.Context, counterID string, delta int64, now time.Time) (int64, error) {
	defer v.lock()()
	k, ok := v.st().counters[counterID]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	k.TotalPieces += delta
	k.LastUpdatedAt = now
	v.st().counters[counterID] = k
	return k.TotalPieces, nil
}

func (v *view) SetCounterTotal(_ context.Context, counterID string, total int64, now time.Time) error {
	defer v.lock()()
	k, ok := v.st().counters[counterID]
	if !ok {
		return apperrors.ErrNotFound
	}
	k.TotalPieces = total
	k.LastUpdatedAt = now
	v.st().counters[counterID] = k
	return nil
}
