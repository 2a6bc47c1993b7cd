// Package memory provides an in-process implementation of every repository
// port. It backs STORAGE_DRIVER=memory and the end-to-end service tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
)

type memoryState struct {
	profiles map[string]domain.Profile
	clients  map[string]domain.Client
	services map[string]domain.ServiceOrder
	counters map[string]domain.PieceCounter
	entries  []domain.PieceCounterEntry // append-only
}

func newMemoryState() memoryState {
	return memoryState{
		profiles: map[string]domain.Profile{},
		clients:  map[string]domain.Client{},
		services: map[string]domain.ServiceOrder{},
		counters: map[string]domain.PieceCounter{},
	}
}

func (s memoryState) clone() memoryState {
	return memoryState{
		profiles: maps.Clone(s.profiles),
		clients:  maps.Clone(s.clients),
		services: maps.Clone(s.services),
		counters: maps.Clone(s.counters),
		entries:  slices.Clone(s.entries),
	}
}

// Store is a transactional in-memory store. Transactions are serialised by a
// single mutex and roll back by restoring a snapshot.
type Store struct {
	mu    sync.Mutex
	state memoryState
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newMemoryState()}
}

// view implements the repository ports. Outside a transaction every call takes
// the store lock; inside one the lock is already held by WithinTx.
type view struct {
	store *Store
	inTx  bool
}

func (v *view) lock() func() {
	if v.inTx {
		return func() {}
	}
	v.store.mu.Lock()
	return v.store.mu.Unlock
}

func (v *view) st() *memoryState {
	return &v.store.state
}

var (
	_ portsrepo.ProfileRepository            = (*view)(nil)
	_ portsrepo.ClientRepositoryFacade       = (*view)(nil)
	_ portsrepo.ServiceOrderRepositoryFacade = (*view)(nil)
	_ portsrepo.PieceCounterRepositoryFacade = (*view)(nil)
	_ portsrepo.ReportingRepository          = (*view)(nil)
	_ portsrepo.TransactionManager           = (*Store)(nil)
)

// WithinTx runs fn while holding the store lock. A non-nil error restores the
// state seen when fn started.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	txView := &view{store: s, inTx: true}
	err := fn(ctx, portsrepo.TxRepositories{
		Clients:       txView,
		ServiceOrders: txView,
		PieceCounters: txView,
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Provider wires the store into a RepositoryProvider.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	v := &view{store: s}
	return portsrepo.RepositoryProvider{
		ProfileRepo:      v,
		ClientRepo:       v,
		ServiceOrderRepo: v,
		PieceCounterRepo: v,
		ReportingRepo:    v,
		TxManager:        s,
	}
}
