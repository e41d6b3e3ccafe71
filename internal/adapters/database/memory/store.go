// Package memory keeps users and ledger entries in process memory. It implements the same
// storage ports as the pgsql package and is meant for local runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
)

type txKey struct{}

// Store is the shared state behind the memory repositories. A single mutex serializes
// every operation; a transaction holds it from start to commit or rollback.
type Store struct {
	mu          sync.Mutex
	users       map[int64]domain.User
	entries     map[int64]domain.LedgerEntry
	entryOrder  []int64
	nextUserID  int64
	nextEntryID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:   make(map[int64]domain.User),
		entries: make(map[int64]domain.LedgerEntry),
	}
}

// NewRepositoryProvider exposes a fresh store through the repository ports.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		UserRepo:  NewUserRepository(store),
		EntryRepo: NewLedgerEntryRepository(store),
		TxManager: store,
	}
}

// WithinTx runs fn with exclusive access to the store. When fn fails every change it made
// is discarded. A call made with a context that is already inside a transaction joins it.
func (s *Store) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// lock acquires the store for a single operation unless ctx already holds it through a transaction.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

type snapshot struct {
	users       map[int64]domain.User
	entries     map[int64]domain.LedgerEntry
	entryOrder  []int64
	nextUserID  int64
	nextEntryID int64
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		users:       make(map[int64]domain.User, len(s.users)),
		entries:     make(map[int64]domain.LedgerEntry, len(s.entries)),
		entryOrder:  append([]int64(nil), s.entryOrder...),
		nextUserID:  s.nextUserID,
		nextEntryID: s.nextEntryID,
	}
	for id, u := range s.users {
		snap.users[id] = u
	}
	for id, e := range s.entries {
		snap.entries[id] = e
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.entries = snap.entries
	s.entryOrder = snap.entryOrder
	s.nextUserID = snap.nextUserID
	s.nextEntryID = snap.nextEntryID
}
