package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spa-pos/internal/domain/transaction"
	"spa-pos/internal/infra"
	"spa-pos/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TransactionStore holds open transactions. Every read and write goes through
// one mutex, and Update swaps in a mutated clone only when fn succeeds. Entries
// expire after idleTTL without an update.
type TransactionStore struct {
	mu      sync.Mutex
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func NewTransactionStore(idleTTL, cleanupInterval time.Duration, m *metrics.Metrics) *TransactionStore {
	s := &TransactionStore{
		cache:   cache.New(idleTTL, cleanupInterval),
		metrics: m,
	}
	s.cache.OnEvicted(func(key string, _ any) {
		m.OpenTransactions.Dec()
		slog.Debug("transaction evicted", "transaction_id", key)
	})
	return s
}

func (s *TransactionStore) Create(_ context.Context, t *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Add(t.ID().String(), t, cache.DefaultExpiration); err != nil {
		return infra.WrapErr(slog.Default(), infra.KindConflict, "transaction already exists", err)
	}
	s.metrics.OpenTransactions.Inc()
	return nil
}

func (s *TransactionStore) View(_ context.Context, id uuid.UUID, fn func(*transaction.Transaction) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.get(id)
	if err != nil {
		return err
	}
	return fn(t)
}

func (s *TransactionStore) Update(_ context.Context, id uuid.UUID, fn func(*transaction.Transaction) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.get(id)
	if err != nil {
		return err
	}
	working := t.Clone()
	if err := fn(working); err != nil {
		return err
	}
	s.cache.Set(id.String(), working, cache.DefaultExpiration)
	return nil
}

func (s *TransactionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	s.cache.Delete(id.String())
	return nil
}

// ForEachByOwner calls fn for each live transaction owned by ownerID. fn runs
// under the store lock and must not keep the pointer.
func (s *TransactionStore) ForEachByOwner(_ context.Context, ownerID string, fn func(*transaction.Transaction)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.cache.Items() {
		t, ok := item.Object.(*transaction.Transaction)
		if !ok || !t.IsOwnedBy(ownerID) {
			continue
		}
		fn(t)
	}
	return nil
}

func (s *TransactionStore) get(id uuid.UUID) (*transaction.Transaction, error) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return nil, infra.WrapErr(slog.Default(), infra.KindNotFound, "transaction not found", nil)
	}
	return v.(*transaction.Transaction), nil
}
