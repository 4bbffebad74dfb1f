package memstore

import (
	"context"
	"sync"
	"time"

	"spa-pos/internal/domain/catalog"

	"github.com/patrickmn/go-cache"
)

// CatalogStore remembers the services each branch scope has listed, so a line
// can be added by service id alone.
type CatalogStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewCatalogStore(ttl, cleanupInterval time.Duration) *CatalogStore {
	return &CatalogStore{cache: cache.New(ttl, cleanupInterval)}
}

// Merge folds services into the scope's snapshot; newer prices win. The
// snapshot keeps the expiry it was created with, so services dropped by the
// backend stop being addable once it lapses.
func (s *CatalogStore) Merge(_ context.Context, scope string, services []catalog.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := catalog.NewSnapshot(services)
	v, expiresAt, ok := s.cache.GetWithExpiration(scope)
	if !ok {
		s.cache.Set(scope, incoming, cache.DefaultExpiration)
		return nil
	}

	remaining := time.Until(expiresAt)
	if expiresAt.IsZero() || remaining <= 0 {
		s.cache.Set(scope, incoming, cache.DefaultExpiration)
		return nil
	}
	s.cache.Set(scope, v.(*catalog.Snapshot).Merge(incoming), remaining)
	return nil
}

func (s *CatalogStore) Lookup(_ context.Context, scope string, serviceID string) (catalog.Service, bool) {
	v, ok := s.cache.Get(scope)
	if !ok {
		return catalog.Service{}, false
	}
	return v.(*catalog.Snapshot).Lookup(serviceID)
}
