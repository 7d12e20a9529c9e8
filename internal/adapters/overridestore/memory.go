// Package overridestore keeps users' exchange rate overrides.
package overridestore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
)

// MemoryStore holds overrides in process memory. Overrides are lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides map[string]map[string]domain.ExchangeRateOverride // owner -> pair key -> override
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: make(map[string]map[string]domain.ExchangeRateOverride)}
}

var _ portsrepo.ExchangeRateOverrideStore = (*MemoryStore)(nil)

func (s *MemoryStore) GetOverride(_ context.Context, ownerID string, pair domain.RatePair) (*domain.ExchangeRateOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.overrides[ownerID][pair.Key()]
	if !ok {
		return nil, apperrors.NewNotFoundError("no override for " + pair.Key())
	}
	return &o, nil
}

func (s *MemoryStore) SetOverride(_ context.Context, ownerID string, override domain.ExchangeRateOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned, ok := s.overrides[ownerID]
	if !ok {
		owned = make(map[string]domain.ExchangeRateOverride)
		s.overrides[ownerID] = owned
	}
	owned[override.Pair().Key()] = override
	return nil
}

func (s *MemoryStore) ClearOverride(_ context.Context, ownerID string, pair domain.RatePair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.overrides[ownerID][pair.Key()]; !ok {
		return apperrors.NewNotFoundError("no override for " + pair.Key())
	}
	delete(s.overrides[ownerID], pair.Key())
	return nil
}

// ListOverrides returns the owner's overrides ordered by pair key.
func (s *MemoryStore) ListOverrides(_ context.Context, ownerID string) ([]domain.ExchangeRateOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.ExchangeRateOverride, 0, len(s.overrides[ownerID]))
	for _, o := range s.overrides[ownerID] {
		list = append(list, o)
	}
	sortByPair(list)
	return list, nil
}

func sortByPair(list []domain.ExchangeRateOverride) {
	slices.SortFunc(list, func(a, b domain.ExchangeRateOverride) int {
		return strings.Compare(a.Pair().Key(), b.Pair().Key())
	})
}
