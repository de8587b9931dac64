package rate

import (
	"sync/atomic"

	"ecbrates/internal/domain"
)

// Store holds the current rate table. Readers never lock, a refresh replaces the whole snapshot.
type Store struct {
	table atomic.Pointer[domain.RateTable]
}

func (s *Store) Load() domain.RateTable {
	return *s.table.Load()
}

// Swap publishes table and returns the one it replaced.
func (s *Store) Swap(table domain.RateTable) domain.RateTable {
	return *s.table.Swap(&table)
}

func NewStore() *Store {
	s := &Store{}
	empty := domain.EmptyRateTable()
	s.table.Store(&empty)
	return s
}
