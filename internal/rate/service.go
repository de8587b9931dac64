package rate

import (
	"context"
	"strconv"

	"ecbrates/internal/adapters"
	"ecbrates/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	store            *Store
	cache            adapters.ValuationCache
	refresher        tableRefresher
	defaultPrecision int
}

// GetByCodes values base in quote against the current table. A negative precision selects the default.
func (s *Service) GetByCodes(_ context.Context, base, quote string, precision int) (View, error) {
	if precision < 0 {
		precision = s.defaultPrecision
	}
	table := s.store.Load()
	pair := domain.RatePair{Base: base, Quote: quote}
	view := View{
		Base:      base,
		Quote:     quote,
		Precision: precision,
		AsOf:      table.AsOf(),
		FetchedAt: table.FetchedAt(),
	}

	key := valuationKey(table, pair, precision)
	if v, ok := s.cache.Get(key); ok {
		view.Value = v
		return view, nil
	}

	value, err := Valuate(table, pair, precision)
	if err != nil {
		return View{}, err
	}
	s.cache.Set(key, value)
	view.Value = value
	return view, nil
}

func (s *Service) Table(_ context.Context) domain.RateTable {
	return s.store.Load()
}

func (s *Service) SupportedCodes(_ context.Context) []string {
	return s.store.Load().Codes()
}

// Refresh runs an on-demand refresh and returns the exec id it was tagged with.
func (s *Service) Refresh(ctx context.Context) (string, domain.RateTable, error) {
	execID := uuid.NewString()
	table, err := s.refresher.Refresh(ctx, execID)
	return execID, table, err
}

// valuationKey includes the table generation, so a value computed against a replaced table is never served.
func valuationKey(table domain.RateTable, pair domain.RatePair, precision int) string {
	return pair.Key() + ":" + strconv.Itoa(precision) + ":" + strconv.FormatInt(table.FetchedAt().UnixNano(), 10)
}

func NewService(store *Store, cache adapters.ValuationCache, refresher tableRefresher, defaultPrecision int) *Service {
	if defaultPrecision < 0 {
		defaultPrecision = DefaultPrecision
	}
	return &Service{
		store:            store,
		cache:            cache,
		refresher:        refresher,
		defaultPrecision: defaultPrecision,
	}
}
